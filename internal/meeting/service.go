package meeting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/availability"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/user"
)

type CreateRequest struct {
	OrganizerID   string
	ParticipantID string
	Date          string
	StartHour     float64
	EndHour       float64
	Title         string
}

type SearchRequest struct {
	OrganizerID   string
	ParticipantID string
	FromDate      string
	Days          int
	Duration      float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Meeting, error)
	GetByID(ctx context.Context, id string) (*Meeting, error)
	List(ctx context.Context, filter Filter) ([]*Meeting, int, error)

	// Delete is idempotent: removing an already-deleted meeting succeeds.
	Delete(ctx context.Context, id string) error

	// FindFreeSlots enumerates bookable start hours for both users over a
	// rolling window of dates, skipping days with no candidates.
	FindFreeSlots(ctx context.Context, req SearchRequest) ([]DaySlots, error)
}

type service struct {
	repo         Repository
	userService  user.Service
	availService availability.Service
	window       schedule.SearchWindow
}

func NewService(repo Repository, userService user.Service, availService availability.Service, window schedule.SearchWindow) Service {
	return &service{
		repo:         repo,
		userService:  userService,
		availService: availService,
		window:       window,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Meeting, error) {
	// 1. Validate the requested window
	if _, err := schedule.NewTimeSlot(req.Date, req.StartHour, req.EndHour); err != nil {
		return nil, err
	}
	if req.OrganizerID == req.ParticipantID {
		return nil, ErrSameParticipant
	}

	// 2. Both participants must exist
	for _, id := range []string{req.OrganizerID, req.ParticipantID} {
		if _, err := s.userService.GetByID(ctx, id); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	// 3. Re-validate conflicts at commit time. A free-slot search result may
	// be stale by now; never assume the caller just checked.
	existing, err := s.repo.ListByDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	snapshot := engineMeetings(existing)
	if schedule.FindConflict(snapshot, req.OrganizerID, req.Date, req.StartHour, req.EndHour, "") != nil {
		return nil, ErrTimeConflict
	}
	if schedule.FindConflict(snapshot, req.ParticipantID, req.Date, req.StartHour, req.EndHour, "") != nil {
		return nil, ErrTimeConflict
	}

	// 4. Insert. The repository maps constraint violations to ErrTimeConflict,
	// closing the remaining race between the scan above and the write.
	m := &Meeting{
		ID:            uuid.NewString(),
		OrganizerID:   req.OrganizerID,
		ParticipantID: req.ParticipantID,
		Date:          req.Date,
		StartHour:     req.StartHour,
		EndHour:       req.EndHour,
		Title:         req.Title,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Meeting, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Meeting, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		// Already gone; deletion is idempotent for callers.
		return nil
	}
	return err
}

func (s *service) FindFreeSlots(ctx context.Context, req SearchRequest) ([]DaySlots, error) {
	if req.OrganizerID == req.ParticipantID {
		return nil, ErrSameParticipant
	}
	if req.Days < 1 || req.Days > 31 || req.Duration <= 0 {
		return nil, ErrInvalidSearch
	}
	from, err := time.Parse(schedule.DateLayout, req.FromDate)
	if err != nil {
		return nil, schedule.ErrInvalidDate
	}

	organizerAvail, err := s.availService.GetByUser(ctx, req.OrganizerID)
	if err != nil {
		return nil, err
	}
	participantAvail, err := s.availService.GetByUser(ctx, req.ParticipantID)
	if err != nil {
		return nil, err
	}

	// One snapshot for the whole window. The engine computes over whatever
	// it is handed; commit-time validation covers staleness.
	meetings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := engineMeetings(meetings)

	results := []DaySlots{}
	for i := 0; i < req.Days; i++ {
		date := from.AddDate(0, 0, i).Format(schedule.DateLayout)
		starts := schedule.FindAvailableSlots(
			s.window, date,
			organizerAvail.Slots, participantAvail.Slots,
			req.Duration, snapshot,
			req.OrganizerID, req.ParticipantID,
		)
		if len(starts) > 0 {
			results = append(results, DaySlots{Date: date, StartHours: starts})
		}
	}
	return results, nil
}
