package availability

import (
	"context"
	"math"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

type Service interface {
	List(ctx context.Context) ([]*Availability, error)

	// GetByUser returns the user's availability, with an empty slot list
	// when none has been declared. Unknown users are not an error.
	GetByUser(ctx context.Context, userID string) (*Availability, error)

	// ReplaceSlots validates, merges and stores the full slot list.
	ReplaceSlots(ctx context.Context, userID string, slots []schedule.TimeSlot) (*Availability, error)

	// ToggleBlock flips one 30-minute block on or off and persists the
	// re-merged result.
	ToggleBlock(ctx context.Context, userID, date string, hour float64) (*Availability, error)

	// ApplyPreset replaces the date's slots with a named preset range.
	ApplyPreset(ctx context.Context, userID, date string, preset schedule.Preset) (*Availability, error)

	Summary(ctx context.Context, userID string) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Availability, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) GetByUser(ctx context.Context, userID string) (*Availability, error) {
	slots, err := s.repo.GetSlots(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Availability{UserID: userID, Slots: slots}, nil
}

func (s *service) ReplaceSlots(ctx context.Context, userID string, slots []schedule.TimeSlot) (*Availability, error) {
	if err := schedule.ValidateSlots(slots); err != nil {
		return nil, err
	}

	merged := schedule.Merge(slots)
	if err := s.repo.ReplaceSlots(ctx, userID, merged); err != nil {
		return nil, err
	}
	return &Availability{UserID: userID, Slots: merged}, nil
}

func (s *service) ToggleBlock(ctx context.Context, userID, date string, hour float64) (*Availability, error) {
	if _, err := schedule.NewTimeSlot(date, hour, hour+schedule.BlockHours); err != nil {
		return nil, err
	}
	// The grid only offers half-hour boundaries; reject anything between.
	if steps := hour / schedule.BlockHours; steps != math.Trunc(steps) {
		return nil, ErrInvalidBlockHour
	}

	slots, err := s.repo.GetSlots(ctx, userID)
	if err != nil {
		return nil, err
	}

	if schedule.IsHourInSlots(slots, date, hour) {
		slots = schedule.RemoveBlock(slots, date, hour)
	} else {
		slots = schedule.AddBlock(slots, date, hour)
	}

	merged := schedule.Merge(slots)
	if err := s.repo.ReplaceSlots(ctx, userID, merged); err != nil {
		return nil, err
	}
	return &Availability{UserID: userID, Slots: merged}, nil
}

func (s *service) ApplyPreset(ctx context.Context, userID, date string, preset schedule.Preset) (*Availability, error) {
	if err := schedule.ValidateDate(date); err != nil {
		return nil, err
	}

	slots, err := s.repo.GetSlots(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged, err := schedule.ApplyPreset(slots, date, preset)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceSlots(ctx, userID, merged); err != nil {
		return nil, err
	}
	return &Availability{UserID: userID, Slots: merged}, nil
}

func (s *service) Summary(ctx context.Context, userID string) (*Summary, error) {
	slots, err := s.repo.GetSlots(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Summary{
		TotalHours:           schedule.TotalAvailableHours(slots),
		DaysWithAvailability: schedule.DaysWithAvailability(slots),
	}, nil
}
