package meeting

import (
	"net/http"
	"time"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/apperror"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "meeting not found")
	ErrTimeConflict    = apperror.New(http.StatusConflict, "requested time is no longer free")
	ErrSameParticipant = apperror.New(http.StatusBadRequest, "organizer and participant must be different users")
	ErrUserNotFound    = apperror.New(http.StatusNotFound, "user not found")
	ErrInvalidSearch   = apperror.New(http.StatusBadRequest, "invalid free-slot search parameters")
)

// Meeting is a booked two-person meeting. Immutable once created except for
// deletion; there is no reschedule-in-place.
type Meeting struct {
	ID            string
	OrganizerID   string
	ParticipantID string
	Date          string
	StartHour     float64
	EndHour       float64
	Title         string
	CreatedAt     time.Time
}

// Engine converts the meeting to the engine's view of it.
func (m *Meeting) Engine() schedule.Meeting {
	return schedule.Meeting{
		ID:            m.ID,
		OrganizerID:   m.OrganizerID,
		ParticipantID: m.ParticipantID,
		Date:          m.Date,
		StartHour:     m.StartHour,
		EndHour:       m.EndHour,
		Title:         m.Title,
	}
}

// engineMeetings converts a snapshot for the conflict/search engine.
func engineMeetings(meetings []*Meeting) []schedule.Meeting {
	out := make([]schedule.Meeting, len(meetings))
	for i, m := range meetings {
		out[i] = m.Engine()
	}
	return out
}

// Filter defines parameters for listing meetings.
type Filter struct {
	UserID   string // matches organizer or participant
	Date     string
	Page     int
	PageSize int
}

// DaySlots groups candidate start hours for one date. Days without candidates
// are omitted from search results.
type DaySlots struct {
	Date       string
	StartHours []float64
}
