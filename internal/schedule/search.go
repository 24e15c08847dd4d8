package schedule

import (
	"net/http"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/apperror"
)

var ErrInvalidWindow = apperror.New(http.StatusBadRequest, "search window must satisfy 0 <= start < end <= 24 with a positive step")

// SearchWindow bounds the free-slot search within a day. The original UIs
// hardcoded business hours; here it is a policy value carried by the caller.
type SearchWindow struct {
	StartHour float64
	EndHour   float64
	Step      float64
}

// DefaultSearchWindow is the business-day default: 06:00-22:00 stepped by 30
// minutes.
func DefaultSearchWindow() SearchWindow {
	return SearchWindow{StartHour: 6, EndHour: 22, Step: 0.5}
}

// Validate rejects windows the search loop cannot make progress over.
func (w SearchWindow) Validate() error {
	if w.StartHour < 0 || w.EndHour > 24 || w.StartHour >= w.EndHour || w.Step <= 0 {
		return ErrInvalidWindow
	}
	return nil
}

// covers reports whether any slot on the date fully contains [start, end).
// Containment, not overlap: the whole requested window must lie inside one
// declared slot.
func covers(slots []TimeSlot, date string, start, end float64) bool {
	for _, s := range slots {
		if s.Date == date && start >= s.StartHour && end <= s.EndHour {
			return true
		}
	}
	return false
}

// FindAvailableSlots enumerates candidate start hours on the given date where
// a meeting of duration hours fits inside both users' declared availability
// and conflicts with no existing meeting of either user. Results are ascending.
// Merged and unmerged slot lists both work; mixed-date lists are tolerated.
func FindAvailableSlots(
	window SearchWindow,
	date string,
	userASlots, userBSlots []TimeSlot,
	duration float64,
	meetings []Meeting,
	userAID, userBID string,
) []float64 {
	available := []float64{}
	for h := window.StartHour; h+duration <= window.EndHour; h += window.Step {
		end := h + duration
		if !covers(userASlots, date, h, end) || !covers(userBSlots, date, h, end) {
			continue
		}
		if FindConflict(meetings, userAID, date, h, end, "") != nil {
			continue
		}
		if FindConflict(meetings, userBID, date, h, end, "") != nil {
			continue
		}
		available = append(available, h)
	}
	return available
}
