// Package schedule implements the availability/conflict engine shared by the
// scheduler API: time-slot merging, 30-minute block toggling, meeting conflict
// detection and free-slot search. Every function is pure and operates on the
// snapshot it is given; persistence is the caller's concern.
package schedule

import (
	"net/http"
	"sort"
	"time"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/apperror"
)

// DateLayout is the naive ISO date format used everywhere (no timezone).
const DateLayout = "2006-01-02"

// BlockHours is the granularity of the availability grid (30 minutes).
const BlockHours = 0.5

var (
	ErrInvalidDate  = apperror.New(http.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	ErrInvalidHours = apperror.New(http.StatusBadRequest, "slot hours must satisfy 0 <= start < end <= 24")
)

// TimeSlot is a date-scoped half-open interval [StartHour, EndHour) in decimal
// hours. An hour exactly equal to EndHour is not covered.
type TimeSlot struct {
	Date      string  `json:"date"`
	StartHour float64 `json:"startHour"`
	EndHour   float64 `json:"endHour"`
}

// ValidateDate checks that date is a naive ISO date (YYYY-MM-DD).
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// NewTimeSlot validates and constructs a TimeSlot.
func NewTimeSlot(date string, startHour, endHour float64) (TimeSlot, error) {
	if err := ValidateDate(date); err != nil {
		return TimeSlot{}, err
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return TimeSlot{}, ErrInvalidHours
	}
	return TimeSlot{Date: date, StartHour: startHour, EndHour: endHour}, nil
}

// ValidateSlots checks every slot in the list the same way NewTimeSlot does.
func ValidateSlots(slots []TimeSlot) error {
	for _, s := range slots {
		if _, err := NewTimeSlot(s.Date, s.StartHour, s.EndHour); err != nil {
			return err
		}
	}
	return nil
}

// Merge collapses overlapping and exactly-adjacent slots into a minimal set.
// Slots are grouped per date; within a date the result is sorted ascending by
// start hour with no overlaps or adjacency remaining. Dates are emitted in
// ascending order so the output is deterministic. Merge is idempotent.
func Merge(slots []TimeSlot) []TimeSlot {
	if len(slots) == 0 {
		return []TimeSlot{}
	}

	byDate := make(map[string][]TimeSlot)
	for _, s := range slots {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	merged := make([]TimeSlot, 0, len(slots))
	for _, d := range dates {
		daySlots := byDate[d]
		sort.Slice(daySlots, func(i, j int) bool {
			return daySlots[i].StartHour < daySlots[j].StartHour
		})

		current := daySlots[0]
		for _, s := range daySlots[1:] {
			if s.StartHour <= current.EndHour {
				// Overlapping or adjacent; a fully contained slot must not
				// shrink the accumulator, hence the max.
				if s.EndHour > current.EndHour {
					current.EndHour = s.EndHour
				}
			} else {
				merged = append(merged, current)
				current = s
			}
		}
		merged = append(merged, current)
	}

	return merged
}
