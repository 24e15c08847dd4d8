package availability

import (
	"net/http"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/apperror"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

var ErrInvalidBlockHour = apperror.New(http.StatusBadRequest, "block hour must be a half-hour step within the day")

// Availability is one user's declared free time. The stored slot list is
// always merged: per date, sorted and free of overlaps and adjacency.
type Availability struct {
	UserID string
	Slots  []schedule.TimeSlot
}

// Summary aggregates a user's availability for display.
type Summary struct {
	TotalHours           float64
	DaysWithAvailability int
}
