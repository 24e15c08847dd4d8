package http

import (
	"github.com/ghpham11a/xp-scheduler-sub000/internal/availability"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

// TimeSlotBody is one slot in a PUT body.
type TimeSlotBody struct {
	Date      string   `json:"date" binding:"required"`
	StartHour *float64 `json:"startHour" binding:"required"`
	EndHour   *float64 `json:"endHour" binding:"required"`
}

// ReplaceSlotsBody is the full-replacement payload: the complete slot list
// for the user, never a delta.
type ReplaceSlotsBody struct {
	Slots []TimeSlotBody `json:"slots"`
}

func (b ReplaceSlotsBody) toSlots() []schedule.TimeSlot {
	slots := make([]schedule.TimeSlot, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = schedule.TimeSlot{Date: s.Date, StartHour: *s.StartHour, EndHour: *s.EndHour}
	}
	return slots
}

type ToggleBlockBody struct {
	Date string   `json:"date" binding:"required"`
	Hour *float64 `json:"hour" binding:"required"`
}

type ApplyPresetBody struct {
	Date   string `json:"date" binding:"required"`
	Preset string `json:"preset" binding:"required"`
}

type AvailabilityResponse struct {
	UserID string              `json:"userId"`
	Slots  []schedule.TimeSlot `json:"slots"`
}

func NewAvailabilityResponse(a *availability.Availability) AvailabilityResponse {
	slots := a.Slots
	if slots == nil {
		slots = []schedule.TimeSlot{}
	}
	return AvailabilityResponse{UserID: a.UserID, Slots: slots}
}

type SummaryResponse struct {
	UserID               string  `json:"userId"`
	TotalHours           float64 `json:"totalHours"`
	DaysWithAvailability int     `json:"daysWithAvailability"`
}
