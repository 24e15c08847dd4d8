package schedule

import (
	"net/http"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/apperror"
)

var ErrUnknownPreset = apperror.New(http.StatusBadRequest, "unknown availability preset")

// Preset is a named one-tap availability range for a single day.
type Preset string

const (
	PresetAllDay    Preset = "all_day"
	PresetBusiness  Preset = "business"
	PresetMorning   Preset = "morning"
	PresetAfternoon Preset = "afternoon"
	PresetEvening   Preset = "evening"
	// PresetClear removes all availability for the day.
	PresetClear Preset = "clear"
)

// presetRanges are the hour ranges offered by the availability quick actions.
var presetRanges = map[Preset][2]float64{
	PresetAllDay:    {6, 22},
	PresetBusiness:  {9, 17},
	PresetMorning:   {6, 12},
	PresetAfternoon: {12, 18},
	PresetEvening:   {18, 22},
}

// Range returns the hour range for the preset. ok is false for PresetClear
// and unknown values.
func (p Preset) Range() (startHour, endHour float64, ok bool) {
	r, ok := presetRanges[p]
	return r[0], r[1], ok
}

// Valid reports whether p names a known preset, including PresetClear.
func (p Preset) Valid() bool {
	if p == PresetClear {
		return true
	}
	_, ok := presetRanges[p]
	return ok
}

// ApplyPreset replaces the date's slots with the preset's range (or clears the
// date for PresetClear) and returns the merged result. Other dates are
// untouched.
func ApplyPreset(slots []TimeSlot, date string, p Preset) ([]TimeSlot, error) {
	if !p.Valid() {
		return nil, ErrUnknownPreset
	}

	out := make([]TimeSlot, 0, len(slots)+1)
	for _, s := range slots {
		if s.Date != date {
			out = append(out, s)
		}
	}
	if start, end, ok := p.Range(); ok {
		out = append(out, TimeSlot{Date: date, StartHour: start, EndHour: end})
	}
	return Merge(out), nil
}
