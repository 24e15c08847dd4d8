package schedule

// TotalAvailableHours sums the span of every slot in the list. Overlaps are
// not deduplicated; pass merged slots for a meaningful total.
func TotalAvailableHours(slots []TimeSlot) float64 {
	total := 0.0
	for _, s := range slots {
		total += s.EndHour - s.StartHour
	}
	return total
}

// DaysWithAvailability counts distinct dates that have at least one slot.
func DaysWithAvailability(slots []TimeSlot) int {
	seen := make(map[string]struct{})
	for _, s := range slots {
		seen[s.Date] = struct{}{}
	}
	return len(seen)
}

// IsHourInSlots reports whether the given hour on the given date falls inside
// any slot. Used to answer single-block toggle state.
func IsHourInSlots(slots []TimeSlot, date string, hour float64) bool {
	for _, s := range slots {
		if s.Date == date && hour >= s.StartHour && hour < s.EndHour {
			return true
		}
	}
	return false
}
