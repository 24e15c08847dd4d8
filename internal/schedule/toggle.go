package schedule

// AddBlock appends a single 30-minute block starting at hour on the given
// date. The result is intentionally unmerged; callers re-establish the merged
// invariant with Merge before persisting.
func AddBlock(slots []TimeSlot, date string, hour float64) []TimeSlot {
	out := make([]TimeSlot, len(slots), len(slots)+1)
	copy(out, slots)
	return append(out, TimeSlot{Date: date, StartHour: hour, EndHour: hour + BlockHours})
}

// RemoveBlock carves the 30-minute block [hour, hour+0.5) out of every slot on
// the given date that covers it, splitting slots as needed. Slots on other
// dates, and slots not covering the block, pass through unchanged. A slot that
// is exactly the removed block disappears.
func RemoveBlock(slots []TimeSlot, date string, hour float64) []TimeSlot {
	blockEnd := hour + BlockHours
	out := make([]TimeSlot, 0, len(slots)+1)

	for _, s := range slots {
		if s.Date != date || hour < s.StartHour || hour >= s.EndHour {
			out = append(out, s)
			continue
		}
		if hour > s.StartHour {
			out = append(out, TimeSlot{Date: date, StartHour: s.StartHour, EndHour: hour})
		}
		if blockEnd < s.EndHour {
			out = append(out, TimeSlot{Date: date, StartHour: blockEnd, EndHour: s.EndHour})
		}
	}

	return out
}
