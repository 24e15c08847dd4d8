package schedule

// Meeting is the engine's view of a booked meeting: exactly two participants
// on a naive date with decimal-hour bounds.
type Meeting struct {
	ID            string  `json:"id"`
	OrganizerID   string  `json:"organizerId"`
	ParticipantID string  `json:"participantId"`
	Date          string  `json:"date"`
	StartHour     float64 `json:"startHour"`
	EndHour       float64 `json:"endHour"`
	Title         string  `json:"title"`
}

// Involves reports whether the user is the organizer or the participant.
func (m Meeting) Involves(userID string) bool {
	return m.OrganizerID == userID || m.ParticipantID == userID
}

// FindConflict returns the first meeting of the user on the given date whose
// time range overlaps [startHour, endHour), or nil if none does. Half-open
// semantics: a meeting ending exactly at startHour (or starting exactly at
// endHour) does not conflict. excludeMeetingID skips one meeting by id; pass
// "" to consider all.
func FindConflict(meetings []Meeting, userID, date string, startHour, endHour float64, excludeMeetingID string) *Meeting {
	for i := range meetings {
		m := meetings[i]
		if excludeMeetingID != "" && m.ID == excludeMeetingID {
			continue
		}
		if m.Date != date || !m.Involves(userID) {
			continue
		}
		if startHour < m.EndHour && endHour > m.StartHour {
			return &m
		}
	}
	return nil
}
