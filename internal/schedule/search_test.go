package schedule

import (
	"reflect"
	"testing"
)

func TestFindAvailableSlots(t *testing.T) {
	window := DefaultSearchWindow()
	aSlots := []TimeSlot{{Date: "2025-06-02", StartHour: 9, EndHour: 17}}
	bSlots := []TimeSlot{{Date: "2025-06-02", StartHour: 13, EndHour: 18}}

	tests := []struct {
		name     string
		aSlots   []TimeSlot
		bSlots   []TimeSlot
		duration float64
		meetings []Meeting
		want     []float64
	}{
		{
			name:     "Mutual window intersection with one-hour duration",
			aSlots:   aSlots,
			bSlots:   bSlots,
			duration: 1.0,
			meetings: nil,
			// [h, h+1) must fit inside [9,17) ∩ [13,18) = [13,17)
			want: []float64{13, 13.5, 14, 14.5, 15, 15.5, 16},
		},
		{
			name:     "Existing meeting excludes intersecting starts",
			aSlots:   aSlots,
			bSlots:   bSlots,
			duration: 1.0,
			meetings: []Meeting{
				{ID: "m-1", OrganizerID: "user-1", ParticipantID: "user-3", Date: "2025-06-02", StartHour: 14, EndHour: 15},
			},
			// Any start whose window intersects [14,15) is out: 13.5, 14, 14.5.
			// 13 survives because [13,14) only touches the boundary.
			want: []float64{13, 15, 15.5, 16},
		},
		{
			name:     "Participant conflict also excludes",
			aSlots:   aSlots,
			bSlots:   bSlots,
			duration: 1.0,
			meetings: []Meeting{
				{ID: "m-2", OrganizerID: "user-4", ParticipantID: "user-2", Date: "2025-06-02", StartHour: 15, EndHour: 16},
			},
			want: []float64{13, 13.5, 14, 16},
		},
		{
			name:     "Empty availability for one user yields nothing",
			aSlots:   aSlots,
			bSlots:   []TimeSlot{},
			duration: 1.0,
			meetings: nil,
			want:     []float64{},
		},
		{
			name:     "Meeting on another date is ignored",
			aSlots:   aSlots,
			bSlots:   bSlots,
			duration: 1.0,
			meetings: []Meeting{
				{ID: "m-3", OrganizerID: "user-1", ParticipantID: "user-2", Date: "2025-06-03", StartHour: 13, EndHour: 17},
			},
			want: []float64{13, 13.5, 14, 14.5, 15, 15.5, 16},
		},
		{
			name:     "Duration longer than the intersection yields nothing",
			aSlots:   aSlots,
			bSlots:   bSlots,
			duration: 5.0,
			meetings: nil,
			want:     []float64{},
		},
		{
			name:     "Half-hour duration reaches the end of the intersection",
			aSlots:   aSlots,
			bSlots:   bSlots,
			duration: 0.5,
			meetings: nil,
			want:     []float64{13, 13.5, 14, 14.5, 15, 15.5, 16, 16.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAvailableSlots(window, "2025-06-02", tt.aSlots, tt.bSlots, tt.duration, tt.meetings, "user-1", "user-2")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindAvailableSlots() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindAvailableSlotsWindowBounds(t *testing.T) {
	// Availability wider than the window: candidates stay inside it, and the
	// last start must leave room for the full duration.
	window := DefaultSearchWindow()
	slots := []TimeSlot{{Date: "2025-06-02", StartHour: 0, EndHour: 24}}

	got := FindAvailableSlots(window, "2025-06-02", slots, slots, 2.0, nil, "user-1", "user-2")
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}
	if got[0] != window.StartHour {
		t.Errorf("first candidate %v, want %v", got[0], window.StartHour)
	}
	if last := got[len(got)-1]; last+2.0 > window.EndHour {
		t.Errorf("last candidate %v overruns window end %v", last, window.EndHour)
	}
}

func TestFindAvailableSlotsRespectsCustomWindow(t *testing.T) {
	window := SearchWindow{StartHour: 9, EndHour: 12, Step: 1}
	slots := []TimeSlot{{Date: "2025-06-02", StartHour: 0, EndHour: 24}}

	got := FindAvailableSlots(window, "2025-06-02", slots, slots, 1.0, nil, "user-1", "user-2")
	want := []float64{9, 10, 11}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAvailableSlots() = %v, want %v", got, want)
	}
}

func TestFindAvailableSlotsUnmergedInput(t *testing.T) {
	// Containment is checked per slot, so unmerged-but-covering fragments on
	// either side behave like their merged form only when one fragment holds
	// the whole window.
	window := DefaultSearchWindow()
	fragmented := []TimeSlot{
		{Date: "2025-06-02", StartHour: 13, EndHour: 15},
		{Date: "2025-06-02", StartHour: 13, EndHour: 17},
	}
	other := []TimeSlot{{Date: "2025-06-02", StartHour: 13, EndHour: 17}}

	got := FindAvailableSlots(window, "2025-06-02", fragmented, other, 1.0, nil, "user-1", "user-2")
	want := []float64{13, 13.5, 14, 14.5, 15, 15.5, 16}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindAvailableSlots() = %v, want %v", got, want)
	}
}

func TestSearchWindowValidate(t *testing.T) {
	tests := []struct {
		name    string
		window  SearchWindow
		wantErr bool
	}{
		{"Default window", DefaultSearchWindow(), false},
		{"Zero step", SearchWindow{StartHour: 6, EndHour: 22}, true},
		{"Inverted bounds", SearchWindow{StartHour: 22, EndHour: 6, Step: 0.5}, true},
		{"Past midnight", SearchWindow{StartHour: 6, EndHour: 25, Step: 0.5}, true},
		{"Negative start", SearchWindow{StartHour: -1, EndHour: 22, Step: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.window.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
