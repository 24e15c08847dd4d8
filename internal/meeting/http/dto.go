package http

import (
	"time"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/meeting"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/request"
)

// ListMeetingsRequest defines query parameters for listing meetings.
type ListMeetingsRequest struct {
	request.ListParams
	UserID string `form:"user_id"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type CreateMeetingBody struct {
	OrganizerID   string   `json:"organizerId" binding:"required"`
	ParticipantID string   `json:"participantId" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	StartHour     *float64 `json:"startHour" binding:"required"`
	EndHour       *float64 `json:"endHour" binding:"required"`
	Title         string   `json:"title" binding:"required"`
}

// FreeSlotsRequest defines query parameters for the free-slot search.
type FreeSlotsRequest struct {
	OrganizerID   string  `form:"organizer_id" binding:"required"`
	ParticipantID string  `form:"participant_id" binding:"required"`
	Date          string  `form:"date" binding:"required,datetime=2006-01-02"`
	Days          int     `form:"days,default=7" binding:"omitempty,min=1,max=31"`
	Duration      float64 `form:"duration,default=0.5" binding:"omitempty,gt=0"`
}

type MeetingResponse struct {
	ID            string    `json:"id"`
	OrganizerID   string    `json:"organizerId"`
	ParticipantID string    `json:"participantId"`
	Date          string    `json:"date"`
	StartHour     float64   `json:"startHour"`
	EndHour       float64   `json:"endHour"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewMeetingResponse(m *meeting.Meeting) MeetingResponse {
	return MeetingResponse{
		ID:            m.ID,
		OrganizerID:   m.OrganizerID,
		ParticipantID: m.ParticipantID,
		Date:          m.Date,
		StartHour:     m.StartHour,
		EndHour:       m.EndHour,
		Title:         m.Title,
		CreatedAt:     m.CreatedAt,
	}
}

type DaySlotsResponse struct {
	Date       string    `json:"date"`
	StartHours []float64 `json:"startHours"`
}

type FreeSlotsResponse struct {
	Days []DaySlotsResponse `json:"days"`
}

func NewFreeSlotsResponse(days []meeting.DaySlots) FreeSlotsResponse {
	items := make([]DaySlotsResponse, len(days))
	for i, d := range days {
		items[i] = DaySlotsResponse{Date: d.Date, StartHours: d.StartHours}
	}
	return FreeSlotsResponse{Days: items}
}

type DeleteMeetingResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
