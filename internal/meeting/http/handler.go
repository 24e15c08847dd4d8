package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/meeting"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/response"
)

type Handler struct {
	service meeting.Service
}

func NewHandler(service meeting.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListMeetingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := meeting.Filter{
		UserID:   req.UserID,
		Date:     req.Date,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	meetings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MeetingResponse, len(meetings))
	for i, m := range meetings {
		items[i] = NewMeetingResponse(m)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewMeetingResponse(m))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateMeetingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := meeting.CreateRequest{
		OrganizerID:   body.OrganizerID,
		ParticipantID: body.ParticipantID,
		Date:          body.Date,
		StartHour:     *body.StartHour,
		EndHour:       *body.EndHour,
		Title:         body.Title,
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewMeetingResponse(m))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, DeleteMeetingResponse{Status: "deleted", ID: id})
}

func (h *Handler) FreeSlots(c *gin.Context) {
	var req FreeSlotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	days, err := h.service.FindFreeSlots(c.Request.Context(), meeting.SearchRequest{
		OrganizerID:   req.OrganizerID,
		ParticipantID: req.ParticipantID,
		FromDate:      req.Date,
		Days:          req.Days,
		Duration:      req.Duration,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewFreeSlotsResponse(days))
}
