package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/availability"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/pkg/response"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	availabilities, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AvailabilityResponse, len(availabilities))
	for i, a := range availabilities {
		items[i] = NewAvailabilityResponse(a)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}

func (h *Handler) Replace(c *gin.Context) {
	var body ReplaceSlotsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.ReplaceSlots(c.Request.Context(), c.Param("userId"), body.toSlots())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}

func (h *Handler) Toggle(c *gin.Context) {
	var body ToggleBlockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.ToggleBlock(c.Request.Context(), c.Param("userId"), body.Date, *body.Hour)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}

func (h *Handler) ApplyPreset(c *gin.Context) {
	var body ApplyPresetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.ApplyPreset(c.Request.Context(), c.Param("userId"), body.Date, schedule.Preset(body.Preset))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAvailabilityResponse(a))
}

func (h *Handler) Summary(c *gin.Context) {
	userID := c.Param("userId")
	s, err := h.service.Summary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, SummaryResponse{
		UserID:               userID,
		TotalHours:           s.TotalHours,
		DaysWithAvailability: s.DaysWithAvailability,
	})
}
