package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/availabilities")
	{
		group.GET("", h.List)
		group.GET("/:userId", h.Get)
		group.PUT("/:userId", h.Replace)
		group.POST("/:userId/toggle", h.Toggle)
		group.POST("/:userId/preset", h.ApplyPreset)
		group.GET("/:userId/summary", h.Summary)
	}
}
