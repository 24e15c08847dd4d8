package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/availability"
	availHttp "github.com/ghpham11a/xp-scheduler-sub000/internal/availability/http"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/meeting"
	meetingHttp "github.com/ghpham11a/xp-scheduler-sub000/internal/meeting/http"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/user"
	userHttp "github.com/ghpham11a/xp-scheduler-sub000/internal/user/http"
)

// Config holds the services the router exposes over HTTP.
type Config struct {
	IsProduction        bool
	ProdOrigins         string
	UserService         user.Service
	AvailabilityService availability.Service
	MeetingService      meeting.Service
}

// NewRouter initializes the HTTP router engine: middleware (Logger, Recovery,
// CORS) plus route registration for every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		// Local web client default
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	userHandler := userHttp.NewHandler(cfg.UserService)
	availHandler := availHttp.NewHandler(cfg.AvailabilityService)
	meetingHandler := meetingHttp.NewHandler(cfg.MeetingService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler)
		availHttp.RegisterRoutes(v1, availHandler)
		meetingHttp.RegisterRoutes(v1, meetingHandler)
	}

	return r
}
