package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/api"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/availability"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/meeting"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
	"github.com/ghpham11a/xp-scheduler-sub000/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	SearchWindow schedule.SearchWindow
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	UserService user.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Availability Module
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo)

	// Meeting Module
	meetingRepo := meeting.NewPgxRepository(cfg.DBPool)
	meetingService := meeting.NewService(meetingRepo, userService, availService, cfg.SearchWindow)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		UserService:         userService,
		AvailabilityService: availService,
		MeetingService:      meetingService,
	})

	return &Container{
		Router:      router,
		UserService: userService,
	}
}
