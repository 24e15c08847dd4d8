package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ghpham11a/xp-scheduler-sub000/internal/schedule"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string
	SeedUsers    bool

	// SearchWindow bounds the free-slot search. The defaults mirror the
	// business-day assumption of the scheduling UI but are plain policy
	// knobs, not constants.
	SearchWindow schedule.SearchWindow
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	// Production origins (default: empty)
	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")

	// Application environment (default: dev)
	appEnvStr := getEnv("APP_ENV", "dev")
	cfg.IsProduction = appEnvStr == PROD_STRING

	// HTTP listen address (default: :8080)
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	// Database DSN is required
	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	// Seed default users when the users table is empty (default: true)
	cfg.SeedUsers, err = getEnvAsBool("SEED_USERS", true)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_USERS: %w", err)
	}

	// Free-slot search window
	window := schedule.DefaultSearchWindow()
	window.StartHour, err = getEnvAsFloat("SEARCH_DAY_START", window.StartHour)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DAY_START: %w", err)
	}
	window.EndHour, err = getEnvAsFloat("SEARCH_DAY_END", window.EndHour)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_DAY_END: %w", err)
	}
	window.Step, err = getEnvAsFloat("SEARCH_STEP_HOURS", window.Step)
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_STEP_HOURS: %w", err)
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("invalid search window: %w", err)
	}
	cfg.SearchWindow = window

	return cfg, nil
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float64.
// It returns the default value if the variable is not set.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}

	return val, nil
}

// getEnvAsBool retrieves an environment variable as a bool.
// It returns the default value if the variable is not set.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, fmt.Errorf("env %s value %q is not a valid boolean: %w", key, valStr, err)
	}

	return val, nil
}
