package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the process configuration: loaded once at startup, read-only
// afterwards. It carries the table-store coordinates and the token secret;
// it never holds connections or per-request state.
type Config struct {
	Port          string        `validate:"required"`
	SpreadsheetID string        `validate:"required"`
	GoogleAPIKey  string        `validate:"required"`
	SheetsBaseURL string        // empty means the public Sheets endpoint
	JWTSecret     string        `validate:"required"`
	HTTPTimeout   time.Duration `validate:"required"`
}

// Load reads the environment (plus a local .env when present) and validates
// the result. It does not probe connectivity; that is the health check's
// business, not startup's.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
		GoogleAPIKey:  os.Getenv("GOOGLE_API_KEY"),
		SheetsBaseURL: os.Getenv("SHEETS_BASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "teacher-dashboard-secret-key"), // default for development
		HTTPTimeout:   15 * time.Second,
	}
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
