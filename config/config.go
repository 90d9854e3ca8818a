package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	AdminPassword string
	JWTSecret     string

	ContactEmail string
	SMTPHost     string
	SMTPPort     int
	EmailUser    string
	EmailPass    string

	UploadBackend string // "local" or "s3"
	UploadDir     string
	MaxUploadMB   int64

	CORSOrigins []string
}

// Load reads the environment (.env included, when present) into a Config.
// The admin password and token secret have no fallback: running without
// them is a startup failure, not a weaker deployment.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ContactEmail:  os.Getenv("CONTACT_EMAIL"),
		SMTPHost:      getenv("SMTP_HOST", "smtp.gmail.com"),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		UploadBackend: getenv("UPLOAD_BACKEND", "local"),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	if cfg.UploadBackend != "local" && cfg.UploadBackend != "s3" {
		return nil, fmt.Errorf("UPLOAD_BACKEND must be \"local\" or \"s3\", got %q", cfg.UploadBackend)
	}

	smtpPort, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = smtpPort

	maxMB, err := strconv.ParseInt(getenv("MAX_UPLOAD_MB", "50"), 10, 64)
	if err != nil || maxMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer")
	}
	cfg.MaxUploadMB = maxMB

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(o))
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return cfg, nil
}

// MaxUploadBytes is the configured upload ceiling in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// EmailConfigured reports whether the notification gateway has credentials
// to run with; without them contact submissions are stored but not mailed.
func (c *Config) EmailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != "" && c.ContactEmail != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
