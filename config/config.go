package config

import (
	"os"
	"strconv"
	"time"

	"movieflix/constants"
	"movieflix/logger"

	"github.com/joho/godotenv"
)

// Config carries every externally configured value. It is built once at
// startup and handed to the component constructors; nothing below the
// controllers reads the environment directly.
type Config struct {
	AppHost string
	AppPort string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	// PosterDir is the flat directory holding poster files; BaseURL is
	// the public prefix from which posterUrl values are derived.
	PosterDir string
	BaseURL   string

	DefaultPageNumber    int
	DefaultPageSize      int
	DefaultSortBy        string
	DefaultSortDirection string

	OTPExpiry        time.Duration
	LogRetentionDays int

	FrontendURL string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// Load reads .env (when present) and assembles the Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Warning("No .env file found, relying on process environment")
	}

	return &Config{
		AppHost: getEnv("APP_HOST", "0.0.0.0"),
		AppPort: getEnv("APP_PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_DATABASE"),
		DBUser:     os.Getenv("DB_USERNAME"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		PosterDir: getEnv("POSTER_DIR", "posters"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:8080"),

		DefaultPageNumber:    getEnvInt("PAGE_NUMBER", constants.DefaultPageNumber),
		DefaultPageSize:      getEnvInt("PAGE_SIZE", constants.DefaultPageSize),
		DefaultSortBy:        getEnv("SORT_BY", constants.DefaultSortBy),
		DefaultSortDirection: getEnv("SORT_DIRECTION", constants.DefaultSortDirection),

		OTPExpiry:        time.Duration(getEnvInt("OTP_EXPIRY_SECONDS", constants.OTPExpirySeconds)) * time.Second,
		LogRetentionDays: getEnvInt("LOG_RETENTION_DAYS", 30),

		FrontendURL: getEnv("FRONTEND_URL", "*"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Warning("Invalid integer for " + key + ", using default")
		return fallback
	}
	return n
}
