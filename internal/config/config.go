package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	DBUrl            string
	DBMaxConns       int
	DBMinConns       int
	JWTSecret        string
	OpenAIAPIKey     string
	OpenAIModel      string
	ResendAPIKey     string
	ContactFromEmail string
	ContactToEmail   string
	GuestUnlockLimit int
	DefaultTotalDays int
	AppEnv           string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBUrl:            getEnv("DB_URL", ""),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 10),
		DBMinConns:       getEnvInt("DB_MIN_CONNS", 2),
		JWTSecret:        jwtSecret,
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "noreply@wizqo.com"),
		ContactToEmail:   getEnv("CONTACT_TO_EMAIL", ""),
		GuestUnlockLimit: getEnvInt("GUEST_UNLOCK_LIMIT", 1),
		DefaultTotalDays: getEnvInt("DEFAULT_TOTAL_DAYS", 7),
		AppEnv:           normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
