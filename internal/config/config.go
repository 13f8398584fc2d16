package config

import (
	"os"
)

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
}

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	AllowOrigins string
	Email        EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:         getenv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		AllowOrigins: getenv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
	}

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getenv("EMAIL_FROM_ADDRESS", "noreply@gatherly.app")
	cfg.Email.FromName = getenv("EMAIL_FROM_NAME", "Gatherly")

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
