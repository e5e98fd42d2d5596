package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Stripe   StripeConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Port         string
	Environment  string
	JWTSecret    string
	BaseURL      string
	AllowOrigins string
	UploadDir    string
	TestMode     bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type StripeConfig struct {
	SecretKey string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
}

func (d DatabaseConfig) DSN() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

func Load() (*Config, error) {
	// Tests run against a separate database and a fixed secret.
	if os.Getenv("GO_ENV") == "test" {
		_ = godotenv.Load(".env.test")
	} else {
		_ = godotenv.Load()
	}

	testMode, _ := strconv.ParseBool(getEnv("TEST_MODE", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "3001"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
			BaseURL:      getEnv("BASE_URL", "http://localhost:3001"),
			AllowOrigins: getEnv("ALLOW_ORIGINS", "*"),
			UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
			TestMode:     testMode,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "sportzasve"),
			Password: getEnv("DB_PASSWORD", "sportzasve"),
			Name:     getEnv("DB_NAME", "sportzasve"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Stripe: StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Sport za sve <noreply@sportzasve.app>"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
