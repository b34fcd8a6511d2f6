// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxUploadMB  int

	// MongoDB
	MongoURI string
	MongoDB  string

	// Postgres reference tables (optional)
	PostgresDSN string

	// OCR
	OCREngine             string
	OCRLanguages          string
	GoogleCredentialsFile string

	// Push gateway
	PushEndpoint string
	PushToken    string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		MaxUploadMB:  getEnvAsInt("MAX_UPLOAD_MB", 10),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "smartpass"),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		OCREngine:             getEnv("OCR_ENGINE", "tesseract"),
		OCRLanguages:          getEnv("OCR_LANGUAGES", "eng"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),

		PushEndpoint: getEnv("PUSH_ENDPOINT", ""),
		PushToken:    getEnv("PUSH_TOKEN", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
