package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JWTSecret         string
	JWTExpiry         time.Duration
	AWSRegion         string
	S3Bucket          string
	UsersTable        string
	DestinationsTable string
	CategoriesTable   string
	LogLevel          string
	LogFormat         string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtExpiry := 2 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtExpiry = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me-in-production"),
		JWTExpiry:         jwtExpiry,
		AWSRegion:         getEnv("AWS_REGION", "us-east-2"),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		UsersTable:        getEnv("USERS_TABLE", "vinkula-users"),
		DestinationsTable: getEnv("DESTINATIONS_TABLE", "vinkula-destinations"),
		CategoriesTable:   getEnv("CATEGORIES_TABLE", "vinkula-categories"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
