package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                  string
	FirebaseCredentials   string
	FirebaseProjectID     string
	FirebaseDatabaseURL   string
	FirebaseStorageBucket string
	FirebaseWebAPIKey     string
	MailgunDomain         string
	MailgunAPIKey         string
	MailFromEmail         string
	MailFromName          string
	ResetBaseURL          string
	ResetTokenExpiry      time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	resetExpiry := time.Hour
	if exp := os.Getenv("RESET_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			resetExpiry = parsed
		}
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		FirebaseCredentials:   getEnv("FIREBASE_CREDENTIALS", ""),
		FirebaseProjectID:     getEnv("FIREBASE_PROJECT_ID", "parent-ceo"),
		FirebaseDatabaseURL:   getEnv("FIREBASE_DATABASE_URL", "https://parent-ceo-default-rtdb.firebaseio.com"),
		FirebaseStorageBucket: getEnv("FIREBASE_STORAGE_BUCKET", ""),
		FirebaseWebAPIKey:     getEnv("FIREBASE_WEB_API_KEY", ""),
		MailgunDomain:         getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:         getEnv("MAILGUN_API_KEY", ""),
		MailFromEmail:         getEnv("MAILGUN_FROM_EMAIL", "noreply@plek.app"),
		MailFromName:          getEnv("MAILGUN_FROM_NAME", "Plek App"),
		ResetBaseURL:          getEnv("RESET_BASE_URL", "https://app.plek.com/reset-password"),
		ResetTokenExpiry:      resetExpiry,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
