package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Init loads the .env file (if present) and configures logging.
// Must be called before any other config function.
func Init() {
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GraderTimeout bounds a single call to the external grading model.
func GraderTimeout() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("GRADER_TIMEOUT_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 45
	}
	return time.Duration(seconds) * time.Second
}

func CookieDomain() string {
	return os.Getenv("COOKIE_DOMAIN")
}
