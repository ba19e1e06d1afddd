package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/avasilyev/blogd/internal/common/constants"
)

var (
	ErrMissingRequiredEnv   = errors.New("missing required environment variable")
	ErrInvalidSessionSecret = errors.New("SESSION_SECRET must be at least 32 bytes")
)

type Config struct {
	HTTPPort       string
	MongoURL       string
	MongoDatabase  string
	SessionSecret  string
	TemplateDir    string
	StaticDir      string
	RequestTimeout time.Duration
}

func Load() (Config, error) {
	sessionSecret, err := mustEnv("SESSION_SECRET")
	if err != nil {
		return Config{}, err
	}

	if len(sessionSecret) < constants.SessionSecretMinSize {
		return Config{}, fmt.Errorf("%w: got %d bytes", ErrInvalidSessionSecret, len(sessionSecret))
	}

	return Config{
		HTTPPort:       getEnv("BLOG_HTTP_PORT", "8080"),
		MongoURL:       getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "my_database"),
		SessionSecret:  sessionSecret,
		TemplateDir:    getEnv("BLOG_TEMPLATE_DIR", "web/templates"),
		StaticDir:      getEnv("BLOG_STATIC_DIR", "web/static"),
		RequestTimeout: getDurationEnv("BLOG_REQUEST_TIMEOUT", 5*time.Second),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
