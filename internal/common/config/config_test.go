package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.MongoURL != "mongodb://localhost:27017" {
		t.Errorf("unexpected default mongo url %s", cfg.MongoURL)
	}
	if cfg.MongoDatabase != "my_database" {
		t.Errorf("unexpected default database %s", cfg.MongoDatabase)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("unexpected default timeout %v", cfg.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("BLOG_HTTP_PORT", "9090")
	t.Setenv("MONGO_DATABASE", "blog_test")
	t.Setenv("BLOG_REQUEST_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.MongoDatabase != "blog_test" {
		t.Errorf("expected database blog_test, got %s", cfg.MongoDatabase)
	}
	if cfg.RequestTimeout != 250*time.Millisecond {
		t.Errorf("expected timeout 250ms, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingRequiredEnv) {
		t.Errorf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := Load()
	if !errors.Is(err, ErrInvalidSessionSecret) {
		t.Errorf("expected ErrInvalidSessionSecret, got %v", err)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("BLOG_REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("expected fallback timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoad_ShortSecretReportsLength(t *testing.T) {
	t.Setenv("SESSION_SECRET", "abc")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "3 bytes") {
		t.Errorf("expected length in error, got %v", err)
	}
}
