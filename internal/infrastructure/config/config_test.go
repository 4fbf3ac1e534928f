package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv removes the variable for the
	// duration of the test.
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "JWT_SECRET", "JWT_EXPIRE", "DATABASE_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %s", cfg.Port)
	}
	if !cfg.Development() {
		t.Fatalf("expected development mode by default")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.JWTExpire != 168*time.Hour {
		t.Fatalf("expected 168h token lifetime, got %s", cfg.JWTExpire)
	}
	if !cfg.UsingInsecureSecret() {
		t.Fatalf("expected fallback to the insecure dev secret")
	}
	if cfg.DatabaseURL == "" {
		t.Fatalf("expected a default database url")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("JWT_EXPIRE", "24h")
	t.Setenv("DATABASE_URL", "postgres://app:app@db:5432/products?sslmode=require")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("port override ignored: %s", cfg.Port)
	}
	if cfg.Development() {
		t.Fatalf("production must not report development mode")
	}
	if cfg.JWTExpire != 24*time.Hour {
		t.Fatalf("expire override ignored: %s", cfg.JWTExpire)
	}
	if cfg.UsingInsecureSecret() {
		t.Fatalf("explicit secret must not be flagged insecure")
	}
	if cfg.DatabaseURL != "postgres://app:app@db:5432/products?sslmode=require" {
		t.Fatalf("database url override ignored: %s", cfg.DatabaseURL)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("JWT_EXPIRE", "not-a-duration")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected an error for a malformed duration")
	}
}
