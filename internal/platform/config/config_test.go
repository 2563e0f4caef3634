package config

import (
	"os"
	"testing"
	"time"
)

// Test environment variable keys.
const (
	testEnvPostgresDSN = "POSTGRES_DSN"
	testEnvLegacyDSN   = "CONTENT_DATABASE_URL"
	testEnvHTTPPort    = "HTTP_PORT"
	testEnvLegacyPort  = "PORT"
)

// Test values.
const (
	testPostgresDSN = "postgres://localhost/content"
	testLegacyDSN   = "postgres://legacy/content"
	testErrLoad     = "Load() error = %v"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	unsetEnv(t, testEnvPostgresDSN, testEnvLegacyDSN)

	_, err := Load()
	if err == nil {
		t.Error("expected error for missing database DSN")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	unsetEnv(t, testEnvLegacyDSN, testEnvHTTPPort, testEnvLegacyPort)
	t.Setenv(testEnvPostgresDSN, testPostgresDSN)

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.PostgresDSN != testPostgresDSN {
		t.Errorf("PostgresDSN = %q, want %q", cfg.PostgresDSN, testPostgresDSN)
	}

	if cfg.AppEnv != "local" {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, "local")
	}

	if cfg.HTTPPort != 3001 {
		t.Errorf("HTTPPort = %d, want %d", cfg.HTTPPort, 3001)
	}

	if cfg.DropdownOptionOrder != "lexicographic" {
		t.Errorf("DropdownOptionOrder = %q, want %q", cfg.DropdownOptionOrder, "lexicographic")
	}

	if cfg.DBMaxConnIdleTime != 30*time.Minute {
		t.Errorf("DBMaxConnIdleTime = %v, want %v", cfg.DBMaxConnIdleTime, 30*time.Minute)
	}
}

func TestLoad_LegacyAliases(t *testing.T) {
	unsetEnv(t, testEnvPostgresDSN, testEnvHTTPPort)
	t.Setenv(testEnvLegacyDSN, testLegacyDSN)
	t.Setenv(testEnvLegacyPort, "4000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.PostgresDSN != testLegacyDSN {
		t.Errorf("PostgresDSN = %q, want %q", cfg.PostgresDSN, testLegacyDSN)
	}

	if cfg.HTTPPort != 4000 {
		t.Errorf("HTTPPort = %d, want %d", cfg.HTTPPort, 4000)
	}
}

func TestLoad_PrimaryWinsOverAlias(t *testing.T) {
	t.Setenv(testEnvPostgresDSN, testPostgresDSN)
	t.Setenv(testEnvLegacyDSN, testLegacyDSN)
	t.Setenv(testEnvHTTPPort, "5000")
	t.Setenv(testEnvLegacyPort, "4000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf(testErrLoad, err)
	}

	if cfg.PostgresDSN != testPostgresDSN {
		t.Errorf("PostgresDSN = %q, want %q", cfg.PostgresDSN, testPostgresDSN)
	}

	if cfg.HTTPPort != 5000 {
		t.Errorf("HTTPPort = %d, want %d", cfg.HTTPPort, 5000)
	}
}
