package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.Database.Driver)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("expected enabled cache with 5m TTL, got %+v", cfg.Cache)
	}
	if cfg.Log.Level != slog.LevelInfo {
		t.Errorf("expected info level, got %s", cfg.Log.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("INSIGHT_CACHE_TTL", "30s")
	t.Setenv("INSIGHT_CACHE_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Cache.Enabled || cfg.Cache.TTL != 30*time.Second {
		t.Errorf("expected disabled cache with 30s TTL, got %+v", cfg.Cache)
	}
	if cfg.Log.Level != slog.LevelDebug {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.RateLimit.Requests != 60 {
		t.Errorf("expected fallback of 60 for invalid value, got %d", cfg.RateLimit.Requests)
	}
}

func TestServerConfig_IsTest(t *testing.T) {
	cfg := ServerConfig{Environment: "test"}
	if !cfg.IsTest() {
		t.Error("expected test environment")
	}

	t.Setenv("E2E_MODE", "true")
	cfg.Environment = "production"
	if !cfg.IsTest() {
		t.Error("expected E2E mode to count as test")
	}
}
