package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("unexpected logging defaults: %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
	if !cfg.SeedData {
		t.Error("seeding should default to on")
	}
	if cfg.JudgeCacheTTL != 5*time.Minute {
		t.Errorf("expected 5m cache TTL, got %v", cfg.JudgeCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("JUDGE_CACHE_TTL", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SeedData {
		t.Error("expected seeding off")
	}
	if cfg.JudgeCacheTTL != 30*time.Minute {
		t.Errorf("expected 30m cache TTL, got %v", cfg.JudgeCacheTTL)
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Setenv("JUDGE_CACHE_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Error("expected an error for a non-numeric TTL")
	}
}
