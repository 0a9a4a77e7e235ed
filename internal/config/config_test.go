package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MaxAttempts != 10000 {
		t.Errorf("MaxAttempts = %d, want 10000", cfg.MaxAttempts)
	}
	if cfg.TimeBudget != 5*time.Second {
		t.Errorf("TimeBudget = %v, want 5s", cfg.TimeBudget)
	}
	if cfg.TokenTTL != 720*time.Hour {
		t.Errorf("TokenTTL = %v, want 720h", cfg.TokenTTL)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SANTA_MAX_ATTEMPTS", "50")
	t.Setenv("SANTA_PRUNE", "true")
	t.Setenv("SANTA_TIME_BUDGET", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxAttempts != 50 || !cfg.Prune || cfg.TimeBudget != 250*time.Millisecond {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.EngineOptions()) != 3 {
		t.Errorf("EngineOptions() returned %d options, want 3", len(cfg.EngineOptions()))
	}

	t.Setenv("SANTA_MAX_ATTEMPTS", "lots")
	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric SANTA_MAX_ATTEMPTS")
	}
}

func TestValidateServer(t *testing.T) {
	cfg := Config{TokenSecret: "short", TokenTTL: time.Hour}
	if err := cfg.ValidateServer(); err == nil {
		t.Error("expected error for short secret")
	}

	cfg.TokenSecret = "0123456789abcdef"
	if err := cfg.ValidateServer(); err != nil {
		t.Errorf("ValidateServer failed: %v", err)
	}
}
