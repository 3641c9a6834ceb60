package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_ENV", "APP_LOG_LEVEL", "APP_SERVER_PORT", "APP_STATIC_DIR", "APP_RAW_BODY_LOG",
		"HF_API_URL", "HF_API_TOKEN", "HF_MODEL", "HF_TIMEOUT_SECONDS", "HF_REQUESTS_PER_SECOND", "HF_BURST",
		"ANALYSIS_MAX_INPUT_CHARS", "ANALYSIS_UNIFORMITY_WEIGHT", "ANALYSIS_DIVERSITY_WEIGHT",
		"ANALYSIS_PHRASES_WEIGHT", "ANALYSIS_PUNCTUATION_WEIGHT", "ANALYSIS_STRUCTURE_WEIGHT",
		"UPLOAD_MAX_BYTES",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Env != Development {
		t.Fatalf("expected development env, got %s", cfg.App.Env)
	}
	if cfg.App.LogLevel != "debug" {
		t.Fatalf("expected debug log level in development, got %s", cfg.App.LogLevel)
	}
	if cfg.App.ServerPort != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.App.ServerPort)
	}
	if cfg.HuggingFace.Token != "" {
		t.Fatalf("expected empty token by default, got %q", cfg.HuggingFace.Token)
	}
	if !strings.Contains(cfg.HuggingFace.Model, "chatgpt-detector") {
		t.Fatalf("unexpected default model: %s", cfg.HuggingFace.Model)
	}
	if cfg.Analysis.MaxInputChars != 50000 {
		t.Fatalf("expected 50000 max input chars, got %d", cfg.Analysis.MaxInputChars)
	}
	if cfg.Upload.MaxFileBytes != 10<<20 {
		t.Fatalf("expected 10MiB upload cap, got %d", cfg.Upload.MaxFileBytes)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("HF_API_TOKEN", "hf_secret")
	t.Setenv("HF_TIMEOUT_SECONDS", "3")
	t.Setenv("ANALYSIS_MAX_INPUT_CHARS", "1234")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Env != Production {
		t.Fatalf("expected production env, got %s", cfg.App.Env)
	}
	if cfg.App.LogLevel != "info" {
		t.Fatalf("expected info log level in production, got %s", cfg.App.LogLevel)
	}
	if cfg.App.ServerPort != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.App.ServerPort)
	}
	if cfg.HuggingFace.Token != "hf_secret" {
		t.Fatalf("token override not applied")
	}
	if cfg.HuggingFace.TimeoutSeconds != 3 {
		t.Fatalf("timeout override not applied: %d", cfg.HuggingFace.TimeoutSeconds)
	}
	if cfg.Analysis.MaxInputChars != 1234 {
		t.Fatalf("max input override not applied: %d", cfg.Analysis.MaxInputChars)
	}
}

func TestParseEnvironmentFallsBackToDevelopment(t *testing.T) {
	if got := parseEnvironment("staging"); got != Development {
		t.Fatalf("expected development for unknown value, got %s", got)
	}
	if got := parseEnvironment("PRODUCTION"); got != Production {
		t.Fatalf("expected case-insensitive production, got %s", got)
	}
}

func TestValidateRejectsBadWeights(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Analysis.PhrasesWeight = 0.50
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected a weight-sum validation error")
	}
}

func TestValidateRejectsNonPositiveBounds(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.Analysis.MaxInputChars = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected a validation error for a zero input bound")
	}
}

func TestValidateRejectsZeroBurst(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// A zero burst makes every limiter wait fail outright, which would
	// quietly pin a token-configured service to heuristics only.
	cfg.HuggingFace.Burst = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected a validation error for a zero burst")
	}
}

func TestInvalidNumericOverridesKeepDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ANALYSIS_MAX_INPUT_CHARS", "not-a-number")
	t.Setenv("HF_REQUESTS_PER_SECOND", "fast")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analysis.MaxInputChars != 50000 {
		t.Fatalf("expected default on parse failure, got %d", cfg.Analysis.MaxInputChars)
	}
	if cfg.HuggingFace.RequestsPerSecond != 1.0 {
		t.Fatalf("expected default on parse failure, got %v", cfg.HuggingFace.RequestsPerSecond)
	}
}
