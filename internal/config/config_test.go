package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GOOGLE_API_KEY", "GEMINI_MODEL", "GEMINI_TEMPERATURE",
		"GEMINI_MAX_OUTPUT_TOKENS", "GEMINI_TIMEOUT_SECONDS",
		"EMAIL_HOST", "EMAIL_PORT", "EMAIL_USER", "EMAIL_PASS", "FRONTEND_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":5000" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
	if cfg.AI.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %q", cfg.AI.Model)
	}
	if cfg.AI.Temperature != 0.3 {
		t.Fatalf("unexpected temperature: %v", cfg.AI.Temperature)
	}
	if cfg.AI.MaxOutputTokens != 300 {
		t.Fatalf("unexpected max tokens: %v", cfg.AI.MaxOutputTokens)
	}
	if cfg.AI.Timeout != 60*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.AI.Timeout)
	}
	if cfg.AI.Enabled() {
		t.Fatal("AI must be disabled without a credential")
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 465 {
		t.Fatalf("unexpected mail defaults: %+v", cfg.Mail)
	}
	if cfg.Mail.Enabled() {
		t.Fatal("mail must be disabled without credentials")
	}
}

func TestLoadPortVariants(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "8080")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "127.0.0.1:9090")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9090" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "bad port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}

func TestLoadAIOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "512")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if !cfg.AI.Enabled() {
		t.Fatal("AI must be enabled with a credential")
	}
	if cfg.AI.Model != "gemini-2.0-flash" {
		t.Fatalf("unexpected model: %q", cfg.AI.Model)
	}
	if cfg.AI.Temperature != 0.7 {
		t.Fatalf("unexpected temperature: %v", cfg.AI.Temperature)
	}
	if cfg.AI.MaxOutputTokens != 512 {
		t.Fatalf("unexpected max tokens: %v", cfg.AI.MaxOutputTokens)
	}
	if cfg.AI.Timeout != 30*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.AI.Timeout)
	}
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	clearEnv(t)

	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "many")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid GEMINI_MAX_OUTPUT_TOKENS")
	}

	clearEnv(t)
	t.Setenv("EMAIL_PORT", "not-a-port")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid EMAIL_PORT")
	}
}

func TestCORSConfigOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("FRONTEND_URL", "https://rhenlumbo.dev")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	cases := []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:10000", true},
		{"https://rhenlumbo.dev", true},
		{"https://branch-preview.vercel.app", true},
		{"https://evil.example.com", false},
		{"http://localhost:3000", false},
	}
	for _, tc := range cases {
		if got := cfg.CORS.OriginAllowed(tc.origin); got != tc.allowed {
			t.Fatalf("OriginAllowed(%q) = %v, want %v", tc.origin, got, tc.allowed)
		}
	}
}
