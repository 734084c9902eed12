package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8000")
	}
	if cfg.Address != "127.0.0.1" {
		t.Errorf("Address = %q, want %q", cfg.Address, "127.0.0.1")
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q, want %q", cfg.Env, "dev")
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want %q", cfg.OpenAIModel, "gpt-4o-mini")
	}
	if cfg.ExportDir != "exports" {
		t.Errorf("ExportDir = %q, want %q", cfg.ExportDir, "exports")
	}
	if cfg.ExportRetentionDays != 30 {
		t.Errorf("ExportRetentionDays = %d, want 30", cfg.ExportRetentionDays)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Expected an error when OPENAI_API_KEY is unset")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("Error should mention the missing key: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "prod")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("EXPORT_RETENTION_DAYS", "14")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want %q", cfg.Port, "9090")
	}
	if cfg.Env != "prod" {
		t.Errorf("Env = %q, want %q", cfg.Env, "prod")
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("OpenAIModel = %q, want %q", cfg.OpenAIModel, "gpt-4o")
	}
	if cfg.ExportRetentionDays != 14 {
		t.Errorf("ExportRetentionDays = %d, want 14", cfg.ExportRetentionDays)
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"valid port", "8000", false},
		{"maximum port", "65535", false},
		{"empty", "", true},
		{"not a number", "abc", true},
		{"privileged", "80", true},
		{"zero", "0", true},
		{"too large", "70000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePort(tt.port)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{"loopback", "127.0.0.1", false},
		{"localhost", "localhost", false},
		{"ipv6 loopback", "::1", false},
		{"private range", "192.168.1.10", false},
		{"public ip", "8.8.8.8", true},
		{"not an ip", "example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAddress(tt.address)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAddress(%q) error = %v, wantErr %v", tt.address, err, tt.wantErr)
			}
		})
	}
}

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid key", "sk-abc123", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"embedded space", "sk-abc 123", true},
		{"embedded newline", "sk-abc\n123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAPIKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAPIKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRetentionDays(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{"one day", 1, false},
		{"one year", 365, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over a year", 366, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRetentionDays(tt.days)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRetentionDays(%d) error = %v, wantErr %v", tt.days, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEnv(t *testing.T) {
	for _, env := range []string{"dev", "staging", "prod", "test"} {
		if err := validateEnv(env); err != nil {
			t.Errorf("validateEnv(%q) should pass: %v", env, err)
		}
	}
	if err := validateEnv("production"); err == nil {
		t.Error("validateEnv(\"production\") should fail")
	}
	if err := validateEnv(""); err == nil {
		t.Error("validateEnv(\"\") should fail")
	}
}
