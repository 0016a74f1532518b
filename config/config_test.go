package config

import (
	"testing"
	"time"
)

func validIntent() IntentConfig {
	return IntentConfig{
		Timezone:        "Asia/Ho_Chi_Minh",
		SemanticEnabled: true,
		SemanticMode:    SemanticModeRemote,
		ReasoningURL:    "http://localhost:8080/api/v1",
		SemanticTimeout: 5 * time.Second,
		CacheTTL:        5 * time.Minute,
		CacheSize:       1000,
		HighConfidence:  0.85,
		FallbackBelow:   0.7,
		UsabilityFloor:  0.5,
		FuzzyThreshold:  0.6,
	}
}

func TestValidateIntentConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*IntentConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*IntentConfig) {}},
		{name: "unknown mode", mutate: func(c *IntentConfig) { c.SemanticMode = "magic" }, wantErr: true},
		{name: "remote without url", mutate: func(c *IntentConfig) { c.ReasoningURL = "" }, wantErr: true},
		{name: "remote disabled without url", mutate: func(c *IntentConfig) { c.ReasoningURL = ""; c.SemanticEnabled = false }},
		{name: "thresholds out of order", mutate: func(c *IntentConfig) { c.FallbackBelow = 0.9 }, wantErr: true},
		{name: "zero fuzzy threshold", mutate: func(c *IntentConfig) { c.FuzzyThreshold = 0 }, wantErr: true},
		{name: "zero cache", mutate: func(c *IntentConfig) { c.CacheSize = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validIntent()
			tt.mutate(&cfg)
			err := validateIntentConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateIntentConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{name: "empty", cfg: LLMConfig{}, wantErr: true},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
				{Name: "gemini", Enabled: true, Priority: 2, Model: "gemini-2.5-flash"},
			}},
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			}},
			wantErr: true,
		},
		{
			name:    "none enabled",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "qwen-plus"}}},
			wantErr: true,
		},
		{
			name:    "missing model",
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNeedsLLM(t *testing.T) {
	cfg := &Config{Intent: validIntent()}
	if cfg.NeedsLLM() {
		t.Error("remote mode should not need providers")
	}
	cfg.Intent.SemanticMode = SemanticModeLocal
	if !cfg.NeedsLLM() {
		t.Error("local mode needs providers")
	}
	cfg.Intent.SemanticMode = SemanticModeRemote
	cfg.Reasoning.ServeRoutes = true
	if !cfg.NeedsLLM() {
		t.Error("serving reasoning routes needs providers")
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("SFA_TEST_KEY", "secret")
	if got := expandEnvVar("${SFA_TEST_KEY}"); got != "secret" {
		t.Errorf("expandEnvVar = %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expandEnvVar = %q", got)
	}
}
