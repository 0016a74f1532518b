package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartfactory-assistant/config"
	"smartfactory-assistant/pkg/llmprovider"
	"smartfactory-assistant/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "10s"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-qwen-key", Model: "qwen-plus", Timeout: "30s"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "k", Model: "deepseek-chat"},
			{Name: "unknown", Enabled: true, Priority: 4, APIKey: "k", Model: "x"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "gemini" {
		t.Errorf("unexpected order %s, %s", providers[0].Name(), providers[1].Name())
	}
	if providers[1].Model() != "gemini-2.5-flash" {
		t.Errorf("gemini model = %s", providers[1].Model())
	}
}

func TestInitializeProvidersErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr error
	}{
		{name: "nil", cfg: nil},
		{name: "empty", cfg: &config.LLMConfig{}, wantErr: llmprovider.ErrNoProvidersConfigured},
		{
			name:    "none enabled",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "qwen", APIKey: "k", Model: "m"}}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "all fail",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "m", Timeout: "soon"},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestManagerConfig(t *testing.T) {
	got, err := llmprovider.ManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "10s",
	})
	if err != nil {
		t.Fatalf("ManagerConfig: %v", err)
	}
	if got.RetryAttempts != 1 || got.RetryDelay != 250*time.Millisecond || got.MaxTotalTimeout != 10*time.Second || !got.FallbackEnabled {
		t.Errorf("unexpected config %+v", got)
	}

	if _, err := llmprovider.ManagerConfig(&config.LLMConfig{RetryDelay: "later"}); err == nil {
		t.Error("expected parse error")
	}
}
