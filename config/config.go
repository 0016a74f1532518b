package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Semantic reasoner modes.
const (
	SemanticModeRemote = "remote"
	SemanticModeLocal  = "local"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Command resolution
	Intent    IntentConfig
	Reasoning ReasoningConfig
	RateLimit RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// IntentConfig tunes the command resolver.
type IntentConfig struct {
	CataloguePath   string
	Timezone        string
	SemanticEnabled bool
	SemanticMode    string
	ReasoningURL    string
	SemanticTimeout time.Duration
	CacheTTL        time.Duration
	CacheSize       int
	HighConfidence  float64
	FallbackBelow   float64
	UsabilityFloor  float64
	FuzzyThreshold  float64
}

// ReasoningConfig controls the in-process reasoning routes.
type ReasoningConfig struct {
	ServeRoutes bool
}

type RateLimitConfig struct {
	PerMinute int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// NeedsLLM reports whether this process calls a language model itself.
func (c *Config) NeedsLLM() bool {
	return c.Reasoning.ServeRoutes || (c.Intent.SemanticEnabled && c.Intent.SemanticMode == SemanticModeLocal)
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Command resolution
	cfg.Intent.CataloguePath = viper.GetString("intent.catalogue_path")
	cfg.Intent.Timezone = viper.GetString("intent.timezone")
	cfg.Intent.SemanticEnabled = viper.GetBool("intent.semantic_enabled")
	cfg.Intent.SemanticMode = viper.GetString("intent.semantic_mode")
	cfg.Intent.ReasoningURL = viper.GetString("intent.reasoning_url")
	if reasoningURL := viper.GetString("reasoning_url"); reasoningURL != "" {
		cfg.Intent.ReasoningURL = reasoningURL
	}
	cfg.Intent.SemanticTimeout = viper.GetDuration("intent.semantic_timeout")
	cfg.Intent.CacheTTL = viper.GetDuration("intent.cache_ttl")
	cfg.Intent.CacheSize = viper.GetInt("intent.cache_size")
	cfg.Intent.HighConfidence = viper.GetFloat64("intent.high_confidence")
	cfg.Intent.FallbackBelow = viper.GetFloat64("intent.fallback_below")
	cfg.Intent.UsabilityFloor = viper.GetFloat64("intent.usability_floor")
	cfg.Intent.FuzzyThreshold = viper.GetFloat64("intent.fuzzy_threshold")

	cfg.Reasoning.ServeRoutes = viper.GetBool("reasoning.serve_routes")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	if err := validateIntentConfig(&cfg.Intent); err != nil {
		return nil, err
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Only a process that prompts a model needs providers.
	if cfg.NeedsLLM() {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Intent defaults
	viper.SetDefault("intent.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("intent.semantic_enabled", true)
	viper.SetDefault("intent.semantic_mode", SemanticModeRemote)
	viper.SetDefault("intent.reasoning_url", "http://localhost:8080/api/v1")
	viper.SetDefault("intent.semantic_timeout", "5s")
	viper.SetDefault("intent.cache_ttl", "5m")
	viper.SetDefault("intent.cache_size", 1000)
	viper.SetDefault("intent.high_confidence", 0.85)
	viper.SetDefault("intent.fallback_below", 0.7)
	viper.SetDefault("intent.usability_floor", 0.5)
	viper.SetDefault("intent.fuzzy_threshold", 0.6)

	viper.SetDefault("reasoning.serve_routes", false)
	viper.SetDefault("rate_limit.per_minute", 120)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

func validateIntentConfig(cfg *IntentConfig) error {
	switch cfg.SemanticMode {
	case SemanticModeRemote, SemanticModeLocal:
	default:
		return fmt.Errorf("intent.semantic_mode must be %q or %q, got %q", SemanticModeRemote, SemanticModeLocal, cfg.SemanticMode)
	}
	if cfg.SemanticEnabled && cfg.SemanticMode == SemanticModeRemote && cfg.ReasoningURL == "" {
		return fmt.Errorf("intent.reasoning_url is required in remote mode")
	}
	if cfg.UsabilityFloor > cfg.FallbackBelow || cfg.FallbackBelow > cfg.HighConfidence {
		return fmt.Errorf("intent thresholds must satisfy usability_floor <= fallback_below <= high_confidence")
	}
	if cfg.FuzzyThreshold <= 0 || cfg.FuzzyThreshold > 1 {
		return fmt.Errorf("intent.fuzzy_threshold must be in (0, 1]")
	}
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("intent.cache_size must be positive")
	}
	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
