package openaicompat

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. BaseURL and Model fall back to the
// vendor preset when empty.
type Config struct {
	Provider   string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	p, known := presets[c.Provider]
	if c.BaseURL == "" {
		if !known {
			return fmt.Errorf("openaicompat: BaseURL is required for provider %q", c.Provider)
		}
		c.BaseURL = p.baseURL
	}
	if c.Model == "" {
		if !known {
			return fmt.Errorf("openaicompat: Model is required for provider %q", c.Provider)
		}
		c.Model = p.model
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Request is a single-turn or short multi-turn chat request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONMode    bool
}

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Response holds the first choice text.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// APIError is a non-200 reply from the vendor.
type APIError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: API error %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// clientImpl is the internal implementation of IClient
type clientImpl struct {
	provider   string
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Wire types

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
