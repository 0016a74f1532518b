package gemini

import (
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// Config holds Gemini client configuration
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, mostly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

// Request is a text generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	JSONMode          bool
}

// Message is one turn. Role is "user" or "model".
type Message struct {
	Role string
	Text string
}

// Response holds the generated text.
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type geminiImpl struct {
	client *genai.Client
	model  string
}
