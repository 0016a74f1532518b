package llmprovider

import (
	"context"

	"smartfactory-assistant/pkg/gemini"
	"smartfactory-assistant/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, wrapError(a.Name(), err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat (qwen, deepseek) to the Provider interface
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new adapter
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaicompat.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openaicompat.Message{Role: m.Role, Content: m.Text}
	}

	resp, err := a.client.Chat(ctx, &openaicompat.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	})
	if err != nil {
		return nil, wrapError(a.Name(), err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Provider()
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
