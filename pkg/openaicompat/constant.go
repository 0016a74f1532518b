package openaicompat

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Known OpenAI-compatible vendors.
const (
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

type preset struct {
	baseURL string
	model   string
}

var presets = map[string]preset{
	ProviderQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com", model: "deepseek-chat"},
}
