// Package completion talks to hosted text/vision completion APIs.
package completion

import (
	"BulkBlitz-Backend/internal/utils"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

type (
	Image struct {
		MIMEType string
		Data     []byte
	}

	Request struct {
		System      string
		Prompt      string
		Images      []Image
		JSON        bool
		MaxTokens   int
		Temperature *float64
	}

	Client interface {
		Complete(ctx context.Context, req Request) (string, error)
	}

	Config struct {
		Provider    string
		APIKey      string
		BaseURL     string
		TextModel   string
		VisionModel string
		Timeout     time.Duration
	}
)

func Temperature(t float64) *float64 {
	return &t
}

// LoadConfig builds the client configuration for the configured provider.
func LoadConfig() Config {
	provider := strings.ToLower(utils.GetConfig("COMPLETION_PROVIDER"))
	timeout := time.Duration(utils.GetConfigInt("COMPLETION_TIMEOUT_SECONDS")) * time.Second

	if provider == ProviderGemini {
		model := utils.GetConfig("GEMINI_MODEL")
		return Config{
			Provider:    ProviderGemini,
			APIKey:      utils.GetConfig("GEMINI_API_KEY"),
			BaseURL:     defaultGeminiBaseURL,
			TextModel:   model,
			VisionModel: model,
			Timeout:     timeout,
		}
	}

	return Config{
		Provider:    ProviderOpenAI,
		APIKey:      utils.GetConfig("OPENAI_API_KEY"),
		BaseURL:     utils.GetConfig("OPENAI_BASE_URL"),
		TextModel:   utils.GetConfig("OPENAI_TEXT_MODEL"),
		VisionModel: utils.GetConfig("OPENAI_VISION_MODEL"),
		Timeout:     timeout,
	}
}

// NewClient never fails on a missing API key; calls fail instead, so the
// server still starts without credentials.
func NewClient(cfg Config) (Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch strings.ToLower(cfg.Provider) {
	case ProviderOpenAI, "":
		return &openAIClient{cfg: cfg, httpClient: httpClient}, nil
	case ProviderGemini:
		if cfg.BaseURL == "" {
			cfg.BaseURL = defaultGeminiBaseURL
		}
		return &geminiClient{cfg: cfg, httpClient: httpClient}, nil
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.Provider)
	}
}

func (r Request) model(cfg Config) string {
	if len(r.Images) > 0 && cfg.VisionModel != "" {
		return cfg.VisionModel
	}
	return cfg.TextModel
}
