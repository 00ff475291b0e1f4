package llm

import (
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go/option"

	"lingua/config"
	"lingua/internal/domain"
	"lingua/internal/port"
)

// New builds the streamer named by cfg.Provider.
func New(cfg config.TranslateConfig) (port.Streamer, error) {
	if cfg.Provider == "replay" {
		if cfg.ReplayFile == "" {
			return nil, fmt.Errorf("%w: replay provider needs translate.replay_file", domain.ErrProviderUnavailable)
		}
		return NewReplayFileStreamer(cfg.ReplayFile, cfg.ReplayChunk, 0)
	}

	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: API key not found in environment variable: %s", domain.ErrProviderUnavailable, cfg.APIKeyEnv)
	}

	switch cfg.Provider {
	case "anthropic":
		var opts []option.RequestOption
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(cfg.BaseURL))
		}
		return NewAnthropicStreamer(apiKey, cfg.Model, cfg.MaxTokens, cfg.TargetLanguage, opts...), nil
	case "openai":
		return NewOpenAIStreamer(apiKey, cfg.Model, cfg.BaseURL, cfg.MaxTokens, cfg.TargetLanguage), nil
	case "gemini":
		return NewGeminiStreamer(apiKey, cfg.Model, cfg.MaxTokens, cfg.TargetLanguage, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", domain.ErrProviderUnavailable, cfg.Provider)
	}
}
