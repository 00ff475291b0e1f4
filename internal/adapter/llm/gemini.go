package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiStreamer streams a translation through GenerateContentStream.
type GeminiStreamer struct {
	apiKey         string
	model          string
	maxTokens      int32
	targetLanguage string
	baseURL        string
}

func NewGeminiStreamer(apiKey, model string, maxTokens int, targetLanguage, baseURL string) *GeminiStreamer {
	return &GeminiStreamer{
		apiKey:         apiKey,
		model:          model,
		maxTokens:      int32(maxTokens),
		targetLanguage: targetLanguage,
		baseURL:        baseURL,
	}
}

func (s *GeminiStreamer) Stream(ctx context.Context, text string, emit func(string) error) error {
	prompt, err := RenderPrompt(text, s.targetLanguage)
	if err != nil {
		return err
	}

	cc := &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}

	genCfg := &genai.GenerateContentConfig{MaxOutputTokens: s.maxTokens}
	for resp, err := range client.Models.GenerateContentStream(ctx, s.model, genai.Text(prompt), genCfg) {
		if err != nil {
			return fmt.Errorf("gemini stream failed: %w", err)
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		if err := emit(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (s *GeminiStreamer) ModelName() string {
	return s.model
}
