package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicStreamer streams text deltas from the Messages API.
type AnthropicStreamer struct {
	client         anthropic.Client
	model          string
	maxTokens      int64
	targetLanguage string
}

func NewAnthropicStreamer(apiKey, model string, maxTokens int, targetLanguage string, opts ...option.RequestOption) *AnthropicStreamer {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &AnthropicStreamer{
		client:         anthropic.NewClient(opts...),
		model:          model,
		maxTokens:      int64(maxTokens),
		targetLanguage: targetLanguage,
	}
}

func (s *AnthropicStreamer) Stream(ctx context.Context, text string, emit func(string) error) error {
	prompt, err := RenderPrompt(text, s.targetLanguage)
	if err != nil {
		return err
	}

	stream := s.client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: s.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	defer stream.Close()

	for stream.Next() {
		event := stream.Current()
		switch ev := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := ev.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if delta.Text == "" {
					continue
				}
				if err := emit(delta.Text); err != nil {
					return err
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("anthropic stream failed: %w", err)
	}
	return nil
}

func (s *AnthropicStreamer) ModelName() string {
	return s.model
}
