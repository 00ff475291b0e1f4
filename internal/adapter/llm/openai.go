package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const openAIBaseURL = "https://api.openai.com/v1"

// OpenAIStreamer talks to any OpenAI-compatible /chat/completions endpoint
// with stream=true and forwards content deltas.
type OpenAIStreamer struct {
	apiKey         string
	model          string
	baseURL        string
	maxTokens      int
	targetLanguage string
	client         *http.Client
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
	Stream    bool          `json:"stream"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatChunk struct {
	Choices []chatChoice `json:"choices"`
	Error   *apiError    `json:"error,omitempty"`
}

type chatChoice struct {
	Delta        chatMessage `json:"delta"`
	FinishReason *string     `json:"finish_reason"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func NewOpenAIStreamer(apiKey, model, baseURL string, maxTokens int, targetLanguage string) *OpenAIStreamer {
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	return &OpenAIStreamer{
		apiKey:         apiKey,
		model:          model,
		baseURL:        strings.TrimRight(baseURL, "/"),
		maxTokens:      maxTokens,
		targetLanguage: targetLanguage,
		client: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}
}

func (s *OpenAIStreamer) Stream(ctx context.Context, text string, emit func(string) error) error {
	prompt, err := RenderPrompt(text, s.targetLanguage)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(chatRequest{
		Model:     s.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: s.maxTokens,
		Stream:    true,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var chunk chatChunk
		if json.Unmarshal(body, &chunk) == nil && chunk.Error != nil {
			return fmt.Errorf("API error (%d): %s", resp.StatusCode, chunk.Error.Message)
		}
		return fmt.Errorf("API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return readEvents(resp.Body, emit)
}

// readEvents consumes "data:" lines until [DONE] or EOF.
func readEvents(r io.Reader, emit func(string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			return nil
		}
		if data == "" {
			continue
		}

		var chunk chatChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("failed to decode stream event: %w", err)
		}
		if chunk.Error != nil {
			return fmt.Errorf("API error: %s", chunk.Error.Message)
		}
		for _, c := range chunk.Choices {
			if c.Delta.Content == "" {
				continue
			}
			if err := emit(c.Delta.Content); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}
	return nil
}

func (s *OpenAIStreamer) ModelName() string {
	return s.model
}
