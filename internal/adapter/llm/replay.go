package llm

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode/utf8"
)

const defaultReplayChunk = 16

// ReplayStreamer replays a recorded response in fixed-size chunks that never
// split a UTF-8 sequence. The requested text is ignored.
type ReplayStreamer struct {
	body      string
	chunkSize int
	delay     time.Duration
}

func NewReplayStreamer(body string, chunkSize int, delay time.Duration) *ReplayStreamer {
	if chunkSize <= 0 {
		chunkSize = defaultReplayChunk
	}
	return &ReplayStreamer{body: body, chunkSize: chunkSize, delay: delay}
}

// NewReplayFileStreamer loads the recorded response at path.
func NewReplayFileStreamer(path string, chunkSize int, delay time.Duration) (*ReplayStreamer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay file: %w", err)
	}
	return NewReplayStreamer(string(data), chunkSize, delay), nil
}

func (s *ReplayStreamer) Stream(ctx context.Context, _ string, emit func(string) error) error {
	for _, chunk := range SplitChunks(s.body, s.chunkSize) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(chunk); err != nil {
			return err
		}
		if s.delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}
	return nil
}

func (s *ReplayStreamer) ModelName() string {
	return "replay"
}

// SplitChunks cuts s into pieces of at most size bytes, extending a piece
// when the cut would land inside a multi-byte rune.
func SplitChunks(s string, size int) []string {
	if size <= 0 {
		size = defaultReplayChunk
	}
	var chunks []string
	for len(s) > 0 {
		n := min(size, len(s))
		for n < len(s) && !utf8.RuneStart(s[n]) {
			n++
		}
		chunks = append(chunks, s[:n])
		s = s[n:]
	}
	return chunks
}
