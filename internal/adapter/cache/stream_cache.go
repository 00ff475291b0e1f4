package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"lingua/internal/adapter/tagstream"
	"lingua/internal/logging"
	"lingua/internal/port"
)

// StreamCache remembers complete responses per (model, text). A hit is
// replayed as a single chunk. Streams that fail, are cancelled or end before
// the literal block closes are not stored.
type StreamCache struct {
	next  port.Streamer
	cache *expirable.LRU[string, string]
}

var _ port.Streamer = (*StreamCache)(nil)

// WrapStreamer returns s unchanged when size or ttl disable caching.
func WrapStreamer(s port.Streamer, size int, ttl time.Duration) port.Streamer {
	if s == nil || size <= 0 || ttl <= 0 {
		return s
	}
	return NewStreamCache(s, size, ttl)
}

func NewStreamCache(s port.Streamer, size int, ttl time.Duration) *StreamCache {
	return &StreamCache{
		next:  s,
		cache: expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func cacheKey(model, text string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func (c *StreamCache) Stream(ctx context.Context, text string, emit func(string) error) error {
	key := cacheKey(c.next.ModelName(), text)
	if body, ok := c.cache.Get(key); ok {
		logging.FromContext(ctx).Debug("translation cache hit", zap.String("model", c.next.ModelName()), zap.Int("bytes", len(body)))
		return emit(body)
	}

	var buf strings.Builder
	err := c.next.Stream(ctx, text, func(chunk string) error {
		buf.WriteString(chunk)
		return emit(chunk)
	})
	if err != nil {
		return err
	}
	if ctx.Err() != nil || buf.Len() == 0 {
		return nil
	}
	body := buf.String()
	if !tagstream.Parse(body, text).IsComplete {
		logging.FromContext(ctx).Debug("translation not cached, response incomplete", zap.String("model", c.next.ModelName()), zap.Int("bytes", len(body)))
		return nil
	}
	c.cache.Add(key, body)
	return nil
}

func (c *StreamCache) ModelName() string {
	return c.next.ModelName()
}

func (c *StreamCache) Invalidate() {
	c.cache.Purge()
}

func (c *StreamCache) Size() int {
	return c.cache.Len()
}
