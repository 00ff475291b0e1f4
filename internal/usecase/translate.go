package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"lingua/internal/adapter/tagstream"
	"lingua/internal/domain"
	"lingua/internal/logging"
	"lingua/internal/port"
)

// TranslateRequest describes one translation run.
type TranslateRequest struct {
	Text string
	// DocID selects the history the finished translation is pushed to.
	// Empty skips persistence.
	DocID string
	// OnChunk receives each raw chunk before it is parsed. An error aborts
	// the stream.
	OnChunk func(chunk string) error
	// OnUpdate receives a fresh snapshot after every chunk while this
	// request is still the newest one.
	OnUpdate func(domain.PartialTranslation)
}

// TranslateUseCase streams a translation, parses it as it arrives and
// records the finished result. Starting a new request supersedes any
// request still in flight on the same use case.
type TranslateUseCase struct {
	streamer    port.Streamer
	history     port.HistoryStore
	historySize int
	logger      *zap.Logger
	now         func() time.Time
	generation  atomic.Uint64
}

// NewTranslateUseCase creates a new translate use case. history may be nil.
func NewTranslateUseCase(streamer port.Streamer, history port.HistoryStore, historySize int, logger *zap.Logger) *TranslateUseCase {
	return &TranslateUseCase{
		streamer:    streamer,
		history:     history,
		historySize: historySize,
		logger:      logging.OrNop(logger),
		now:         time.Now,
	}
}

// Supersede invalidates the request in flight, if any.
func (u *TranslateUseCase) Supersede() {
	u.generation.Add(1)
}

// Translate runs req to completion. It returns domain.ErrSuperseded when a
// newer request started meanwhile and domain.ErrIncomplete when the stream
// ended before the literal block closed.
func (u *TranslateUseCase) Translate(ctx context.Context, req TranslateRequest) (domain.TranslationResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return domain.TranslationResponse{}, domain.ErrEmptyText
	}

	gen := u.generation.Add(1)
	current := func() bool { return u.generation.Load() == gen }

	buf := tagstream.NewBuffer(req.Text)
	chunks := 0
	err := u.streamer.Stream(ctx, req.Text, func(chunk string) error {
		if !current() {
			return domain.ErrSuperseded
		}
		chunks++
		if req.OnChunk != nil {
			if err := req.OnChunk(chunk); err != nil {
				return err
			}
		}
		snapshot := buf.Append(chunk)
		if req.OnUpdate != nil {
			req.OnUpdate(snapshot)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSuperseded) {
			return domain.TranslationResponse{}, domain.ErrSuperseded
		}
		return domain.TranslationResponse{}, fmt.Errorf("failed to stream translation: %w", err)
	}
	if !current() {
		return domain.TranslationResponse{}, domain.ErrSuperseded
	}

	u.logger.Debug("translation stream finished",
		zap.String("model", u.streamer.ModelName()),
		zap.Int("chunks", chunks),
		zap.Int("bytes", buf.Len()))

	resp, err := tagstream.Finalize(tagstream.Parse(buf.String(), req.Text), u.now())
	if err != nil {
		return domain.TranslationResponse{}, fmt.Errorf("failed to finalize translation: %w", err)
	}

	if req.DocID != "" && u.history != nil {
		if err := u.history.Push(req.DocID, resp, u.historySize); err != nil {
			u.logger.Warn("failed to record translation history", zap.String("doc_id", req.DocID), zap.Error(err))
		}
	}
	return resp, nil
}
