package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lingua/internal/domain"
)

const initialDifficulty = 5

// NewFlashcard creates a card due immediately with initial FSRS parameters.
func NewFlashcard(draft domain.DraftFlashcard, now time.Time) (domain.Flashcard, error) {
	target := strings.TrimSpace(draft.TargetWord)
	translation := strings.TrimSpace(draft.Translation)
	if target == "" || translation == "" {
		return domain.Flashcard{}, fmt.Errorf("%w: target word and translation are required", domain.ErrInvalidPayload)
	}

	ms := now.UnixMilli()
	return domain.Flashcard{
		ID:          uuid.NewString(),
		TargetWord:  target,
		Translation: translation,
		CreatedAt:   ms,
		Due:         ms,
		Stability:   0,
		Difficulty:  initialDifficulty,
		State:       domain.CardNew,
		ReviewLog:   []domain.ReviewLog{},
	}, nil
}

// DraftsFromPairs turns aligned pairs into card drafts, keeping the first
// pair for each source word compared case-insensitively.
func DraftsFromPairs(pairs []domain.ChunkPair) []domain.DraftFlashcard {
	seen := make(map[string]bool, len(pairs))
	drafts := make([]domain.DraftFlashcard, 0, len(pairs))
	for _, p := range pairs {
		target := strings.TrimSpace(p.Original)
		translation := strings.TrimSpace(p.Translation)
		if target == "" || translation == "" {
			continue
		}
		key := strings.ToLower(target)
		if seen[key] {
			continue
		}
		seen[key] = true
		drafts = append(drafts, domain.DraftFlashcard{TargetWord: target, Translation: translation})
	}
	return drafts
}

// EncodeDragPayload serializes the record a highlighted chunk carries when
// dragged onto the card drop target.
func EncodeDragPayload(chunk domain.LocatedChunk) (string, error) {
	data, err := json.Marshal(domain.DragPayload{TargetWord: chunk.Chunk, Translation: chunk.Translation})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeDragPayload accepts a payload only when both fields are non-empty.
func DecodeDragPayload(raw string) (domain.DragPayload, error) {
	var p domain.DragPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.DragPayload{}, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	if p.TargetWord == "" || p.Translation == "" {
		return domain.DragPayload{}, fmt.Errorf("%w: targetWord and translation are required", domain.ErrInvalidPayload)
	}
	return p, nil
}

// FlashcardFromPayload decodes a drop and creates the card for it.
func FlashcardFromPayload(raw string, now time.Time) (domain.Flashcard, error) {
	p, err := DecodeDragPayload(raw)
	if err != nil {
		return domain.Flashcard{}, err
	}
	return NewFlashcard(domain.DraftFlashcard{TargetWord: p.TargetWord, Translation: p.Translation}, now)
}
