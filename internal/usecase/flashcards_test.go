package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/internal/domain"
)

func TestNewFlashcard(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_123)
	card, err := NewFlashcard(domain.DraftFlashcard{TargetWord: " chat ", Translation: "cat"}, now)
	require.NoError(t, err)

	_, err = uuid.Parse(card.ID)
	assert.NoError(t, err)
	assert.Equal(t, "chat", card.TargetWord)
	assert.Equal(t, "cat", card.Translation)
	assert.Equal(t, now.UnixMilli(), card.CreatedAt)
	assert.Equal(t, now.UnixMilli(), card.Due)
	assert.Equal(t, 0.0, card.Stability)
	assert.Equal(t, 5.0, card.Difficulty)
	assert.Equal(t, domain.CardNew, card.State)
	assert.Zero(t, card.Reps)
	assert.Zero(t, card.Lapses)
	assert.Zero(t, card.LastReview)
	assert.NotNil(t, card.ReviewLog)
	assert.Empty(t, card.ReviewLog)

	other, err := NewFlashcard(domain.DraftFlashcard{TargetWord: "chat", Translation: "cat"}, now)
	require.NoError(t, err)
	assert.NotEqual(t, card.ID, other.ID)

	_, err = NewFlashcard(domain.DraftFlashcard{TargetWord: "chat", Translation: "  "}, now)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestDraftsFromPairs(t *testing.T) {
	drafts := DraftsFromPairs([]domain.ChunkPair{
		{Original: "Chat", Translation: "cat"},
		{Original: "chat", Translation: "chat (talk)"},
		{Original: "", Translation: "orphan"},
		{Original: "dort", Translation: "sleeps"},
	})

	assert.Equal(t, []domain.DraftFlashcard{
		{TargetWord: "Chat", Translation: "cat"},
		{TargetWord: "dort", Translation: "sleeps"},
	}, drafts)
	assert.NotNil(t, DraftsFromPairs(nil))
}

func TestDragPayload(t *testing.T) {
	raw, err := EncodeDragPayload(domain.LocatedChunk{Chunk: "Chat", Translation: "cat"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"targetWord":"Chat","translation":"cat"}`, raw)

	p, err := DecodeDragPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.DragPayload{TargetWord: "Chat", Translation: "cat"}, p)

	for _, bad := range []string{
		`{"targetWord":"Chat"}`,
		`{"translation":"cat"}`,
		`not json`,
		``,
	} {
		_, err := DecodeDragPayload(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload, bad)
	}

	card, err := FlashcardFromPayload(raw, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Chat", card.TargetWord)
}
