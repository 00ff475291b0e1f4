package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lingua/internal/domain"
)

func ptr(s string) *string { return &s }

func TestParagraph_Plain(t *testing.T) {
	term := NewTerminal(false)
	chunks := []domain.LocatedChunk{
		{Chunk: "Chat", Position: 3, End: 7, Provenance: domain.ProvenanceCurrent},
		{Chunk: "noir", Position: 8, End: 12, Provenance: 2},
	}

	assert.Equal(t, "Le Chat noir", term.Paragraph("Le Chat noir", chunks))
}

func TestParagraph_Colored(t *testing.T) {
	term := NewTerminal(true)
	chunks := []domain.LocatedChunk{
		{Chunk: "Chat", Position: 3, End: 7, ChunkIndex: 0},
		{Chunk: "noir", Position: 8, End: 12, Provenance: 1},
	}

	out := term.Paragraph("Le Chat noir", chunks)
	assert.True(t, strings.HasPrefix(out, "Le \033["))
	assert.Contains(t, out, "Chat")
	assert.Contains(t, out, "\033[2m")
	assert.NotContains(t, out, "[bold]")
}

func TestParagraph_SkipsOutOfRange(t *testing.T) {
	term := NewTerminal(false)
	chunks := []domain.LocatedChunk{
		{Position: 0, End: 2},
		{Position: 1, End: 3},
		{Position: 5, End: 99},
	}
	assert.Equal(t, "abcdef", term.Paragraph("abcdef", chunks))
}

func TestPartial(t *testing.T) {
	term := NewTerminal(false)

	out := term.Partial(domain.PartialTranslation{ChunkPairs: []domain.ChunkPair{}}, "...")
	assert.Contains(t, out, "natural  ...")
	assert.Contains(t, out, "literal  ...")
	assert.Contains(t, out, "…")

	out = term.Partial(domain.PartialTranslation{
		NaturalTranslation: ptr("The cat sleeps"),
		DirectTranslation:  ptr("The cat sleeps"),
		LiteralParts: []domain.LiteralPart{
			domain.TextPart("The "),
			domain.WordPart("cat", "chat"),
			domain.TextPart(" sleeps"),
		},
		ChunkPairs: []domain.ChunkPair{{Original: "chat", Translation: "cat"}},
		IsComplete: true,
	}, "...")
	assert.Contains(t, out, "natural  The cat sleeps")
	assert.Contains(t, out, "literal  The cat sleeps")
	assert.Contains(t, out, "chat → cat")
	assert.NotContains(t, out, "…")
}

func TestResponseAndLegend(t *testing.T) {
	term := NewTerminal(false)
	out := term.Response(domain.TranslationResponse{NaturalTranslation: "Hi", DirectTranslation: "Hello"})
	assert.Contains(t, out, "natural  Hi")
	assert.Contains(t, out, "literal  Hello")

	legend := term.Legend([]domain.LocatedChunk{
		{Chunk: "Chat", Translation: "cat"},
		{Chunk: "noir", Translation: "black", Provenance: 3},
	})
	assert.Equal(t, "  Chat → cat\n  noir → black (#3)\n", legend)
}
