package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/internal/domain"
)

func TestLocator_Find(t *testing.T) {
	loc := NewLocator()

	tests := []struct {
		text, query string
		start, end  int
		ok          bool
	}{
		{"Le Chat noir", "chat", 3, 7, true},
		{"Le Chat noir", "CHAT NOIR", 3, 12, true},
		{"Le Chat noir", "chien", 0, 0, false},
		{"Le Chat noir", "", 0, 0, false},
		{"", "chat", 0, 0, false},
		{"chat et chat", "chat", 0, 4, true},
		{"L'ÉTÉ", "été", 2, 7, true},
		{"ABC", "Ｂ", 0, 0, false},
		{"ＢB", "b", 3, 4, true},
	}

	for _, tt := range tests {
		start, end, ok := loc.Find(tt.text, tt.query)
		assert.Equal(t, tt.ok, ok, "Find(%q, %q)", tt.text, tt.query)
		if tt.ok {
			assert.Equal(t, tt.start, start, "Find(%q, %q) start", tt.text, tt.query)
			assert.Equal(t, tt.end, end, "Find(%q, %q) end", tt.text, tt.query)
		}
	}
}

func TestLocator_LocatePreservesParagraphCasing(t *testing.T) {
	loc := NewLocator()
	refs := RefsFromPairs([]domain.ChunkPair{{Original: "chat", Translation: "cat"}}, domain.ProvenanceCurrent, 1)

	got := loc.Locate("Le Chat noir", refs)
	require.Len(t, got, 1)
	assert.Equal(t, "Chat", got[0].Chunk)
	assert.Equal(t, "chat", got[0].Query)
	assert.Equal(t, 3, got[0].Position)
	assert.Equal(t, 7, got[0].End)
	assert.Equal(t, "cat", got[0].Translation)
}

func TestLocator_DropsUnlocatable(t *testing.T) {
	loc := NewLocator()
	pairs := []domain.ChunkPair{
		{Original: "chien", Translation: "dog"},
		{Original: "noir", Translation: "black"},
	}

	got := loc.Locate("Le Chat noir", RefsFromPairs(pairs, domain.ProvenanceCurrent, 1))
	require.Len(t, got, 1)
	assert.Equal(t, "noir", got[0].Chunk)
	assert.Equal(t, 1, got[0].ChunkIndex)
	assert.Len(t, pairs, 2)
}

func TestLocator_OverlapKeepsEarliest(t *testing.T) {
	loc := NewLocator()
	pairs := []domain.ChunkPair{
		{Original: "cat", Translation: "chat"},
		{Original: "black cat", Translation: "chat noir"},
		{Original: "sleeps", Translation: "dort"},
	}

	got := loc.Locate("the black cat sleeps", RefsFromPairs(pairs, domain.ProvenanceCurrent, 1))
	require.Len(t, got, 2)
	assert.Equal(t, "black cat", got[0].Chunk)
	assert.Equal(t, 4, got[0].Position)
	assert.Equal(t, "sleeps", got[1].Chunk)
}

func TestResolve_EqualPositionTieBreak(t *testing.T) {
	chunks := []domain.LocatedChunk{
		{Chunk: "cat", Position: 4, End: 7, ChunkIndex: 2, Provenance: 1},
		{Chunk: "cat", Position: 4, End: 7, ChunkIndex: 5, Provenance: 0},
		{Chunk: "cat", Position: 4, End: 7, ChunkIndex: 1, Provenance: 0},
	}

	got := Resolve(chunks)
	require.Len(t, got, 1)
	assert.Equal(t, domain.ProvenanceCurrent, got[0].Provenance)
	assert.Equal(t, 1, got[0].ChunkIndex)
}

func TestResolve_SortedAndDisjoint(t *testing.T) {
	chunks := []domain.LocatedChunk{
		{Position: 10, End: 14},
		{Position: 0, End: 5},
		{Position: 3, End: 8},
		{Position: 5, End: 9},
	}

	got := Resolve(chunks)
	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].End, got[i].Position)
	}
	assert.Equal(t, 0, got[0].Position)
	assert.Equal(t, 5, got[1].Position)
	assert.Equal(t, 10, got[2].Position)
}

func TestLocator_PlaceWithinScope(t *testing.T) {
	loc := NewLocator()
	refs := RefsFromPairs([]domain.ChunkPair{{Original: "cat", Translation: "chat"}}, domain.ProvenanceCurrent, 1)

	got := loc.Place("cat and cat", "and cat", refs)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].Position)
	assert.Equal(t, 11, got[0].End)

	assert.Empty(t, loc.Place("cat and cat", "dog", refs))
}
