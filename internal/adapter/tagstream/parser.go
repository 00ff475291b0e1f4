// Package tagstream parses the tagged translation format produced by the
// language model. Parsing is a pure function of the accumulated text, so it is
// safe to call after every received chunk.
package tagstream

import (
	"slices"
	"strings"
	"time"

	"lingua/internal/domain"
)

const (
	tagIdio    = "idio"
	tagWords   = "words"
	tagLiteral = "literal"

	// PendingPlaceholder stands in for the target of a words entry whose
	// translation has not started streaming yet.
	PendingPlaceholder = "..."
)

// Parse extracts whatever is currently available from accumulated. It never
// fails: malformed or truncated markup leaves the affected field unset.
func Parse(accumulated, original string) domain.PartialTranslation {
	res := domain.PartialTranslation{
		Original:     original,
		LiteralParts: []domain.LiteralPart{},
		ChunkPairs:   []domain.ChunkPair{},
	}

	if body, st := findBlock(accumulated, tagIdio); st != blockAbsent {
		v := strings.TrimSpace(body)
		if st == blockClosed || v != "" {
			res.NaturalTranslation = &v
		}
	}

	if body, st := findBlock(accumulated, tagWords); st != blockAbsent {
		res.ChunkPairs = parseWords(body, st == blockOpen)
	}

	if body, st := findBlock(accumulated, tagLiteral); st != blockAbsent {
		content := strings.TrimSpace(body)
		switch {
		case st == blockClosed:
			res.DirectTranslation = &content
			res.LiteralParts = Tokenize(content)
			res.IsComplete = true
		case content != "":
			res.DirectTranslation = &content
			res.LiteralParts = Tokenize(content)
		}
	}

	return res
}

func parseWords(body string, open bool) []domain.ChunkPair {
	pairs := []domain.ChunkPair{}
	sc := newEntryScanner(body)
	for e, ok := sc.next(); ok; e, ok = sc.next() {
		pairs = append(pairs, domain.ChunkPair{Original: e.source, Translation: e.target})
	}
	if !open {
		return pairs
	}

	pending, ok := pendingEntry(body[sc.tail():], false)
	if !ok || hasOriginal(pairs, pending.source) {
		return pairs
	}
	target := pending.target
	if target == "" {
		target = PendingPlaceholder
	}
	return append(pairs, domain.ChunkPair{Original: pending.source, Translation: target})
}

func hasOriginal(pairs []domain.ChunkPair, original string) bool {
	for _, p := range pairs {
		if p.Original == original {
			return true
		}
	}
	return false
}

// Finalize converts a complete parse into its immutable response form.
func Finalize(p domain.PartialTranslation, now time.Time) (domain.TranslationResponse, error) {
	if !p.IsComplete {
		return domain.TranslationResponse{}, domain.ErrIncomplete
	}
	resp := domain.TranslationResponse{
		Original:     p.Original,
		ChunkPairs:   slices.Clone(p.ChunkPairs),
		LiteralParts: slices.Clone(p.LiteralParts),
		CreatedAt:    now,
	}
	if p.NaturalTranslation != nil {
		resp.NaturalTranslation = *p.NaturalTranslation
	}
	if p.DirectTranslation != nil {
		resp.DirectTranslation = *p.DirectTranslation
	}
	return resp, nil
}

// Buffer is the growing response text of one stream. It has a single writer;
// every Append re-parses the whole buffer.
type Buffer struct {
	original string
	sb       strings.Builder
}

func NewBuffer(original string) *Buffer {
	return &Buffer{original: original}
}

func (b *Buffer) Append(chunk string) domain.PartialTranslation {
	b.sb.WriteString(chunk)
	return Parse(b.sb.String(), b.original)
}

func (b *Buffer) String() string {
	return b.sb.String()
}

func (b *Buffer) Len() int {
	return b.sb.Len()
}
