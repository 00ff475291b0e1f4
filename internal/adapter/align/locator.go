// Package align places translated chunks onto displayed paragraphs.
package align

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"lingua/internal/domain"
)

// Ref is one chunk to be located, with the metadata carried into the result.
type Ref struct {
	Text        string
	Index       int
	Translation string
	Provenance  domain.Provenance
	Weight      float64
}

// RefsFromPairs builds refs for the source side of each pair, indexed by position.
func RefsFromPairs(pairs []domain.ChunkPair, prov domain.Provenance, weight float64) []Ref {
	refs := make([]Ref, 0, len(pairs))
	for i, p := range pairs {
		refs = append(refs, Ref{
			Text:        p.Original,
			Index:       i,
			Translation: p.Translation,
			Provenance:  prov,
			Weight:      weight,
		})
	}
	return refs
}

// Locator does case-insensitive, first-occurrence matching. A Locator is not
// safe for concurrent use; create one per goroutine.
type Locator struct {
	matcher *search.Matcher
}

func NewLocator() *Locator {
	return &Locator{matcher: search.New(language.Und, search.IgnoreCase)}
}

// Find returns the byte span of the first case-insensitive occurrence of
// query in text. The span may differ in length from query when case forms
// have different encodings. Only case is folded: matches that differ in
// width (fullwidth "Ｂ" for "B") are skipped.
func (l *Locator) Find(text, query string) (start, end int, ok bool) {
	if query == "" || text == "" {
		return 0, 0, false
	}
	for pos := 0; pos < len(text); {
		s, e := l.matcher.IndexString(text[pos:], query)
		if s < 0 {
			return 0, 0, false
		}
		s, e = pos+s, pos+e
		if strings.EqualFold(text[s:e], query) {
			return s, e, true
		}
		_, size := utf8.DecodeRuneInString(text[s:])
		pos = s + size
	}
	return 0, 0, false
}

// Locate places refs in paragraph and resolves their order and overlaps.
func (l *Locator) Locate(paragraph string, refs []Ref) []domain.LocatedChunk {
	return Resolve(l.Place(paragraph, "", refs))
}

// Place finds each ref in paragraph without ordering or overlap removal.
// When scope is set it is located first and refs are searched inside its
// span only; if scope itself is absent nothing is placed. Refs that cannot be
// found are dropped.
func (l *Locator) Place(paragraph, scope string, refs []Ref) []domain.LocatedChunk {
	base, limit := 0, len(paragraph)
	if scope != "" {
		s, e, ok := l.Find(paragraph, scope)
		if !ok {
			return nil
		}
		base, limit = s, e
	}
	window := paragraph[base:limit]

	placed := make([]domain.LocatedChunk, 0, len(refs))
	for _, ref := range refs {
		s, e, ok := l.Find(window, ref.Text)
		if !ok {
			continue
		}
		placed = append(placed, domain.LocatedChunk{
			Chunk:       paragraph[base+s : base+e],
			Query:       ref.Text,
			ChunkIndex:  ref.Index,
			Position:    base + s,
			End:         base + e,
			Translation: ref.Translation,
			Provenance:  ref.Provenance,
			Weight:      ref.Weight,
		})
	}
	return placed
}

// Resolve sorts located chunks by position and drops any chunk that starts
// before the previously kept one ends. At equal positions the more recent
// provenance wins, then the lower chunk index.
func Resolve(chunks []domain.LocatedChunk) []domain.LocatedChunk {
	sorted := slices.Clone(chunks)
	slices.SortStableFunc(sorted, func(a, b domain.LocatedChunk) int {
		return cmp.Or(
			cmp.Compare(a.Position, b.Position),
			cmp.Compare(a.Provenance, b.Provenance),
			cmp.Compare(a.ChunkIndex, b.ChunkIndex),
		)
	})

	kept := make([]domain.LocatedChunk, 0, len(sorted))
	lastEnd := 0
	for _, c := range sorted {
		if len(kept) > 0 && c.Position < lastEnd {
			continue
		}
		kept = append(kept, c)
		lastEnd = c.End
	}
	return kept
}
