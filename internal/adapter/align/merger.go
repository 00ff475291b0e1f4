package align

import (
	"cmp"
	"slices"
	"strings"

	"lingua/internal/domain"
)

// DefaultHistorySize is how many past translations take part in a merge.
const DefaultHistorySize = 10

// Layer is one translation to highlight: its source selection and pairs.
type Layer struct {
	Original string
	Pairs    []domain.ChunkPair
}

// LayerFromResponse builds a layer scoped to the trimmed original selection.
func LayerFromResponse(r domain.TranslationResponse) Layer {
	return Layer{Original: strings.TrimSpace(r.Original), Pairs: r.ChunkPairs}
}

func LayerFromPartial(p domain.PartialTranslation) Layer {
	return Layer{Original: strings.TrimSpace(p.Original), Pairs: p.ChunkPairs}
}

type MergeOptions struct {
	HistorySize   int
	CurrentWeight float64
	HistoryWeight float64
	WeightStep    float64
	MinimumWeight float64
}

func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		HistorySize:   DefaultHistorySize,
		CurrentWeight: 1.0,
		HistoryWeight: 0.5,
		WeightStep:    0.04,
		MinimumWeight: 0.1,
	}
}

// Merger combines the live translation with past ones on the same paragraph.
type Merger struct {
	loc  *Locator
	opts MergeOptions
}

func NewMerger(loc *Locator, opts MergeOptions) *Merger {
	if loc == nil {
		loc = NewLocator()
	}
	if opts.HistorySize <= 0 {
		opts.HistorySize = DefaultHistorySize
	}
	return &Merger{loc: loc, opts: opts}
}

// Merge locates current (may be nil) and the most recent history entries,
// newest first, against paragraph. Each layer is located inside the span of
// its own original selection. A chunk of a more recent layer always beats an
// overlapping chunk of an older one; within a layer the earlier chunk wins.
func (m *Merger) Merge(paragraph string, current *Layer, history []Layer) []domain.LocatedChunk {
	var placed []domain.LocatedChunk
	if current != nil {
		refs := RefsFromPairs(current.Pairs, domain.ProvenanceCurrent, m.opts.CurrentWeight)
		placed = append(placed, m.loc.Place(paragraph, current.Original, refs)...)
	}

	if len(history) > m.opts.HistorySize {
		history = history[:m.opts.HistorySize]
	}
	for i, h := range history {
		prov := domain.Provenance(i + 1)
		refs := RefsFromPairs(h.Pairs, prov, m.weight(prov))
		placed = append(placed, m.loc.Place(paragraph, h.Original, refs)...)
	}

	return resolveLayered(placed)
}

func (m *Merger) weight(prov domain.Provenance) float64 {
	if prov.IsCurrent() {
		return m.opts.CurrentWeight
	}
	w := m.opts.HistoryWeight - m.opts.WeightStep*float64(prov-1)
	return max(w, m.opts.MinimumWeight)
}

func resolveLayered(chunks []domain.LocatedChunk) []domain.LocatedChunk {
	byPriority := slices.Clone(chunks)
	slices.SortStableFunc(byPriority, func(a, b domain.LocatedChunk) int {
		return cmp.Or(
			cmp.Compare(a.Provenance, b.Provenance),
			cmp.Compare(a.Position, b.Position),
			cmp.Compare(a.ChunkIndex, b.ChunkIndex),
		)
	})

	kept := make([]domain.LocatedChunk, 0, len(byPriority))
	for _, c := range byPriority {
		if !overlapsAny(kept, c) {
			kept = append(kept, c)
		}
	}
	return Resolve(kept)
}

func overlapsAny(kept []domain.LocatedChunk, c domain.LocatedChunk) bool {
	for _, k := range kept {
		if c.Position < k.End && k.Position < c.End {
			return true
		}
	}
	return false
}
