package usecase

import (
	"fmt"

	"lingua/internal/adapter/align"
	"lingua/internal/adapter/fs"
	"lingua/internal/domain"
	"lingua/internal/port"
)

// ParagraphHighlight pairs a passage paragraph with the chunks located in it.
type ParagraphHighlight struct {
	Paragraph domain.Paragraph
	Chunks    []domain.LocatedChunk
}

// HighlightUseCase overlays current and past translations on passage text.
type HighlightUseCase struct {
	history port.HistoryStore
	opts    align.MergeOptions
}

// NewHighlightUseCase creates a new highlight use case. history may be nil.
func NewHighlightUseCase(history port.HistoryStore, opts align.MergeOptions) *HighlightUseCase {
	return &HighlightUseCase{history: history, opts: opts}
}

func (u *HighlightUseCase) loadHistory(docID string) ([]align.Layer, error) {
	if docID == "" || u.history == nil {
		return nil, nil
	}
	items, err := u.history.List(docID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return align.NewHistory(u.opts.HistorySize, items...).Layers(), nil
}

// Highlight merges current (may be nil) with docID's history on paragraph.
func (u *HighlightUseCase) Highlight(docID, paragraph string, current *domain.PartialTranslation) ([]domain.LocatedChunk, error) {
	history, err := u.loadHistory(docID)
	if err != nil {
		return nil, err
	}
	var layer *align.Layer
	if current != nil {
		l := align.LayerFromPartial(*current)
		layer = &l
	}
	return align.NewMerger(align.NewLocator(), u.opts).Merge(paragraph, layer, history), nil
}

// HighlightPassage splits text into paragraphs and overlays docID's history
// on each of them.
func (u *HighlightUseCase) HighlightPassage(docID, text string) ([]ParagraphHighlight, error) {
	history, err := u.loadHistory(docID)
	if err != nil {
		return nil, err
	}

	merger := align.NewMerger(align.NewLocator(), u.opts)
	paras := fs.SplitParagraphs(text)
	out := make([]ParagraphHighlight, 0, len(paras))
	for _, p := range paras {
		out = append(out, ParagraphHighlight{
			Paragraph: p,
			Chunks:    merger.Merge(p.Text, nil, history),
		})
	}
	return out, nil
}
