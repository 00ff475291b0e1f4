package align

import (
	"slices"

	"lingua/internal/domain"
)

// History is a bounded, newest-first list of finished translations for one
// document.
type History struct {
	size  int
	items []domain.TranslationResponse
}

func NewHistory(size int, items ...domain.TranslationResponse) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	h := &History{size: size}
	if len(items) > size {
		items = items[:size]
	}
	h.items = slices.Clone(items)
	return h
}

// Push records resp as the most recent entry, evicting the oldest if full.
func (h *History) Push(resp domain.TranslationResponse) {
	h.items = slices.Insert(h.items, 0, resp)
	if len(h.items) > h.size {
		h.items = h.items[:h.size]
	}
}

func (h *History) Items() []domain.TranslationResponse {
	return slices.Clone(h.items)
}

func (h *History) Len() int {
	return len(h.items)
}

// Layers returns the entries as merge layers, newest first.
func (h *History) Layers() []Layer {
	layers := make([]Layer, 0, len(h.items))
	for _, it := range h.items {
		layers = append(layers, LayerFromResponse(it))
	}
	return layers
}
