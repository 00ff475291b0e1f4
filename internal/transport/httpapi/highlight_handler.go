package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/internal/adapter/align"
	"lingua/internal/domain"
	"lingua/internal/usecase"
)

type HighlightHandler struct {
	highlight *usecase.HighlightUseCase
}

func NewHighlightHandler(highlight *usecase.HighlightUseCase) *HighlightHandler {
	return &HighlightHandler{highlight: highlight}
}

type highlightRequest struct {
	DocID     string                     `json:"docId"`
	Paragraph string                     `json:"paragraph"`
	Current   *domain.PartialTranslation `json:"current"`
}

type highlightChunk struct {
	domain.LocatedChunk
	Color       string `json:"color"`
	DragPayload string `json:"dragPayload"`
}

func (h *HighlightHandler) Highlight(c *gin.Context) {
	var req highlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, domain.ErrEmptyText)
		return
	}

	chunks, err := h.highlight.Highlight(req.DocID, req.Paragraph, req.Current)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]highlightChunk, 0, len(chunks))
	for _, ch := range chunks {
		color, err := align.ColorWithOpacity(align.ColorFor(ch.ChunkIndex), ch.Weight)
		if err != nil {
			handleError(c, err)
			return
		}
		payload, err := usecase.EncodeDragPayload(ch)
		if err != nil {
			handleError(c, err)
			return
		}
		out = append(out, highlightChunk{LocatedChunk: ch, Color: color, DragPayload: payload})
	}
	c.JSON(http.StatusOK, gin.H{"chunks": out})
}
