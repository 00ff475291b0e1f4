package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lingua/internal/port"
)

type HistoryHandler struct {
	history port.HistoryStore
}

func NewHistoryHandler(history port.HistoryStore) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) List(c *gin.Context) {
	items, err := h.history.List(c.Param("docId"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *HistoryHandler) Clear(c *gin.Context) {
	if err := h.history.Clear(c.Param("docId")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
