package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lingua/internal/domain"
	"lingua/internal/usecase"
)

type FlashcardHandler struct {
	now func() time.Time
}

func NewFlashcardHandler() *FlashcardHandler {
	return &FlashcardHandler{now: time.Now}
}

// Create accepts a drag payload as the request body and returns a new card.
func (h *FlashcardHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		handleError(c, err)
		return
	}
	card, err := usecase.FlashcardFromPayload(string(body), h.now())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

type draftsRequest struct {
	Pairs []domain.ChunkPair `json:"pairs"`
}

func (h *FlashcardHandler) Drafts(c *gin.Context) {
	var req draftsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, domain.ErrInvalidPayload)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drafts": usecase.DraftsFromPairs(req.Pairs)})
}
