package httpapi

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"lingua/internal/adapter/tagstream"
	"lingua/internal/domain"
	"lingua/internal/logging"
	"lingua/internal/port"
	"lingua/internal/usecase"
)

// maxSessions bounds how many documents keep a translation session.
const maxSessions = 1024

// TranslateHandler streams raw model output to the client. Requests sharing
// a document ID share a session, so a newer request supersedes an older one
// still streaming for the same document. Sessions of the least recently
// translated documents are evicted once maxSessions is reached.
type TranslateHandler struct {
	streamer    port.Streamer
	history     port.HistoryStore
	historySize int
	logger      *zap.Logger

	mu       sync.Mutex
	sessions *lru.Cache[string, *usecase.TranslateUseCase]
}

func NewTranslateHandler(streamer port.Streamer, history port.HistoryStore, historySize int, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{
		streamer:    streamer,
		history:     history,
		historySize: historySize,
		logger:      logging.OrNop(logger),
		sessions:    newSessionCache(maxSessions),
	}
}

func newSessionCache(size int) *lru.Cache[string, *usecase.TranslateUseCase] {
	c, err := lru.New[string, *usecase.TranslateUseCase](size)
	if err != nil {
		panic(err)
	}
	return c
}

func (h *TranslateHandler) session(docID string) *usecase.TranslateUseCase {
	if docID == "" {
		return usecase.NewTranslateUseCase(h.streamer, h.history, h.historySize, h.logger)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	uc, ok := h.sessions.Get(docID)
	if !ok {
		uc = usecase.NewTranslateUseCase(h.streamer, h.history, h.historySize, h.logger)
		h.sessions.Add(docID, uc)
	}
	return uc
}

type translateRequest struct {
	Text  string `json:"text"`
	DocID string `json:"docId"`
}

func (h *TranslateHandler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		handleError(c, domain.ErrEmptyText)
		return
	}

	started := false
	_, err := h.session(req.DocID).Translate(c.Request.Context(), usecase.TranslateRequest{
		Text:  req.Text,
		DocID: req.DocID,
		OnChunk: func(chunk string) error {
			if !started {
				c.Header("Content-Type", "text/plain; charset=utf-8")
				c.Header("X-Content-Type-Options", "nosniff")
				c.Status(http.StatusOK)
				started = true
			}
			if _, err := c.Writer.WriteString(chunk); err != nil {
				return err
			}
			c.Writer.Flush()
			return nil
		},
	})

	switch {
	case err == nil && !started:
		c.Status(http.StatusOK)
	case err != nil && !started:
		handleError(c, err)
	case err != nil:
		logging.FromContext(c.Request.Context()).Warn("translation stream ended early", zap.Error(err))
	}
}

type parseRequest struct {
	Text     string `json:"text"`
	Original string `json:"original"`
}

// Parse returns the snapshot for an accumulated response.
func (h *TranslateHandler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, domain.ErrEmptyText)
		return
	}
	c.JSON(http.StatusOK, tagstream.Parse(req.Text, req.Original))
}
