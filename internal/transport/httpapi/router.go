// Package httpapi exposes translation, parsing, highlighting and flashcard
// drafting over HTTP.
package httpapi

import (
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lingua/internal/logging"
)

type RouterDeps struct {
	Translate *TranslateHandler
	Highlight *HighlightHandler
	Cards     *FlashcardHandler
	History   *HistoryHandler
	Logger    *zap.Logger
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	api.POST("/translate", deps.Translate.Translate)
	api.POST("/parse", deps.Translate.Parse)
	api.POST("/highlight", deps.Highlight.Highlight)
	api.POST("/flashcards", deps.Cards.Create)
	api.POST("/flashcards/drafts", deps.Cards.Drafts)
	api.GET("/history/:docId", deps.History.List)
	api.DELETE("/history/:docId", deps.History.Clear)
}

// NewRouter builds the engine with request IDs, access logging and recovery.
// Responses are gzip-compressed except the raw translation stream.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := logging.OrNop(deps.Logger)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(logger),
		CORS(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/translate"})),
	)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	RegisterRoutes(r.Group("/api"), deps)
	return r
}

const requestIDHeader = "X-Request-Id"

// RequestID tags each request with an ID and a request-scoped logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

func AccessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := logger.With(zap.String("request_id", c.GetString("request_id")))
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), reqLogger))

		c.Next()

		reqLogger.Info("request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
