package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lingua/internal/domain"
	"lingua/internal/logging"
)

func errorJSON(c *gin.Context, status int, msg string, details string) {
	body := gin.H{"error": msg}
	if details != "" {
		body["details"] = details
	}
	c.AbortWithStatusJSON(status, body)
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	logging.FromContext(c.Request.Context()).Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))

	switch {
	case errors.Is(err, domain.ErrEmptyText):
		errorJSON(c, http.StatusBadRequest, "Text is required", "")
	case errors.Is(err, domain.ErrInvalidPayload):
		errorJSON(c, http.StatusBadRequest, "invalid payload", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		errorJSON(c, http.StatusNotFound, "not found", "")
	case errors.Is(err, domain.ErrSuperseded):
		errorJSON(c, http.StatusConflict, "superseded", "")
	case errors.Is(err, domain.ErrProviderUnavailable):
		errorJSON(c, http.StatusServiceUnavailable, "translation provider unavailable", err.Error())
	case errors.Is(err, domain.ErrIncomplete):
		errorJSON(c, http.StatusBadGateway, "Translation failed", err.Error())
	default:
		errorJSON(c, http.StatusInternalServerError, "Translation failed", err.Error())
	}
}
