package handlers

import (
	"draftroom/pkg/apperrors"
	"draftroom/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// statusFor maps a failure kind to its HTTP status.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation, apperrors.KindConflict:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// respondError writes {error: message}. Only unexpected failures are logged as errors.
func respondError(c *gin.Context, log logger.Logger, err error) {
	kind := apperrors.KindOf(err)
	status := statusFor(kind)

	if apperrors.IsExpected(err) {
		log.Debug(c.Request.Context(), "request rejected",
			logger.String("kind", kind.String()), logger.String("reason", err.Error()))
	} else {
		_ = c.Error(err)
		log.Error(c.Request.Context(), "request failed",
			logger.String("path", c.FullPath()), logger.Err(err))
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// bindJSON decodes the body, answering 400 on malformed input.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func loggerOrNop(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.Nop()
	}
	return log
}
