package handlers

import (
	"draftroom/pkg/apperrors"
	"draftroom/pkg/logger"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "validation", err: apperrors.Validation("Invalid vote type"), expectedStatus: http.StatusBadRequest},
		{name: "conflict", err: apperrors.Conflict("Already voted on this report"), expectedStatus: http.StatusBadRequest},
		{name: "not found", err: apperrors.NotFound("Player not found"), expectedStatus: http.StatusNotFound},
		{name: "unauthorized", err: apperrors.Unauthorized("Unauthorized"), expectedStatus: http.StatusUnauthorized},
		{name: "rate limited", err: apperrors.RateLimited("Slow down"), expectedStatus: http.StatusTooManyRequests},
		{name: "internal", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError},
	}

	gin.SetMode(gin.TestMode)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, logger.Nop(), tt.err)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.err.Error()+`"}`, rec.Body.String())
		})
	}
}
