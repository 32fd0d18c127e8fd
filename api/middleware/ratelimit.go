package middleware

import (
	"context"
	ratelimitservice "draftroom/api/services/ratelimit"
	"draftroom/pkg/identity"
	"net/http"

	"github.com/gin-gonic/gin"
)

const IdentityKey = "identity"

// RateLimiter decides if an identity may perform one more action.
type RateLimiter interface {
	Allow(ctx context.Context, policy ratelimitservice.Policy, identity string) bool
}

// Identity returns the hashed client identity, resolving it on first use.
func Identity(c *gin.Context) string {
	if value := c.GetString(IdentityKey); value != "" {
		return value
	}

	value := identity.FromRequest(c.Request)
	c.Set(IdentityKey, value)
	return value
}

// RateLimit consumes one unit of the policy before the handler runs.
// Denied requests are answered with 429 and never reach the handler.
func RateLimit(limiter RateLimiter, policy ratelimitservice.Policy, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context(), policy, Identity(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}

		c.Next()
	}
}
