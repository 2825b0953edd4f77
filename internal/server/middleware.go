package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/valpere/translate-api/internal/auth"
)

// ctxKeyAPIKey is the gin context key under which the authenticated API key
// is stored for downstream handlers.
const ctxKeyAPIKey = "api_key"

// apiKeyAuth rejects requests without a valid X-API-Key header. Missing and
// malformed keys get the identical response so the two cases cannot be told
// apart from the outside.
func apiKeyAuth(verifier *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(auth.HeaderName)
		if !verifier.Verify(key) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or missing API key"})
			return
		}
		c.Set(ctxKeyAPIKey, key)
		c.Next()
	}
}

// ginLogger logs one line per request.
func ginLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// corsMiddleware adds permissive CORS headers.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, "+auth.HeaderName)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
