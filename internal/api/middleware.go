package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextRunID is the gin context key holding the request run id.
	ContextRunID = "runID"
	// HeaderRunID carries the run id back to the client.
	HeaderRunID = "X-Run-ID"
)

// RunID assigns a fresh run id to every request.
func RunID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(ContextRunID, id)
		c.Header(HeaderRunID, id)
		c.Next()
	}
}

// RequestLogger logs one record per request after it completes.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		log.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("run_id", c.GetString(ContextRunID)),
		)
	}
}

func runID(c *gin.Context) string { return c.GetString(ContextRunID) }
