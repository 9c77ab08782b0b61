package api

import (
	"strings"
	"time"

	"github.com/albertomonterom/vinkula-backend/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID gives every request a stable id: the incoming X-Request-Id
// when present, a fresh one otherwise. Echoed back in the response header
// and attached to the per-request access log line.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-Id")
		if strings.TrimSpace(rid) == "" {
			rid = uuid.New().String()
		}

		c.Set("request_id", rid)
		c.Writer.Header().Set("X-Request-Id", rid)

		start := time.Now()
		c.Next()

		log.GetLogger().WithFields(log.Fields{
			"request_id": rid,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		}).Info("request")
	}
}
