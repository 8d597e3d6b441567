package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// maxInboundIDLen bounds caller-supplied request IDs so logs stay readable.
const maxInboundIDLen = 128

// RequestID is a Gin middleware that tags each request with an identifier.
//
// Behavior:
//   - Reuses a caller-supplied X-Request-ID header when present (and short enough),
//     so IDs survive a proxy hop.
//   - Otherwise generates a new UUID (v4).
//   - Stores it in the Gin context under "request_id" and echoes it in the
//     X-Request-ID response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxInboundIDLen {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
