package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger is a Gin middleware that logs method, path, query, status code,
// request latency, and request ID (if available) once the request completes.
// 5xx responses are logged at error level, 4xx at warn, everything else at info.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		logger.Component("http").WithLevel(levelFor(status)).
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func levelFor(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// In-memory store for rate limiting, keyed by client IP.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 120
	rateLimiterLock sync.Mutex
)

// RateLimiter limits the number of requests per client IP to `limit` per `window`
// (fixed window). Requests over the limit get 429 Too Many Requests.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now, count: 1}
			clients[ip] = cl
		} else {
			cl.count++
		}
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}

		c.Next()
	}
}
