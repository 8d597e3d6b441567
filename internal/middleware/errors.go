package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/internal/domain/dto"
	"github.com/guttosm/etfpulse/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a 500 ErrorResponse
// when the handler did not already write a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	rid, _ := c.Get(RequestIDKey)
	logger.Component("http").Error().
		Str("request_id", toString(rid)).
		Err(last.Err).
		Msg("request failed")

	if c.Writer.Written() {
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last.Err))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}

// Timeout bounds the request context so storage calls give up after d.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
