package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/internal/domain/dto"
	"github.com/guttosm/etfpulse/internal/logger"
)

// RecoveryMiddleware recovers from panics in later handlers, logs the panic value
// with its stack trace, and answers 500 with a dto.ErrorResponse.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.Component("http").Error().
					Str("request_id", toString(rid)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("Internal server error", nil))
			}
		}()

		c.Next()
	}
}
