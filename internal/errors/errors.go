package errors

import (
	"fmt"
	"net/http"

	"codeberg.org/issuetracker/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP middleware and handlers:
//   - Use errors.InternalError(), errors.TooManyRequests(), etc.
//     These functions handle both logging and HTTP response automatically
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller decide how to log and respond
//
// Unknown routes are left to gin's default 404 handler.

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 503 service unavailable error
func ServiceUnavailable(c *gin.Context, message string, err error) {
	if message == "" {
		message = "service temporarily unavailable"
	}

	info := classifyError(err)
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"category", info.category,
	)

	c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   CodeServiceUnavailable,
		Message: message,
		Details: info.sanitized,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	info := classifyError(err)

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"category", info.category,
	)

	// return sanitized error to client
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: info.sanitized,
	})
}

// recovers from panics in later handlers and answers with InternalError
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		InternalError(c, "unexpected server error", &PanicError{Value: recovered})
	})
}

// wraps a recovered panic value
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}
