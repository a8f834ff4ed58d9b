package errors

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

var production atomic.Bool

// switches detail sanitizing on for the production environment
func SetEnvironment(environment string) {
	production.Store(environment == "production")
}

// analyzes an error and returns its category and sanitized message
func classifyError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{CategoryUnknown, ""}
	}

	isProduction := production.Load()

	var panicErr *PanicError
	if errors.As(err, &panicErr) {
		return ErrorInfo{
			category:  CategoryPanic,
			sanitized: ternary(isProduction, "an error occurred", err.Error()),
		}
	}

	// limiter store errors (redis-specific)
	if errors.Is(err, redis.Nil) || errors.Is(err, redis.ErrClosed) {
		return ErrorInfo{
			category:  CategoryStore,
			sanitized: ternary(isProduction, "rate limit store unavailable", err.Error()),
		}
	}

	// context errors
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if errors.Is(err, context.Canceled) {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request canceled", err.Error()),
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrorInfo{
			category:  CategoryNetwork,
			sanitized: ternary(isProduction, "connection error occurred", err.Error()),
		}
	}

	// fallback to string matching for unknown error types
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline") {
		return ErrorInfo{
			category:  CategoryTimeout,
			sanitized: ternary(isProduction, "request timed out", err.Error()),
		}
	}

	if strings.Contains(errMsg, "redis") || strings.Contains(errMsg, "limiter") {
		return ErrorInfo{
			category:  CategoryStore,
			sanitized: ternary(isProduction, "rate limit store unavailable", err.Error()),
		}
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") ||
		strings.Contains(errMsg, "dial") {
		return ErrorInfo{
			category:  CategoryNetwork,
			sanitized: ternary(isProduction, "connection error occurred", err.Error()),
		}
	}

	// unknown - generic response
	return ErrorInfo{
		category:  CategoryUnknown,
		sanitized: ternary(isProduction, "an error occurred", err.Error()),
	}
}

// ternary helper for cleaner conditional assignment
func ternary(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}

	return falseVal
}
