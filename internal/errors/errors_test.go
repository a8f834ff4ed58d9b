package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestTooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/limited", func(c *gin.Context) {
		TooManyRequests(c, "")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeTooManyRequests, resp.Error)
	assert.Equal(t, "too many requests", resp.Message)
	assert.Empty(t, resp.Details)
}

func TestRecoveryConvertsPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetEnvironment("development")

	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeServerError, resp.Error)
	assert.Equal(t, "panic: kaboom", resp.Details)
}

func TestInternalErrorSanitizesInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetEnvironment("production")
	defer SetEnvironment("development")

	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		InternalError(c, "", fmt.Errorf("secret internals: %w", context.DeadlineExceeded))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

	resp := decodeError(t, rec)
	assert.Equal(t, "an error occurred", resp.Message)
	assert.Equal(t, "request timed out", resp.Details)
}

func TestServiceUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetEnvironment("production")
	defer SetEnvironment("development")

	router := gin.New()
	router.GET("/store", func(c *gin.Context) {
		ServiceUnavailable(c, "", redis.ErrClosed)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/store", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, CodeServiceUnavailable, resp.Error)
	assert.Equal(t, "rate limit store unavailable", resp.Details)
}

func TestClassifyError(t *testing.T) {
	SetEnvironment("development")

	cases := []struct {
		name     string
		err      error
		category string
	}{
		{"nil", nil, CategoryUnknown},
		{"panic", &PanicError{Value: 1}, CategoryPanic},
		{"redis closed", fmt.Errorf("get: %w", redis.ErrClosed), CategoryStore},
		{"deadline", context.DeadlineExceeded, CategoryTimeout},
		{"canceled", context.Canceled, CategoryTimeout},
		{"dial string", fmt.Errorf("dial tcp 127.0.0.1:6379: refused"), CategoryNetwork},
		{"other", fmt.Errorf("something odd"), CategoryUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.category, classifyError(tc.err).category)
		})
	}
}
