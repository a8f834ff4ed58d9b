package errors

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "too_many_requests")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

type ErrorInfo struct {
	category  string
	sanitized string
}

// standard error codes
const (
	CodeServerError        = "server_error"
	CodeTooManyRequests    = "too_many_requests"
	CodeServiceUnavailable = "service_unavailable"
)

// error categories for classification
const (
	CategoryStore   = "store"
	CategoryNetwork = "network"
	CategoryTimeout = "timeout"
	CategoryPanic   = "panic"
	CategoryUnknown = "unknown"
)
