package nhl

import "errors"

// APIError represents errors from upstream NHL API operations
type APIError struct {
	Endpoint string // Endpoint label (e.g., "standings")
	Code     string // Error code (e.g., "server_error")
	Message  string // Error message
	Err      error  // Underlying error
}

func (e APIError) Error() string {
	if e.Err != nil {
		return e.Endpoint + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Endpoint + ": " + e.Code + ": " + e.Message
}

func (e APIError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidData       = "invalid_data"
	ErrCodeNetworkError      = "network_error"
	ErrCodeServerError       = "server_error"
)

// Error constructors
var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrNotFound          = errors.New("data not found")
	ErrInvalidData       = errors.New("invalid data format")
)

// NewAPIError creates a new API error
func NewAPIError(endpoint, code, message string, err error) APIError {
	return APIError{
		Endpoint: endpoint,
		Code:     code,
		Message:  message,
		Err:      err,
	}
}
