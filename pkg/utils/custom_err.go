package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnknownInterest        = errors.New("unknown interest")
	ErrUnsupportedImageFormat = errors.New("unsupported image format")
	ErrImageTooLarge          = errors.New("image too large")
	ErrUpstreamTimeout        = errors.New("upstream timeout")
	ErrInvalidOAuthState      = errors.New("invalid oauth state")
)

// UpstreamError is returned when the search or generation provider answers with
// anything other than a usable success.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s upstream error (%d): %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s upstream error: %s", e.Provider, e.Message)
}

func NewUpstreamError(provider string, statusCode int, message string) *UpstreamError {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Message: message}
}

// InvalidInputf wraps ErrInvalidInput with a field-level detail.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
