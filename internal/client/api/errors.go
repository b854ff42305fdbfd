package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrCourseNotFound = errors.New("course not found")
)

// AuthError is returned by Login, Register and CurrentUser.
// Message is suitable for display.
type AuthError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// CatalogError is returned by FetchCourseList and FetchCourseDetail.
type CatalogError struct {
	Op         string
	Message    string
	StatusCode int
	Err        error
}

func (e *CatalogError) Error() string { return e.Message }

func (e *CatalogError) Unwrap() error { return e.Err }

// statusError describes a non-2xx response when the server sent no message.
func statusError(code int) error {
	switch code {
	case 401, 403:
		return ErrUnauthorized
	case 502, 503, 504:
		return ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
