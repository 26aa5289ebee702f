package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies an APIError.
type Kind int

const (
	// KindRequestFailed is a non-2xx response from the backend.
	KindRequestFailed Kind = iota
	// KindNoRefreshToken means a 401 arrived and there was nothing to refresh with.
	KindNoRefreshToken
	// KindSessionExpired means the refresh call itself failed.
	KindSessionExpired
)

func (k Kind) String() string {
	switch k {
	case KindNoRefreshToken:
		return "no_refresh_token"
	case KindSessionExpired:
		return "session_expired"
	default:
		return "request_failed"
	}
}

var (
	ErrNoRefreshToken = errors.New("no refresh token")
	ErrSessionExpired = errors.New("session expired")
	// ErrUnauthorized matches any APIError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden matches any APIError with status 403.
	ErrForbidden = errors.New("forbidden")
)

// APIError is the single error type the client produces for HTTP-level
// failures. Body holds the parsed response (or an empty object).
type APIError struct {
	Kind    Kind
	Message string
	Status  int
	Body    any
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNoRefreshToken:
		return e.Kind == KindNoRefreshToken
	case ErrSessionExpired:
		return e.Kind == KindSessionExpired
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// IsSessionLost reports whether err means the user has to log in again.
func IsSessionLost(err error) bool {
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNoRefreshToken)
}

func noRefreshTokenError() *APIError {
	return &APIError{
		Kind:    KindNoRefreshToken,
		Message: "No refresh token",
		Status:  http.StatusUnauthorized,
		Body:    map[string]any{},
	}
}

func sessionExpiredError() *APIError {
	return &APIError{
		Kind:    KindSessionExpired,
		Message: "Session expired",
		Status:  http.StatusUnauthorized,
		Body:    map[string]any{},
	}
}

func requestFailedError(status int, body any) *APIError {
	return &APIError{
		Kind:    KindRequestFailed,
		Message: messageFromBody(status, body),
		Status:  status,
		Body:    body,
	}
}

// messageFromBody prefers the backend's "message" field. Validation errors
// arrive as a list of strings.
func messageFromBody(status int, body any) string {
	if m, ok := body.(map[string]any); ok {
		switch msg := m["message"].(type) {
		case string:
			if msg != "" {
				return msg
			}
		case []any:
			parts := make([]string, 0, len(msg))
			for _, p := range msg {
				parts = append(parts, fmt.Sprint(p))
			}
			if len(parts) > 0 {
				return strings.Join(parts, ", ")
			}
		}
	}
	return fmt.Sprintf("Request failed: %d", status)
}
