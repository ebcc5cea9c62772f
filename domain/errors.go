package domain

import "net/http"

// Error is a domain failure that already knows the HTTP status it maps
// to. Controllers convert it into a {"message": ...} response; anything
// that is not an *Error becomes a generic 500.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Failures raised by the auth guard.
var (
	ErrUnauthenticated = NewError(http.StatusUnauthorized, "authorization required")
	ErrMalformedToken  = NewError(http.StatusUnauthorized, "malformed authorization header")
	ErrStaleToken      = NewError(http.StatusUnauthorized, "session is no longer active")
	ErrInvalidRefresh  = NewError(http.StatusUnauthorized, "refresh token invalid or expired")
	ErrInvalidToken    = NewError(http.StatusUnauthorized, "invalid token")
)
