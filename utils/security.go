package utils

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	// CSRFHeader is the header the bank's own script attaches the token to
	CSRFHeader = "X-CSRF-TOKEN"
	// SessionCookie is the ambient credential every browser request carries
	SessionCookie = "session=abc123"

	csrfTokenPrefix = "csrf-"
	csrfTokenLength = 9
)

var (
	ErrMissingCSRFToken = errors.New("unauthorized: missing CSRF token")
	ErrInvalidCSRFToken = errors.New("unauthorized: invalid CSRF token")
)

// GenerateCSRFToken returns a short random identifier such as csrf-3f9a1c2e7
func GenerateCSRFToken() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return csrfTokenPrefix + id[:csrfTokenLength]
}

// AuthorizeCSRF is the simulated server check: the header token has to be
// present and equal to the token bound to the session.
func AuthorizeCSRF(headerToken, sessionToken string) error {
	if headerToken == "" {
		return ErrMissingCSRFToken
	}
	if sessionToken == "" || headerToken != sessionToken {
		return ErrInvalidCSRFToken
	}
	return nil
}
