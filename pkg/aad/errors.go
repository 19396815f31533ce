package aad

import (
	"fmt"

	"github.com/pkg/errors"
)

// AuthenticationError indicates the identity provider did not return a usable
// access token. Nothing can proceed without a token, so callers treat this as
// terminal.
type AuthenticationError struct {
	// Description is the provider's error description, or "unknown" when the
	// provider did not supply one.
	Description string
}

// Error returns the error message.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Description)
}

// IsAuthenticationError returns true if the given error is an AuthenticationError.
func IsAuthenticationError(err error) bool {
	target := &AuthenticationError{}
	return errors.As(err, &target)
}
