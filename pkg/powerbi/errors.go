package powerbi

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// requestIDHeader is the response header carrying the service side request id.
const requestIDHeader = "RequestId"

// APIError is returned for non-success responses from the Power BI REST API.
// The response body passes through untouched as diagnostic text.
type APIError struct {
	StatusCode int
	Body       string
	RequestID  string
}

// Error returns the error message.
func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("power bi request failed with status %d (request id %s): %s", e.StatusCode, e.RequestID, e.Body)
	}
	return fmt.Sprintf("power bi request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized returns true if the given error is a 401 from the service,
// which usually means the service principal lacks workspace permissions.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound returns true if the given error is a 404 from the service.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
