package arky

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx platform response. Code carries the platform's
// machine-readable error code when the body provided one.
type APIError struct {
	Status    int
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("arky: api error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("arky: api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("arky: api error %d", e.Status)
}

// IsNotFound reports whether err is a 404 from the platform.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from the platform.
func IsUnauthorized(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == http.StatusUnauthorized
}
