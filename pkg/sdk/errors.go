package floradex

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound reports that the requested taxon does not exist.
// Use errors.Is() to check.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the floradex API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("floradex: api error %d: %s", e.StatusCode, e.Message)
}

// Is matches ErrNotFound for 404 responses, so callers can use errors.Is
// without inspecting status codes.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
