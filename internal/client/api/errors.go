package api

import (
	"net/http"

	"github.com/prismai/prism-cli/internal/common"
)

// RequestError is returned for non-2xx responses that carry a message worth
// showing to the user. Message holds the backend's structured "detail" field
// when present, otherwise the HTTP status text.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap lets callers match 403 responses with
// errors.Is(err, common.ErrForbidden) while still reading the backend's
// message from Error().
func (e *RequestError) Unwrap() error {
	if e.Status == http.StatusForbidden {
		return common.ErrForbidden
	}
	return nil
}
