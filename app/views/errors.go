package views

import "errors"

// Error taxonomy for the assembly pipeline. Handlers translate these at the
// endpoint boundary; anything unrecognized becomes a generic 500 with no
// internal detail in the response body.
var (
	// ErrValidation marks a request missing required input (400).
	ErrValidation = errors.New("invalid request")
	// ErrUnauthorized marks a failed credential lookup (401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks a lookup key with no matching record (404).
	ErrNotFound = errors.New("not found")
)

// HTTPStatus translates a pipeline error into a status code and a
// client-safe message. Upstream and unexpected failures collapse to a
// generic 500; their detail belongs in the logs only.
func HTTPStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return 400, err.Error()
	case errors.Is(err, ErrUnauthorized):
		return 401, err.Error()
	case errors.Is(err, ErrNotFound):
		return 404, err.Error()
	}
	return 500, "Internal server error"
}
