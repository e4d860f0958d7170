package firefly

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for every HTTP error response from Firefly III and
// carries the message Firefly sent back.
type APIError struct {
	StatusCode int
	Message    string
	Errors     map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d – %s", e.StatusCode, e.Message)
}

const unknownErrorMessage = "Unknown error"

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{
		StatusCode: status,
		Message:    unknownErrorMessage,
		Errors:     map[string]any{},
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil && len(payload) > 0 {
		if msg, ok := payload["message"]; ok && msg != nil {
			e.Message = fmt.Sprint(msg)
		}
		if errs, ok := payload["errors"].(map[string]any); ok {
			e.Errors = errs
		}
	}
	if e.Message == unknownErrorMessage && len(body) > 0 {
		e.Message = string(body)
	}
	return e
}

// IsNotFound reports whether err is a 404 from Firefly III.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 from Firefly III.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
