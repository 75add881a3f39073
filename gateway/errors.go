package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "github.com/gymstack/gym-admin/internal/errors"
)

// TransportErrorMessage is shown when the request never reached the server or
// the response could not be parsed. It prompts a retry rather than exposing
// wire-level detail.
const TransportErrorMessage = "Unable to reach the server. Please try again."

// APIError is the single failure shape every gateway call produces. Status is
// zero for transport failures.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps the failure onto the console's sentinel errors so callers can
// branch with errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == 0:
		return apperrors.ErrBackendUnavailable
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrInvalidCredentials
	case e.Status == http.StatusNotFound:
		return apperrors.ErrNotFound
	case e.Status >= http.StatusInternalServerError:
		return apperrors.ErrInternal
	default:
		return nil
	}
}

// decodeAPIError builds the user-facing error for a non-2xx response: the
// body's "error" field verbatim when present, otherwise a message derived
// from the numeric status.
func decodeAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return &APIError{Status: status, Message: payload.Error}
	}
	return &APIError{Status: status, Message: statusMessage(status)}
}

func statusMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return fmt.Sprintf("Request failed: %d %s", status, text)
	}
	return fmt.Sprintf("Request failed with status %d", status)
}
