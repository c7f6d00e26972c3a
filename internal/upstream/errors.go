package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthenticated indicates that the upstream API rejected the bearer credential
// (or that none was attached). It is the condition the route guard reacts to.
var ErrUnauthenticated = errors.New("upstream: unauthenticated")

// APIError represents a non-2xx response of the upstream API
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface
func (err *APIError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("upstream: %d: %s", err.Status, err.Message)
	}
	return fmt.Sprintf("upstream: unexpected status %d", err.Status)
}

// Reason returns the server-supplied failure reason, if any
func (err *APIError) Reason() string {
	return err.Message
}

func errorFromResponse(response *resty.Response) error {
	status := response.StatusCode()
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return ErrUnauthenticated
	}

	// The platform reports failures as '{"message": "..."}'
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(response.Body(), &payload)

	return &APIError{
		Status:  status,
		Message: payload.Message,
	}
}
