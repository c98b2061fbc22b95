package adh

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a failed ADH API call. StatusCode carries the HTTP status the
// service answered with so callers can map lookup misses, validation errors
// and transport failures to their own taxonomy.
type Error struct {
	StatusCode  int
	Message     string
	OperationID string
}

func (e *Error) Error() string {
	if e.OperationID != "" {
		return fmt.Sprintf("adh: %s (status %d, operation %s)", e.Message, e.StatusCode, e.OperationID)
	}
	return fmt.Sprintf("adh: %s (status %d)", e.Message, e.StatusCode)
}

// IsNotFound reports whether err is an ADH lookup miss, unwrapping as needed.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// errorFromResponse drains the body and builds an *Error from a non-2xx response.
func errorFromResponse(resp *http.Response) *Error {
	apiErr := &Error{
		StatusCode:  resp.StatusCode,
		Message:     resp.Status,
		OperationID: resp.Header.Get("Operation-Id"),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	// The service reports failures as {"Error": "...", "Reason": "..."}; fall
	// back to the raw body when it is not JSON.
	var payload struct {
		Error  string `json:"Error"`
		Reason string `json:"Reason"`
	}
	if jsonErr := json.Unmarshal(body, &payload); jsonErr == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		if payload.Reason != "" {
			apiErr.Message = fmt.Sprintf("%s: %s", payload.Error, payload.Reason)
		}
		return apiErr
	}

	apiErr.Message = string(body)
	return apiErr
}
