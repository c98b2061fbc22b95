package engine

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adhconnect/forecast-gateway/pkg/adh"
)

func (e *Engine) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		e.logger.Errorf("Failed to encode JSON response: %v", err)
	}
}

func (e *Engine) writeErrorResponse(w http.ResponseWriter, statusCode int, message, details string) {
	e.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   message,
		Message: details,
		Status:  StatusError,
	})
}

// handleStoreError maps a failed store call to an HTTP status, preserving the
// original message. Lookup misses become 404s; validation failures keep their
// 4xx status; everything else is a 500.
func (e *Engine) handleStoreError(w http.ResponseWriter, err error, defaultMessage string) {
	var apiErr *adh.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			e.writeErrorResponse(w, http.StatusNotFound, err.Error(), defaultMessage)
		case http.StatusBadRequest:
			e.writeErrorResponse(w, http.StatusBadRequest, err.Error(), defaultMessage)
		case http.StatusUnauthorized:
			e.writeErrorResponse(w, http.StatusUnauthorized, err.Error(), defaultMessage)
		case http.StatusForbidden:
			e.writeErrorResponse(w, http.StatusForbidden, err.Error(), defaultMessage)
		case http.StatusConflict:
			e.writeErrorResponse(w, http.StatusConflict, err.Error(), defaultMessage)
		default:
			e.writeErrorResponse(w, http.StatusInternalServerError, err.Error(), defaultMessage)
		}
	} else {
		e.writeErrorResponse(w, http.StatusInternalServerError, err.Error(), defaultMessage)
	}

	e.logger.Errorf("%s: %v", defaultMessage, err)
}
