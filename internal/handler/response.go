package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// CONSISTENT ERROR FORMAT:
// Every error response from the API has the same shape:
//   {"ok": false, "error": "Ugyldigt VIN (tjek længde/tegn)"}
//
// The frontend only ever needs to read `ok` and `error`, regardless of
// whether the status is 400, 404, 502 or 500.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/vin-lookup/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	OK    bool   `json:"ok"`    // always false on errors
	Error string `json:"error"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status code must be set BEFORE writing the body — the first
// Write sends them, and changes after that are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already gone — all we can do is log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to the appropriate HTTP status code and
// sends the standard error shape.
//
// ERROR MAPPING:
// The service and decoder layers return apperror values; this is the single
// place they become status codes:
//
//	ErrValidation            → 400 (user-correctable input fault)
//	ErrNotFound              → 404 (unknown catalog id)
//	ErrUpstream / ..Empty    → 502 (the decoding service failed us)
//	anything else            → 500, generic message, no internal detail
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUpstream), errors.Is(err, apperror.ErrUpstreamEmpty):
			status = http.StatusBadGateway
		}

		writeJSON(w, status, ErrorResponse{Error: appErr.Message})
		return
	}

	// Unknown error — never leak internals to the client.
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Serverfejl"})
}
