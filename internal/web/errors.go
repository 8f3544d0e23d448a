package web

// errors.go provides unified error response handling for the web layer.
//
// Handlers log the technical error with the chi request ID for correlation
// and return only the user-facing message to the client.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cracktacoshop/site/internal/careers"
	"github.com/go-chi/chi/v5/middleware"
)

// apiError is the JSON structure for API error responses.
type apiError struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// statusFor maps a careers error class onto an HTTP status code.
func statusFor(class careers.Class) int {
	switch class {
	case careers.ClassInput:
		return http.StatusBadRequest
	case careers.ClassConfig, careers.ClassDelivery:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a JSON error body and logs the technical detail.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, cause error) {
	requestID := middleware.GetReqID(r.Context())

	attrs := []any{
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"request_id", requestID,
	}
	if cause != nil {
		attrs = append(attrs, "error", cause.Error())
	}
	if status >= 500 {
		slog.Error("request error", attrs...)
	} else {
		slog.Info("request rejected", attrs...)
	}

	writeStatusJSON(w, status, apiError{OK: false, Message: message})
}

// writeJSON encodes v with a 200 status.
func writeJSON(w http.ResponseWriter, v any) {
	writeStatusJSON(w, http.StatusOK, v)
}

// writeStatusJSON encodes v as JSON with the given status. Encoding errors
// are logged since headers are already sent.
func writeStatusJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
