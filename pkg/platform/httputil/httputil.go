// Package httputil centralizes HTTP response writing. WriteError is the only
// place in the service that translates error values into status codes, the
// error envelope, and a log severity, so handlers stay detection-only.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "campusdir/pkg/domain-errors"
	"campusdir/pkg/requestcontext"
)

// ErrorBody is the inner payload of the error envelope.
type ErrorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	RequestID  string `json:"requestId"`
}

// ErrorEnvelope is the uniform body shape for all non-2xx responses.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates err into the error envelope and logs it, tagged with
// the request's correlation ID. Tagged errors keep their own message and
// mapped status; anything untagged becomes an opaque 500.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	status := http.StatusInternalServerError
	message := "Internal server error"
	var de *dErrors.Error
	if errors.As(err, &de) {
		status = dErrors.ToHTTPStatus(de.Code)
		message = de.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	} else {
		logger.WarnContext(ctx, "request rejected",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"reason", message,
		)
	}

	WriteJSON(w, status, ErrorEnvelope{Error: ErrorBody{
		Message:    message,
		StatusCode: status,
		RequestID:  requestID,
	}})
}
