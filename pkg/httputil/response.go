package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
)

// Response is the JSON envelope for API and page responses.
type Response struct {
	Data  any            `json:"data,omitempty"`
	Error *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse is the error half of Response.
type ErrorResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encode failure cannot be reported.
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorBody maps err onto a status code and a client-safe error body.
// Messages of unexpected errors never leave the process.
func ErrorBody(err error) (int, ErrorResponse) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != apperrors.CodeInternal {
		return appErr.Status, ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	}

	switch status := apperrors.HTTPStatus(err); status {
	case http.StatusNotFound:
		return status, ErrorResponse{Code: apperrors.CodeNotFound, Message: "resource not found"}
	case http.StatusConflict:
		return status, ErrorResponse{Code: apperrors.CodeAlreadyExists, Message: "resource already exists"}
	case http.StatusBadRequest:
		return status, ErrorResponse{Code: apperrors.CodeInvalidInput, Message: "invalid input"}
	case http.StatusUnauthorized:
		return status, ErrorResponse{Code: apperrors.CodeUnauthorized, Message: "unauthorized"}
	case http.StatusForbidden:
		return status, ErrorResponse{Code: apperrors.CodeForbidden, Message: "forbidden"}
	case http.StatusServiceUnavailable:
		return status, ErrorResponse{Code: "SERVICE_UNAVAILABLE", Message: "service temporarily unavailable"}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: apperrors.CodeInternal, Message: "an internal error occurred"}
	}
}

// LogIfInternal logs err at error level when it maps to a 5xx status. The
// request-scoped logger is preferred over fallback.
func LogIfInternal(r *http.Request, status int, err error, fallback *slog.Logger) {
	if status < http.StatusInternalServerError {
		return
	}
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		l = fallback
	}
	l.ErrorContext(r.Context(), "request failed",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
}

// WriteError writes the JSON error envelope for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	status, body := ErrorBody(err)
	LogIfInternal(r, status, err, fallback)
	body.RequestID = logger.CorrelationIDFromContext(r.Context())
	WriteJSON(w, status, Response{Error: &body})
}

// WantsHTML reports whether the client prefers an HTML page over JSON.
// Browsers list text/html in Accept; API clients and tests default to JSON.
func WantsHTML(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case "text/html", "application/xhtml+xml":
			return true
		case "application/json":
			return false
		}
	}
	return false
}
