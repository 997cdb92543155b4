package shared

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/sarisari-api/internal/platform/logger"
	"github.com/phrazzld/sarisari-api/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"-"` // Not serialized, used for logging
}

// ValidationErrorResponse is sent when a payload fails more than one check.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level. Use for important operational issues like
// repeated auth failures.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithError writes an error response with the given status code and message
// in the requested format. The trace ID, when present, is echoed in the
// X-Trace-Id header.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := echoTraceID(w, r)

	logger.FromContext(r.Context()).Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	Respond(w, r, status, ErrorResponse{Error: message, Code: status})
}

// RespondWithValidationErrors writes a 400 response for failed validation. A
// single message is sent as {"error": msg}, several as {"errors": [...]}.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, messages []string) {
	if len(messages) == 1 {
		RespondWithError(w, r, http.StatusBadRequest, messages[0])
		return
	}

	traceID := echoTraceID(w, r)
	logger.FromContext(r.Context()).Debug("sending validation errors",
		"status_code", http.StatusBadRequest,
		"messages", messages,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	Respond(w, r, http.StatusBadRequest, ValidationErrorResponse{Errors: messages})
}

// RespondWithErrorAndLog writes an error response and also logs the detailed error.
// This is useful for handling errors where you want to log the full error but only
// expose a sanitized version to the client.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: By default logged at DEBUG level
// - 429 Too Many Requests: Logged at WARN level (operational concern)
// - Other status codes: Logged at DEBUG level
//
// For special cases where 4xx errors need higher visibility (e.g., repeated auth failures),
// use the WithElevatedLogLevel() option to elevate to WARN level.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := echoTraceID(w, r)

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	// The raw error goes to the logs only, redacted
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if status == http.StatusTooManyRequests {
		logLevel = slog.LevelWarn
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	Respond(w, r, status, ErrorResponse{Error: userMessage, Code: status})
}

func echoTraceID(w http.ResponseWriter, r *http.Request) string {
	traceID := GetTraceID(r.Context())
	if traceID != "" && w.Header().Get(TraceIDHeader) == "" {
		w.Header().Set(TraceIDHeader, traceID)
	}
	return traceID
}
