package helpers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"capgeticket/internal/domain"
)

// HTTPError is a transport-level failure (bad media type, unreadable body, unknown route...)
// that maps directly to a status code and label.
type HTTPError struct {
	Status  int
	Label   string
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

// NewHTTPError returns an HTTPError.
func NewHTTPError(status int, label, message string) *HTTPError {
	return &HTTPError{Status: status, Label: label, Message: message}
}

// HandlerFunc is an HTTP handler that reports failures by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorTranslator turns errors raised anywhere in the request path into an ErrorResponse.
// It is the only place that writes error envelopes for handler errors.
type ErrorTranslator struct {
	Logger *slog.Logger
	Now    func() time.Time
}

func NewErrorTranslator(logger *slog.Logger) *ErrorTranslator {
	return &ErrorTranslator{Logger: logger, Now: time.Now}
}

// Handle adapts fn to an http.HandlerFunc, translating a returned error exactly once.
func (t *ErrorTranslator) Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			t.WriteError(w, r, err)
		}
	}
}

// WriteError writes the envelope for err. Unexpected errors are logged and their detail hidden.
func (t *ErrorTranslator) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, label, message := t.Translate(err)
	switch {
	case status >= http.StatusInternalServerError:
		t.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "status", status, "err", err)
	default:
		t.Logger.InfoContext(r.Context(), "request rejected", "path", r.URL.Path, "method", r.Method, "status", status, "message", message)
	}
	WriteJSON(w, status, NewErrorResponse(t.Now(), r, status, label, message))
}

// Translate maps err to a status code, error label and client message.
func (t *ErrorTranslator) Translate(err error) (int, string, string) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Label, httpErr.Message
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		switch {
		case errors.Is(domainErr.Kind, domain.ErrNotFound):
			return http.StatusNotFound, LabelNotFound, domainErr.Message
		case errors.Is(domainErr.Kind, domain.ErrInvalidArgument):
			return http.StatusBadRequest, LabelBadRequest, domainErr.Message
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, LabelNotFound, domain.MsgEventNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, LabelBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, LabelUnavailable, "La petición ha excedido el tiempo de espera"
	}
	return http.StatusInternalServerError, LabelInternalError, "Se ha producido un error inesperado"
}
