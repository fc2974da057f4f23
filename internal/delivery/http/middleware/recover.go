package middleware

import (
	"fmt"
	"net/http"

	"capgeticket/internal/delivery/http/helpers"
)

// Recover turns a panic in next into a 500 envelope written by the translator.
// If next already started the response, the panic is only logged.
func Recover(translator *helpers.ErrorTranslator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := newResponseWriter(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			if wrapped.wroteHeader {
				translator.Logger.ErrorContext(r.Context(), "panic after response started",
					"path", r.URL.Path, "method", r.Method, "status", wrapped.status, "err", rec)
				return
			}
			translator.WriteError(w, r, fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(wrapped, r)
	})
}
