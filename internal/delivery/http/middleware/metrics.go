package middleware

import (
	"net/http"
	"strconv"
	"time"

	"capgeticket/internal/metrics"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

// Metrics records request count and latency labelled with the route template
// (e.g. /evento/{id}) so that ids do not explode label cardinality.
func Metrics(m *metrics.Metrics, router *mux.Router, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		path := routeTemplate(router, r)
		m.HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func routeTemplate(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
