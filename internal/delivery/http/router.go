package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"capgeticket/internal/delivery/http/controllers"
	"capgeticket/internal/delivery/http/helpers"
	"capgeticket/internal/delivery/http/middleware"
	"capgeticket/internal/metrics"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

// allowCandidates are the methods reported in 405 responses, in this order.
var allowCandidates = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// NewRouter initializes the HTTP router with all application routes.
// Unknown routes and unsupported methods are answered with the error envelope.
func NewRouter(eventController *controllers.EventController, translator *helpers.ErrorTranslator, m *metrics.Metrics) *mux.Router {
	router := mux.NewRouter()
	handle := translator.Handle

	// API Routes
	router.HandleFunc("/evento", handle(eventController.FindAll)).Methods(http.MethodGet)
	router.HandleFunc("/evento", handle(eventController.Create)).Methods(http.MethodPost)
	router.HandleFunc("/evento", handle(eventController.Update)).Methods(http.MethodPut)
	router.HandleFunc("/evento/nombre", handle(eventController.FindByName)).Methods(http.MethodGet)
	router.HandleFunc("/evento/city", handle(eventController.FindByCity)).Methods(http.MethodGet)
	router.HandleFunc("/evento/genero", handle(eventController.FindByGenre)).Methods(http.MethodGet)
	router.HandleFunc("/evento/{id}", handle(eventController.FindByID)).Methods(http.MethodGet)
	router.HandleFunc("/evento/{id}", handle(eventController.Delete)).Methods(http.MethodDelete)

	// Operations
	router.HandleFunc("/health", health).Methods(http.MethodGet)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// Swagger
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		translator.WriteError(w, r, helpers.NewHTTPError(http.StatusNotFound, helpers.LabelRouteNotFound,
			fmt.Sprintf("No existe la ruta %s %s", r.Method, r.URL.Path)))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed := supportedMethods(router, r)
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		translator.WriteError(w, r, helpers.NewHTTPError(http.StatusMethodNotAllowed, helpers.LabelMethodNotAllowed,
			fmt.Sprintf("El método HTTP '%s' no está permitido para esta ruta. Métodos soportados: %s",
				r.Method, strings.Join(allowed, " "))))
	})

	return router
}

// NewHandler wraps the router with the middleware chain:
// request id, logging, metrics, panic recovery, CORS.
func NewHandler(router *mux.Router, logger *slog.Logger, translator *helpers.ErrorTranslator, m *metrics.Metrics, corsOrigins []string) http.Handler {
	var h http.Handler = router
	h = middleware.CORS(corsOrigins, h)
	h = middleware.Recover(translator, h)
	h = middleware.Metrics(m, router, h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return h
}

func supportedMethods(router *mux.Router, r *http.Request) []string {
	var allowed []string
	for _, method := range allowCandidates {
		candidate := r.Clone(r.Context())
		candidate.Method = method
		var match mux.RouteMatch
		if router.Match(candidate, &match) && match.MatchErr == nil && match.Route != nil {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

func health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "UP"})
}
