package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anonb-dev/anonb/internal/middleware/metrics"
	"github.com/anonb-dev/anonb/internal/setup"
)

// New creates and configures the mux router with all routes.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	// Gzip compression for all responses
	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	))

	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/ready", h.Ready).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/threads/{board}", h.CreateThread).Methods("POST")
	api.HandleFunc("/threads/{board}", h.GetBoard).Methods("GET")
	api.HandleFunc("/threads/{board}", h.ReportThread).Methods("PUT")
	api.HandleFunc("/threads/{board}", h.DeleteThread).Methods("DELETE")

	api.HandleFunc("/replies/{board}", h.CreateReply).Methods("POST")
	api.HandleFunc("/replies/{board}", h.GetThread).Methods("GET")
	api.HandleFunc("/replies/{board}", h.ReportReply).Methods("PUT")
	api.HandleFunc("/replies/{board}", h.DeleteReply).Methods("DELETE")

	return r
}
