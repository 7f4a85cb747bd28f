package httpserver

import (
	"net/http"

	gorilla "github.com/gorilla/handlers"
	"go.uber.org/zap"
)

// Routes groups handlers.
type Routes struct {
	EnergyData         http.HandlerFunc
	DashboardData      http.HandlerFunc
	Suggestions        http.HandlerFunc
	Departments        http.HandlerFunc
	InitializeTestData http.HandlerFunc
	ResetAndInitialize http.HandlerFunc
	DataStatus         http.HandlerFunc
	Health             http.HandlerFunc
}

// NewRouter registers endpoints and wraps them with request logging and CORS
// restricted to the single allowed origin.
func NewRouter(routes Routes, allowedOrigin string, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	if routes.EnergyData != nil {
		mux.Handle("/api/data", method(http.MethodPost, routes.EnergyData))
	}
	if routes.DashboardData != nil {
		mux.Handle("/api/dashboard-data", method(http.MethodGet, routes.DashboardData))
	}
	if routes.Suggestions != nil {
		mux.Handle("/api/suggestions", method(http.MethodGet, routes.Suggestions))
	}
	if routes.Departments != nil {
		mux.Handle("/api/departments", method(http.MethodGet, routes.Departments))
	}
	if routes.InitializeTestData != nil {
		mux.Handle("/api/initialize-test-data", method(http.MethodPost, routes.InitializeTestData))
	}
	if routes.ResetAndInitialize != nil {
		mux.Handle("/api/reset-and-initialize", method(http.MethodPost, routes.ResetAndInitialize))
	}
	if routes.DataStatus != nil {
		mux.Handle("/api/data-status", method(http.MethodGet, routes.DataStatus))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}

	cors := gorilla.CORS(
		gorilla.AllowedOrigins([]string{allowedOrigin}),
		gorilla.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorilla.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(requestLogger(logger, mux))
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}
