// Package adapthttp is the driving HTTP adapter exposing the JSON API.
package adapthttp

import (
	"net/http"

	"bmistation/internal/app"
)

// Server routes API requests to application services.
type Server struct {
	users   *app.UserService
	measure *app.MeasureService
	reports *app.ReportService
}

// New creates a Server wired to the given application services.
func New(us *app.UserService, ms *app.MeasureService, rs *app.ReportService) *Server {
	return &Server{users: us, measure: ms, reports: rs}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("POST /register", s.handleRegister)
	api.HandleFunc("POST /run-exe", s.handleRunExe)
	api.HandleFunc("POST /measure-bmi", s.handleMeasure)
	api.HandleFunc("GET /measurements/{userId}", s.handleMeasurements)
	api.HandleFunc("GET /report/{userId}", s.handleReport)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
