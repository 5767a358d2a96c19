package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	challengeapi "github.com/crowdlaunch/challenge-backend/internal/api/challenge"
	copilotapi "github.com/crowdlaunch/challenge-backend/internal/api/copilot"
	"github.com/crowdlaunch/challenge-backend/internal/api/docs"
	helpapi "github.com/crowdlaunch/challenge-backend/internal/api/help"
	"github.com/crowdlaunch/challenge-backend/internal/api/middleware"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	challengeHandler *challengeapi.Handler,
	helpHandler *helpapi.Handler,
	copilotHandler *copilotapi.Handler,
	allowedOrigin string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                 // Recover from panics
	r.Use(chimiddleware.RequestID)                 // Add request ID
	r.Use(middleware.Logger(logger))               // Log requests
	r.Use(middleware.CORS(allowedOrigin))          // Handle CORS
	r.Use(chimiddleware.Timeout(60 * time.Second)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"message":"CrowdLaunch API"}`))
		})

		challengeapi.RegisterRoutes(r, challengeHandler)
		helpapi.RegisterRoutes(r, helpHandler)
		copilotapi.RegisterRoutes(r, copilotHandler)
	})

	return r
}
