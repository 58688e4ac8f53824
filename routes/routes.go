package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/upb/course-registry/app"
)

// SetupRoutes configures all application routes and middleware.
// Identity resolution runs on every API route; authorization decisions
// live in the service layer, so no route carries a role check here.
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoints
	r.Get("/healthz", deps.HealthHandler.HandleHealth)
	r.Get("/readyz", deps.HealthHandler.HandleReadiness)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(deps.AuthMiddleware.Authenticate)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.HandleRegister)
			r.Post("/login", deps.AuthHandler.HandleLogin)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", deps.UserHandler.HandleMe)
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", deps.CourseHandler.HandleList)
			r.Post("/", deps.CourseHandler.HandleCreate)
			r.Get("/mine", deps.CourseHandler.HandleListMine)
			r.Get("/{id}", deps.CourseHandler.HandleGet)
			r.Put("/{id}", deps.CourseHandler.HandleUpdate)
			r.Delete("/{id}", deps.CourseHandler.HandleDelete)
			r.Get("/{id}/students", deps.RegistrationHandler.HandleRoster)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Post("/", deps.RegistrationHandler.HandleEnroll)
			r.Get("/mine", deps.RegistrationHandler.HandleListMine)
			r.Delete("/{courseID}", deps.RegistrationHandler.HandleDrop)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
