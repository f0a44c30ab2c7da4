package api

import (
	"encoding/json"
	"net/http"

	"github.com/avross/shoplist-be/internal/api/handlers"
	"github.com/avross/shoplist-be/internal/auth"
	"github.com/avross/shoplist-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(tokens *auth.Service, userService services.UserServiceProvider, listService services.ListServiceProvider, eventService services.EventServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, eventService)
	listHandler := handlers.NewListHandler(listService, eventService)
	eventHandler := handlers.NewEventHandler(eventService)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Backend server is running!"})
		})

		// Public auth endpoints
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(tokens.Middleware())
				r.Get("/me", authHandler.GetMe)
			})
		})

		// Everything below requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())

			r.Route("/lists", func(r chi.Router) {
				r.Get("/", listHandler.GetAll)
				r.Post("/", listHandler.Create)
				r.Route("/{listID}", func(r chi.Router) {
					r.Delete("/", listHandler.Delete)
					r.Post("/items", listHandler.AddItem)
					r.Route("/items/{itemID}", func(r chi.Router) {
						r.Delete("/", listHandler.DeleteItem)
						r.Patch("/toggle", listHandler.ToggleItem)
					})
				})
			})

			r.Get("/events", eventHandler.GetRecent)
		})
	})

	return r
}
