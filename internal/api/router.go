package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tayo/teamwork-backend/internal/api/handlers"
	"github.com/tayo/teamwork-backend/internal/api/middleware"
	"github.com/tayo/teamwork-backend/internal/service"
	"github.com/tayo/teamwork-backend/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	articleHandler := handlers.NewArticleHandler(services.Article, hub)
	gifHandler := handlers.NewGifHandler(services.Gif, hub)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Tokens)

	requireAuth := middleware.Auth(services.Tokens)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Public sign-in
			r.Post("/signin", authHandler.SignIn)

			// Admin-only user management
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Use(middleware.Admin)
				r.Post("/create-user", authHandler.CreateUser)
				r.Get("/users", authHandler.ListUsers)
			})
		})

		r.Route("/articles", func(r chi.Router) {
			// Open reads
			r.Get("/feed", articleHandler.Feed)
			r.Get("/{id}", articleHandler.Get)

			// Authenticated mutations
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", articleHandler.Create)
				r.Put("/{id}", articleHandler.Update)
				r.Delete("/{id}", articleHandler.Delete)
				r.Post("/{id}/comment", articleHandler.AddComment)
			})
		})

		r.Route("/gifs", func(r chi.Router) {
			r.Get("/feed", gifHandler.Feed)
			r.Get("/{id}", gifHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", gifHandler.Create)
				r.Delete("/{id}", gifHandler.Delete)
				r.Post("/{id}/comment", gifHandler.AddComment)
			})
		})

		// Activity feed
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
