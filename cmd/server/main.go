package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tayo/teamwork-backend/internal/api"
	"github.com/tayo/teamwork-backend/internal/config"
	"github.com/tayo/teamwork-backend/internal/repository/postgres"
	"github.com/tayo/teamwork-backend/internal/service"
	"github.com/tayo/teamwork-backend/internal/upload"
	"github.com/tayo/teamwork-backend/internal/websocket"
)

func main() {
	// A missing .env file is fine; real env vars take over.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Ensure the bootstrap admin exists
	if err := postgres.SeedAdmin(context.Background(), repos.User, cfg); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	// Initialize the image store
	uploader, err := upload.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize activity feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	services := service.NewServices(repos, uploader, cfg)

	// Initialize router
	router := api.NewRouter(services, hub)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	hub.Stop()

	log.Println("Server stopped")
}
