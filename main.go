package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avross/shoplist-be/internal/api"
	"github.com/avross/shoplist-be/internal/auth"
	"github.com/avross/shoplist-be/internal/config"
	"github.com/avross/shoplist-be/internal/database"
	"github.com/avross/shoplist-be/internal/logger"
	"github.com/avross/shoplist-be/internal/services"
)

func main() {
	logger.Init()

	// Load configuration. A missing signing secret or database path is
	// fatal here, never a per-request error.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Set up services
	tokenService := auth.NewService(cfg.JWTSecret)
	userService := services.NewUserService(db)
	listService := services.NewListService(db)
	eventService := services.NewEventService(db)

	// Set up router
	router := api.NewRouter(tokenService, userService, listService, eventService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
