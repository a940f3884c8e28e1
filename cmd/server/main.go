package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"fitstudio/admin-api/internal/api"
	"fitstudio/admin-api/internal/config"
	"fitstudio/admin-api/internal/service"
	"fitstudio/admin-api/internal/upstream"
)

func main() {
	log.Println("Starting fitness-studio admin API...")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.Upstream.Endpoint == "" {
		log.Fatalf("FATAL: upstream.endpoint is not configured")
	}
	if cfg.Upstream.APIKey == "" {
		// Boot anyway; requests will surface this as a 500 until fixed.
		log.Println("WARNING: upstream.api_key is not configured")
	}
	log.Println("Configuration loaded.")

	gqlClient := upstream.NewClient(cfg.Upstream.Endpoint, cfg.Upstream.APIKey, cfg.Upstream.Timeout)

	log.Println("Initializing services...")
	authService := service.NewAuthService(gqlClient, cfg.JWT.Secret, cfg.JWT.Expiration)
	trainerService := service.NewTrainerService(gqlClient, cfg.Admin.Email)
	clientService := service.NewClientService(gqlClient, cfg.Auth.DefaultPassword)
	workoutService := service.NewWorkoutService(gqlClient)
	mealPlanService := service.NewMealPlanService(gqlClient)

	router := gin.Default()

	log.Println("Setting up API routes...")
	api.SetupRoutes(router, authService, trainerService, clientService, workoutService, mealPlanService)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
