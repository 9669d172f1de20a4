// File: gashadrift/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gashadrift/config"
	"gashadrift/database"
	reservationRepo "gashadrift/database/repository/reservation"
	vehicleRepo "gashadrift/database/repository/vehicle"
	"gashadrift/handlers"
	"gashadrift/middleware"
	"gashadrift/routes"
	"gashadrift/services/auth"
	ai "gashadrift/services/intelligence"
	"gashadrift/services/inventory"
	"gashadrift/services/rental"
	"gashadrift/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// In-memory stores, seeded with the starter fleet. Everything is
	// discarded on restart.
	catalogRepo := vehicleRepo.NewSeededVehicleRepo(database.SeedFleet())
	ledgerRepo := reservationRepo.NewMemoryReservationRepo()

	// services.
	bookingService := &rental.DefaultBookingService{
		VehicleRepo:  catalogRepo,
		LedgerRepo:   ledgerRepo,
		ConfirmDelay: time.Duration(config.AppConfig.BookingDelayMS) * time.Millisecond,
	}
	inventoryService := &inventory.DefaultInventoryService{
		VehicleRepo: catalogRepo,
		LedgerRepo:  ledgerRepo,
	}
	authService := &auth.DefaultAuthService{
		SignInDelay:   time.Duration(config.AppConfig.AuthDelayMS) * time.Millisecond,
		RegisterDelay: time.Duration(config.AppConfig.AuthDelayMS) * time.Millisecond,
	}
	aiService := ai.NewDefaultAIService(config.AppConfig.GeminiAPIKey, catalogRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(authService),
		Vehicles:  handlers.NewVehicleHandler(catalogRepo, bookingService),
		Bookings:  handlers.NewBookingHandler(bookingService, logger),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		AI:        handlers.NewAIHandler(aiService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
