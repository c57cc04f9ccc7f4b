package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"salonapp/config"
	"salonapp/handlers"
	"salonapp/middleware"
	"salonapp/routes"
	"salonapp/services/auth"
	"salonapp/services/booking"
	"salonapp/services/review"
	"salonapp/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitAuthCache()
	utils.StartHealthMonitor(utils.GetAuthCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-User-Id"},
		MaxAge:          24 * time.Hour,
	}))

	// Core components.
	slotClient := booking.NewHTTPSlotAPIClient(
		config.AppConfig.BookingAPIURL,
		time.Duration(config.AppConfig.BookingAPITimeoutSec)*time.Second,
	)
	availabilityStore := booking.NewAvailabilityStore(slotClient)
	coordinator := &booking.SubmissionCoordinator{
		Client: slotClient,
		Store:  availabilityStore,
	}
	ledger := review.NewLedger()
	sessionStore := &auth.RedisSessionStore{
		Client: utils.GetAuthCacheClient(),
		TTL:    time.Duration(config.AppConfig.AuthSessionTTLHours) * time.Hour,
	}

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(coordinator, availabilityStore, sessionStore, logger)
	reviewHandler := handlers.NewReviewHandler(ledger)
	authHandler := handlers.NewAuthHandler(sessionStore)

	routes.RegisterRoutes(router, bookingHandler, reviewHandler, authHandler)

	// Warm the availability snapshot so the first booking flow starts from
	// current data. Failure is fine; the first /slots call refreshes again.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := availabilityStore.Refresh(ctx); err != nil {
		logger.Sugar().Warnf("main: initial availability refresh failed: %v", err)
	}
	cancel()

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
