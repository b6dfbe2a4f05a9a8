package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotelops/config"
	"hotelops/controllers"
	"hotelops/routes"
	"hotelops/services"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	log.Info().Msg("database connection established and migrations applied")

	// Services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	billingService := services.NewBillingService(db)
	catalogService := services.NewCatalogService(db)
	requestService := services.NewRequestService(db)
	staffService := services.NewStaffService(db)
	payrollService := services.NewPayrollService(db, staffService)
	analyticsService := services.NewAnalyticsService(db)

	// Controllers
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	billingController := controllers.NewBillingController(billingService)
	serviceController := controllers.NewServiceController(catalogService, requestService)
	staffController := controllers.NewStaffController(staffService, payrollService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	router := routes.SetupRouter(
		roomController,
		bookingController,
		billingController,
		serviceController,
		staffController,
		analyticsController,
		cfg.CorsOrigins,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
