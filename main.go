package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/routes"
	"hotel-management/services"
	"hotel-management/utils"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established")

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Database handle unavailable: %v", err)
	}
	defer sqlDB.Close()

	// Initialize services
	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db, cfg.StrictStatusValues)
	bookingService := services.NewBookingService(db, cfg.StrictStatusValues)
	paymentService := services.NewPaymentService(db)
	healthService := services.NewHealthService(db)

	// Initialize controllers
	resp := utils.NewResponder(cfg.HTTPErrorStatus)
	guestController := controllers.NewGuestController(guestService, resp)
	roomController := controllers.NewRoomController(roomService, resp)
	bookingController := controllers.NewBookingController(bookingService, resp)
	paymentController := controllers.NewPaymentController(paymentService, resp)
	healthController := controllers.NewHealthController(healthService)

	router := routes.SetupRouter(cfg, guestController, roomController, bookingController, paymentController, healthController)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
		return
	}

	log.Println("✅ Server stopped gracefully")
}
