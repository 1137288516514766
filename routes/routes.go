package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/middleware"
)

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter wires the middleware chain and every API route.
func SetupRouter(
	cfg config.Config,
	gc *controllers.GuestController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	hc *controllers.HealthController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.GET("/health", hc.Health)

	api := r.Group("/api")
	{
		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.CreateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.PATCH("/:id/status", rc.UpdateRoomStatus)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.PATCH("/:id/cancel", bc.CancelBooking)
			bookings.PATCH("/:id/complete", bc.CompleteBooking)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pc.GetPayments)
			payments.POST("", pc.CreatePayment)
		}
	}

	if cfg.StaticDir != "" {
		files := http.FileServer(http.Dir(cfg.StaticDir))
		r.NoRoute(func(c *gin.Context) {
			// unknown API paths stay JSON
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			files.ServeHTTP(c.Writer, c.Request)
		})
	}

	return r
}
