package routes

import (
	"net/http"
	"time"

	"slotwise/handlers"
	"slotwise/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the HTTP handlers wired in main.
type HandlerBundle struct {
	User     *handlers.UserHandler
	Booking  *handlers.BookingHandler
	Settings *handlers.SettingsHandler
}

// RegisterRoutes registers all endpoints.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Slotwise"})
	})

	users := r.Group("/api/users")
	{
		users.POST("/register", hb.User.RegisterUser)
		users.POST("/login", hb.User.AuthenticateUser)

		users.Use(middleware.JWTAuthMiddleware())
		users.GET("/me", hb.User.GetProfile)
	}

	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.JWTAuthMiddleware())
		booking.POST("/session", hb.Booking.InitiateSession)
		booking.PUT("/session/:sessionID", hb.Booking.UpdateSession)
		booking.POST("/confirm", hb.Booking.ConfirmBooking)
		booking.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		booking.GET("/mine", hb.Booking.GetUserBookings)
	}

	settings := r.Group("/api/settings")
	{
		settings.Use(middleware.JWTAuthMiddleware())
		settings.GET("/availability", hb.Settings.GetAvailability)
		settings.PUT("/availability", hb.Settings.SetAvailability)
	}
}
