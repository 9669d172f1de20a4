package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gashadrift/handlers"
	"gashadrift/middleware"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Auth      *handlers.AuthHandler
	Vehicles  *handlers.VehicleHandler
	Bookings  *handlers.BookingHandler
	Inventory *handlers.InventoryHandler
	AI        *handlers.AIHandler
}

// RegisterAuthRoutes registers session endpoints. All of them are public;
// the admin variant only differs in the role baked into the token.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.SignInHandler)
		api.POST("/admin/login", hb.Auth.AdminSignInHandler)
		api.POST("/register", hb.Auth.RegisterHandler)
	}
}

// RegisterVehicleRoutes registers the public fleet browse endpoints.
func RegisterVehicleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/vehicles")
	{
		api.GET("", hb.Vehicles.ListVehiclesHandler)
		api.GET("/available", hb.Vehicles.AvailableVehiclesHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the rental workflow.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware())
		bookingGroup.POST("/quote", hb.Bookings.QuoteHandler)
		bookingGroup.POST("", hb.Bookings.ConfirmBookingHandler)
	}
}

// RegisterAIRoutes registers the smart-assistant endpoint.
func RegisterAIRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/recommend", hb.AI.RecommendHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for fleet management.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/vehicles", hb.Inventory.SearchVehiclesHandler)
		adminGroup.POST("/vehicles", hb.Inventory.AddVehicleHandler)
		adminGroup.PATCH("/vehicles/:id", hb.Inventory.UpdateVehicleHandler)
		adminGroup.DELETE("/vehicles/:id", hb.Inventory.DeleteVehicleHandler)
		adminGroup.GET("/reservations", hb.Inventory.ListReservationsHandler)
		adminGroup.GET("/stats", hb.Inventory.FleetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GashaDrift"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterVehicleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
