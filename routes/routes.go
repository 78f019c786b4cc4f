package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotelbooking/handlers"
	"hotelbooking/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers registration and user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)

		protected := api.Group("")
		protected.Use(middleware.VerifyToken(hb.Tokens, hb.Denylist))
		protected.GET("/me", hb.GetCurrentUserHandler)
		protected.GET("", hb.GetAllUsersHandler)
	}
}

// RegisterAuthRoutes registers login, logout and token validation.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AuthenticateUserHandler)
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/validate-token", middleware.VerifyToken(hb.Tokens, hb.Denylist), hb.ValidateTokenHandler)
	}
}

// RegisterHotelRoutes registers public browsing and the booking flow.
func RegisterHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hotels")
	{
		api.GET("", hb.ListHotelsHandler)
		api.GET("/search", hb.SearchHotelsHandler)
		api.GET("/:hotelId", hb.GetHotelHandler)

		protected := api.Group("")
		protected.Use(middleware.VerifyToken(hb.Tokens, hb.Denylist))
		protected.POST("/:hotelId/bookings/payment-intent", hb.CreatePaymentIntentHandler)
		protected.POST("/:hotelId/bookings", hb.ConfirmBookingHandler)
	}
}

// RegisterMyHotelRoutes registers the owner endpoints.
func RegisterMyHotelRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/my-hotels")
	{
		api.Use(middleware.VerifyToken(hb.Tokens, hb.Denylist))
		api.POST("", hb.CreateMyHotelHandler)
		api.GET("", hb.ListMyHotelsHandler)
		api.GET("/:hotelId", hb.GetMyHotelHandler)
		api.PUT("/:hotelId", hb.UpdateMyHotelHandler)
	}
}

// RegisterMyBookingRoutes registers the caller's booking listing.
func RegisterMyBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/my-bookings")
	{
		api.Use(middleware.VerifyToken(hb.Tokens, hb.Denylist))
		api.GET("", hb.MyBookingsHandler)
	}
}

// RegisterOpsRoutes registers the health-check and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	if hb.MetricsHandler != nil {
		r.GET("/metrics", hb.MetricsHandler)
	}
}

// RegisterStaticRoutes serves a built frontend from dir. Unknown GET paths
// outside /api fall back to index.html so client-side routing works.
func RegisterStaticRoutes(r *gin.Engine, dir string) {
	index := filepath.Join(dir, "index.html")
	r.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || strings.HasPrefix(path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}
		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(index)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, frontendURL, staticDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHotelRoutes(r, hb)
	RegisterMyHotelRoutes(r, hb)
	RegisterMyBookingRoutes(r, hb)
	RegisterOpsRoutes(r, hb)
	if staticDir != "" {
		RegisterStaticRoutes(r, staticDir)
	}
}
