package routes

import (
	"net/http"
	"time"

	"stayhaven/handlers"
	"stayhaven/middleware"
	"stayhaven/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHouseRoutes registers the listing read surface and host
// image management.
func RegisterHouseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/houses")
	{
		// Public browsing endpoints.
		api.GET("", hb.House.ListHouses)
		api.GET("/:id", hb.House.GetHouse)
		api.GET("/:id/reviews", hb.Review.ListHouseReviews)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/:id/images", hb.Storage.UploadHouseImages)
		protected.DELETE("/:id/images", hb.Storage.DeleteHouseImage)
	}
}

// RegisterReviewRoutes registers the review gate and submission endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/eligibility/:houseId", hb.Review.CheckEligibility)
		api.POST("", hb.Review.CreateReview)
	}
}

// RegisterUserRoutes registers the small identity surface the booking
// flows need.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/fcm-token", hb.User.RegisterFCMToken)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		adminGroup.GET("/bookings", hb.Booking.ListAllBookings)
		adminGroup.DELETE("/bookings/:id", hb.Booking.CancelBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterHouseRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
