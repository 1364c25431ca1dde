package routes

import (
	"stayhaven/handlers"
	"stayhaven/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware())
		bookingGroup.POST("", hb.Booking.CreateBooking)
		bookingGroup.POST("/verify-payment", hb.Booking.VerifyPayment)
		bookingGroup.GET("/availability", hb.Booking.CheckAvailability)
		bookingGroup.GET("/mybookings", hb.Booking.ListMyBookings)
		bookingGroup.GET("/:id", hb.Booking.GetBooking)
		bookingGroup.GET("/:id/checkout-status", hb.Booking.GetCheckoutStatus)
		bookingGroup.DELETE("/:id", hb.Booking.CancelBooking)
	}
}
