package handlers

import (
	"net/http"
	"time"

	"stayhaven/middleware"
	"stayhaven/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking initiates a booking and a provisional payment order.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	if req.HouseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "houseId is required"})
		return
	}

	userID, _ := middleware.Principal(c)
	result, err := h.Service.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Booking initiated",
		"bookingId":   result.BookingID,
		"orderId":     result.OrderID,
		"amount":      result.AmountPaise,
		"totalAmount": result.TotalAmount,
		"currency":    result.Currency,
	})
}

// VerifyPayment authenticates a payment callback and confirms the booking.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var req struct {
		BookingID         string `json:"bookingId"`
		RazorpayPaymentID string `json:"razorpayPaymentId"`
		RazorpaySignature string `json:"razorpaySignature"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bookingId is required"})
		return
	}

	b, err := h.Service.ConfirmPayment(c.Request.Context(), req.BookingID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified, booking confirmed",
		"booking": b,
	})
}

// GetBooking returns a single booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetCheckoutStatus probes a booking's lifecycle and payment state.
func (h *BookingHandler) GetCheckoutStatus(c *gin.Context) {
	status, err := h.Service.GetCheckoutStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ListMyBookings returns the caller's bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, _ := middleware.Principal(c)
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListAllBookings returns every booking. Admin only.
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	bookings, err := h.Service.ListAllBookings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CancelBooking releases a booking's interval.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, role := middleware.Principal(c)
	actor := booking.Principal{ID: userID, Role: role}

	if err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// CheckAvailability reports whether a house can host a date range.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	houseID := c.Query("houseId")
	if houseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "houseId is required"})
		return
	}
	checkIn, err := time.Parse(time.RFC3339, c.Query("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "checkIn must be an RFC3339 timestamp"})
		return
	}
	checkOut, err := time.Parse(time.RFC3339, c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "checkOut must be an RFC3339 timestamp"})
		return
	}

	result, err := h.Service.CheckAvailability(c.Request.Context(), houseID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
