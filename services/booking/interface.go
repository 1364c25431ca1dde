package booking

import (
	"context"
	"time"

	"stayhaven/models"
)

// Principal identifies the authenticated actor of a request.
type Principal struct {
	ID   string
	Role string
}

// GuestCountsInput carries the requested guest composition. Pointer
// fields distinguish "omitted" from an explicit zero: a missing adults
// count defaults to one, all other categories default to zero.
type GuestCountsInput struct {
	Adults   *int `json:"adults"`
	Children *int `json:"children"`
	Infants  *int `json:"infants"`
	Pets     *int `json:"pets"`
}

// CreateBookingRequest is the input to CreateBooking.
type CreateBookingRequest struct {
	HouseID  string           `json:"houseId"`
	CheckIn  time.Time        `json:"checkIn"`
	CheckOut time.Time        `json:"checkOut"`
	Guests   GuestCountsInput `json:"guests"`
}

// CreateBookingResult is returned to the caller, who completes payment
// out-of-band against the provider order.
type CreateBookingResult struct {
	BookingID   string  `json:"bookingId"`
	OrderID     string  `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	AmountPaise int64   `json:"amount"`
	Currency    string  `json:"currency"`
}

// AvailabilityResult reports whether a house can host the given range.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CheckoutStatus is a lightweight probe of a booking's progress.
type CheckoutStatus struct {
	BookingID     string `json:"bookingId"`
	BookingStatus string `json:"bookingStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

// BookingService drives the booking lifecycle: creation against
// capacity and availability, payment confirmation, cancellation and
// completion.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*CreateBookingResult, error)
	ConfirmPayment(ctx context.Context, bookingID, paymentID, signature string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string, actor Principal) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	GetCheckoutStatus(ctx context.Context, bookingID string) (*CheckoutStatus, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
	CheckAvailability(ctx context.Context, houseID string, checkIn, checkOut time.Time) (*AvailabilityResult, error)
	CompletePastCheckout(ctx context.Context, now time.Time) (int64, error)
}
