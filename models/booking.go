package models

import "time"

// Booking statuses. Completed and Cancelled are terminal.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Payment statuses.
const (
	PaymentStatusUnpaid  = "Unpaid"
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
)

// PaymentMode is a closed set of accepted payment channels.
type PaymentMode string

const (
	PaymentModeUPI        PaymentMode = "UPI"
	PaymentModeCreditCard PaymentMode = "CreditCard"
	PaymentModeDebitCard  PaymentMode = "DebitCard"
	PaymentModeWallet     PaymentMode = "Wallet"
	PaymentModeRazorpay   PaymentMode = "Razorpay"
	PaymentModeNetBanking PaymentMode = "NetBanking"
	PaymentModeUnknown    PaymentMode = "Unknown"
)

// GuestCounts holds the guest composition of a stay.
type GuestCounts struct {
	Adults   int `bson:"adults" json:"adults"`
	Children int `bson:"children" json:"children"`
	Infants  int `bson:"infants" json:"infants"`
	Pets     int `bson:"pets" json:"pets"`
}

// Total returns the combined guest count across all categories.
func (g GuestCounts) Total() int {
	return g.Adults + g.Children + g.Infants + g.Pets
}

// Booking is a reservation of a house for the half-open interval
// [CheckIn, CheckOut). Two bookings on the same house with status
// Pending or Confirmed must never overlap; a Cancelled booking
// releases its interval.
type Booking struct {
	ID      string `bson:"id" json:"id"`
	UserID  string `bson:"user_id" json:"userId"`
	HouseID string `bson:"house_id" json:"houseId"`

	CheckIn  time.Time `bson:"check_in" json:"checkIn"`
	CheckOut time.Time `bson:"check_out" json:"checkOut"`

	Guests      GuestCounts `bson:"guests" json:"guests"`
	TotalGuests int         `bson:"total_guests" json:"totalGuests"`

	TotalAmount   float64     `bson:"total_amount" json:"totalAmount"`
	PaymentMode   PaymentMode `bson:"payment_mode" json:"paymentMode"`
	PaymentStatus string      `bson:"payment_status" json:"paymentStatus"`

	RazorpayOrderID   string `bson:"razorpay_order_id,omitempty" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string `bson:"razorpay_payment_id,omitempty" json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string `bson:"razorpay_signature,omitempty" json:"-"`

	BookingStatus string `bson:"booking_status" json:"bookingStatus"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
