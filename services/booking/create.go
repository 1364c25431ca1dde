package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "stayhaven/database/repository/booking"
	houseRepo "stayhaven/database/repository/house"
	"stayhaven/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderCurrency = "INR"

// normalizeGuests applies category defaults and rejects negatives.
func normalizeGuests(in GuestCountsInput) (models.GuestCounts, error) {
	pick := func(v *int, def int) int {
		if v == nil {
			return def
		}
		return *v
	}
	guests := models.GuestCounts{
		Adults:   pick(in.Adults, 1),
		Children: pick(in.Children, 0),
		Infants:  pick(in.Infants, 0),
		Pets:     pick(in.Pets, 0),
	}
	if guests.Adults < 0 || guests.Children < 0 || guests.Infants < 0 || guests.Pets < 0 {
		return models.GuestCounts{}, errors.New("guest counts must not be negative")
	}
	return guests, nil
}

// checkCapacity validates the guest composition against the house
// limits, per category first, then the overall headcount.
func checkCapacity(house *models.House, guests models.GuestCounts) error {
	caps := house.GuestCapacity
	categories := []struct {
		name      string
		limit     int
		requested int
	}{
		{"adults", caps.Adults, guests.Adults},
		{"children", caps.Children, guests.Children},
		{"infants", caps.Infants, guests.Infants},
		{"pets", caps.Pets, guests.Pets},
	}
	for _, c := range categories {
		if c.requested > c.limit {
			return &CapacityError{Category: c.name, Limit: c.limit, Requested: c.requested}
		}
	}

	maxTotal := caps.MaxGuests
	if maxTotal <= 0 {
		maxTotal = 30
	}
	if total := guests.Total(); total > maxTotal {
		return &CapacityError{Category: "total", Limit: maxTotal, Requested: total}
	}
	return nil
}

// CreateBooking validates the request, opens a provisional payment
// order and persists a Pending/Unpaid booking holding the interval.
// Creation is all-or-nothing: a failed step leaves no partial booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (*CreateBookingResult, error) {
	house, err := s.HouseRepo.GetByID(ctx, req.HouseID)
	if err == houseRepo.ErrNotFound {
		return nil, &NotFoundError{Resource: "house", ID: req.HouseID}
	}
	if err != nil {
		return nil, err
	}

	if !req.CheckOut.After(req.CheckIn) {
		return nil, &ValidationError{Message: "check-out date must be after check-in date"}
	}

	if !withinOpenWindows(house, req.CheckIn, req.CheckOut) {
		return nil, &ConflictError{Message: "house is not open for these dates"}
	}

	overlap, err := s.Repo.HasOverlap(ctx, req.HouseID, req.CheckIn, req.CheckOut, "")
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, &ConflictError{Message: "house not available for these dates"}
	}

	guests, err := normalizeGuests(req.Guests)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if err := checkCapacity(house, guests); err != nil {
		return nil, err
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	totalAmount := TotalAmount(house.PricePerNight, nights, guests.Total())
	amountPaise := int64(totalAmount * 100)

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixNano())
	orderID, err := s.Gateway.CreateOrder(amountPaise, orderCurrency, receipt)
	if err != nil {
		s.Logger.Error("payment order creation failed",
			zap.String("houseId", req.HouseID),
			zap.String("userId", userID),
			zap.Error(err))
		return nil, &PaymentProviderError{Err: err}
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		UserID:          userID,
		HouseID:         req.HouseID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          guests,
		TotalGuests:     guests.Total(),
		TotalAmount:     totalAmount,
		PaymentMode:     models.PaymentModeRazorpay,
		PaymentStatus:   models.PaymentStatusUnpaid,
		RazorpayOrderID: orderID,
		BookingStatus:   models.BookingStatusPending,
	}

	if err := s.Repo.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, bookingRepo.ErrIntervalTaken) {
			return nil, &ConflictError{Message: "house not available for these dates"}
		}
		return nil, err
	}

	s.Logger.Info("booking initiated",
		zap.String("bookingId", b.ID),
		zap.String("houseId", b.HouseID),
		zap.Float64("totalAmount", totalAmount),
		zap.Int("nights", nights))

	return &CreateBookingResult{
		BookingID:   b.ID,
		OrderID:     orderID,
		TotalAmount: totalAmount,
		AmountPaise: amountPaise,
		Currency:    orderCurrency,
	}, nil
}
