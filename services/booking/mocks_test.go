package booking

import (
	"context"
	"time"

	"stayhaven/models"

	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) LatestForUserAndHouse(ctx context.Context, userID, houseID string) (*models.Booking, error) {
	args := m.Called(ctx, userID, houseID)
	if b := args.Get(0); b != nil {
		return b.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) HasOverlap(ctx context.Context, houseID string, checkIn, checkOut time.Time, excludeID string) (bool, error) {
	args := m.Called(ctx, houseID, checkIn, checkOut, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *mockBookingRepo) ConfirmPayment(ctx context.Context, bookingID, paymentID, signature string) (bool, error) {
	args := m.Called(ctx, bookingID, paymentID, signature)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) MarkCancelled(ctx context.Context, bookingID string) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) CompletePastCheckout(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) CompleteIfPastCheckout(ctx context.Context, bookingID string, now time.Time) (bool, error) {
	args := m.Called(ctx, bookingID, now)
	return args.Bool(0), args.Error(1)
}

type mockHouseRepo struct {
	mock.Mock
}

func (m *mockHouseRepo) GetByID(ctx context.Context, id string) (*models.House, error) {
	args := m.Called(ctx, id)
	if h := args.Get(0); h != nil {
		return h.(*models.House), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHouseRepo) List(ctx context.Context) ([]models.House, error) {
	args := m.Called(ctx)
	if h := args.Get(0); h != nil {
		return h.([]models.House), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHouseRepo) ApplyReviewRating(ctx context.Context, houseID string, rating int) error {
	args := m.Called(ctx, houseID, rating)
	return args.Error(0)
}

func (m *mockHouseRepo) AddImageGroup(ctx context.Context, houseID string, group models.ImageGroup) error {
	args := m.Called(ctx, houseID, group)
	return args.Error(0)
}

func (m *mockHouseRepo) RemoveImageURL(ctx context.Context, houseID, url string) error {
	args := m.Called(ctx, houseID, url)
	return args.Error(0)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) CreateOrder(amountPaise int64, currency, receipt string) (string, error) {
	args := m.Called(amountPaise, currency, receipt)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) VerifySignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) DispatchUserPush(ctx context.Context, payload models.PushPayload) {
	m.Called(ctx, payload)
}
