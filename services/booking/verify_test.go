package booking

import (
	"context"
	"testing"

	"stayhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:              "b1",
		UserID:          "u1",
		HouseID:         "h1",
		RazorpayOrderID: "order_1",
		BookingStatus:   models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
	}
}

func TestConfirmPayment(t *testing.T) {
	t.Run("valid signature confirms and notifies", func(t *testing.T) {
		repo := new(mockBookingRepo)
		gw := new(mockGateway)
		disp := new(mockDispatcher)

		confirmed := pendingBooking()
		confirmed.BookingStatus = models.BookingStatusConfirmed
		confirmed.PaymentStatus = models.PaymentStatusPaid
		confirmed.RazorpayPaymentID = "pay_1"

		repo.On("GetByID", mock.Anything, "b1").Return(pendingBooking(), nil).Once()
		gw.On("VerifySignature", "order_1", "pay_1", "sig").Return(true)
		repo.On("ConfirmPayment", mock.Anything, "b1", "pay_1", "sig").Return(true, nil)
		repo.On("GetByID", mock.Anything, "b1").Return(confirmed, nil).Once()
		disp.On("DispatchUserPush", mock.Anything, mock.MatchedBy(func(p models.PushPayload) bool {
			return p.UserID == "u1" && p.Data["bookingId"] == "b1"
		})).Return()

		svc := &DefaultBookingService{Repo: repo, Gateway: gw, Dispatcher: disp, Logger: zap.NewNop()}
		b, err := svc.ConfirmPayment(context.Background(), "b1", "pay_1", "sig")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, b.BookingStatus)
		disp.AssertExpectations(t)
	})

	t.Run("tampered signature rejected before any write", func(t *testing.T) {
		repo := new(mockBookingRepo)
		gw := new(mockGateway)
		repo.On("GetByID", mock.Anything, "b1").Return(pendingBooking(), nil)
		gw.On("VerifySignature", "order_1", "pay_1", "bad").Return(false)

		svc := &DefaultBookingService{Repo: repo, Gateway: gw, Logger: zap.NewNop()}
		_, err := svc.ConfirmPayment(context.Background(), "b1", "pay_1", "bad")
		var sigErr *SignatureError
		require.ErrorAs(t, err, &sigErr)
		repo.AssertNotCalled(t, "ConfirmPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repeat callback for same payment is idempotent", func(t *testing.T) {
		repo := new(mockBookingRepo)
		gw := new(mockGateway)
		disp := new(mockDispatcher)

		confirmed := pendingBooking()
		confirmed.BookingStatus = models.BookingStatusConfirmed
		confirmed.PaymentStatus = models.PaymentStatusPaid
		confirmed.RazorpayPaymentID = "pay_1"

		repo.On("GetByID", mock.Anything, "b1").Return(confirmed, nil)
		gw.On("VerifySignature", "order_1", "pay_1", "sig").Return(true)
		repo.On("ConfirmPayment", mock.Anything, "b1", "pay_1", "sig").Return(false, nil)

		svc := &DefaultBookingService{Repo: repo, Gateway: gw, Dispatcher: disp, Logger: zap.NewNop()}
		b, err := svc.ConfirmPayment(context.Background(), "b1", "pay_1", "sig")
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusConfirmed, b.BookingStatus)
		// No second notification for a replayed callback.
		disp.AssertNotCalled(t, "DispatchUserPush", mock.Anything, mock.Anything)
	})

	t.Run("different payment on confirmed booking conflicts", func(t *testing.T) {
		repo := new(mockBookingRepo)
		gw := new(mockGateway)

		confirmed := pendingBooking()
		confirmed.BookingStatus = models.BookingStatusConfirmed
		confirmed.RazorpayPaymentID = "pay_1"

		repo.On("GetByID", mock.Anything, "b1").Return(confirmed, nil)
		gw.On("VerifySignature", "order_1", "pay_2", "sig").Return(true)
		repo.On("ConfirmPayment", mock.Anything, "b1", "pay_2", "sig").Return(false, nil)

		svc := &DefaultBookingService{Repo: repo, Gateway: gw, Logger: zap.NewNop()}
		_, err := svc.ConfirmPayment(context.Background(), "b1", "pay_2", "sig")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		repo := new(mockBookingRepo)
		gw := new(mockGateway)

		cancelled := pendingBooking()
		cancelled.BookingStatus = models.BookingStatusCancelled

		repo.On("GetByID", mock.Anything, "b1").Return(cancelled, nil)
		gw.On("VerifySignature", "order_1", "pay_1", "sig").Return(true)
		repo.On("ConfirmPayment", mock.Anything, "b1", "pay_1", "sig").Return(false, nil)

		svc := &DefaultBookingService{Repo: repo, Gateway: gw, Logger: zap.NewNop()}
		_, err := svc.ConfirmPayment(context.Background(), "b1", "pay_1", "sig")
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})
}

func TestCancelBooking(t *testing.T) {
	house := &models.House{ID: "h1", HostID: "host1"}

	t.Run("host can cancel", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		repo.On("GetByID", mock.Anything, "b1").Return(pendingBooking(), nil)
		houses.On("GetByID", mock.Anything, "h1").Return(house, nil)
		repo.On("MarkCancelled", mock.Anything, "b1").Return(true, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		err := svc.CancelBooking(context.Background(), "b1", Principal{ID: "host1", Role: models.RoleHost})
		assert.NoError(t, err)
	})

	t.Run("admin can cancel without owning the house", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		repo.On("GetByID", mock.Anything, "b1").Return(pendingBooking(), nil)
		repo.On("MarkCancelled", mock.Anything, "b1").Return(true, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		err := svc.CancelBooking(context.Background(), "b1", Principal{ID: "someone", Role: models.RoleAdmin})
		assert.NoError(t, err)
		houses.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("guest cannot cancel", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		repo.On("GetByID", mock.Anything, "b1").Return(pendingBooking(), nil)
		houses.On("GetByID", mock.Anything, "h1").Return(house, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		err := svc.CancelBooking(context.Background(), "b1", Principal{ID: "u1", Role: models.RoleUser})
		var forbidden *ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		repo.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything)
	})

	t.Run("cancelling an already cancelled booking is a no-op", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		cancelled := pendingBooking()
		cancelled.BookingStatus = models.BookingStatusCancelled
		repo.On("GetByID", mock.Anything, "b1").Return(cancelled, nil)
		repo.On("MarkCancelled", mock.Anything, "b1").Return(false, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		err := svc.CancelBooking(context.Background(), "b1", Principal{ID: "x", Role: models.RoleAdmin})
		assert.NoError(t, err)
	})

	t.Run("completed stay can no longer be cancelled", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		completed := pendingBooking()
		completed.BookingStatus = models.BookingStatusCompleted
		repo.On("GetByID", mock.Anything, "b1").Return(completed, nil)
		repo.On("MarkCancelled", mock.Anything, "b1").Return(false, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		err := svc.CancelBooking(context.Background(), "b1", Principal{ID: "x", Role: models.RoleAdmin})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})
}
