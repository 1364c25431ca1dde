package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "stayhaven/database/repository/booking"
	houseRepo "stayhaven/database/repository/house"
	"stayhaven/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(v int) *int { return &v }

func testHouse() *models.House {
	return &models.House{
		ID:            "h1",
		HostID:        "host1",
		PricePerNight: 100,
		GuestCapacity: models.GuestCapacity{
			Adults:    4,
			Children:  2,
			Infants:   1,
			Pets:      1,
			MaxGuests: 6,
		},
	}
}

func TestNormalizeGuests(t *testing.T) {
	t.Run("omitted counts default to one adult", func(t *testing.T) {
		guests, err := normalizeGuests(GuestCountsInput{})
		require.NoError(t, err)
		assert.Equal(t, models.GuestCounts{Adults: 1}, guests)
		assert.Equal(t, 1, guests.Total())
	})

	t.Run("explicit zero adults is kept", func(t *testing.T) {
		guests, err := normalizeGuests(GuestCountsInput{Adults: intPtr(0), Children: intPtr(2)})
		require.NoError(t, err)
		assert.Equal(t, models.GuestCounts{Adults: 0, Children: 2}, guests)
	})

	t.Run("negative count rejected", func(t *testing.T) {
		_, err := normalizeGuests(GuestCountsInput{Pets: intPtr(-1)})
		assert.Error(t, err)
	})
}

func TestCheckCapacity(t *testing.T) {
	house := testHouse()

	tests := []struct {
		name         string
		guests       models.GuestCounts
		wantCategory string
	}{
		{"within limits", models.GuestCounts{Adults: 2, Children: 1}, ""},
		{"exactly at category limit", models.GuestCounts{Adults: 4, Children: 2}, ""},
		{"too many adults", models.GuestCounts{Adults: 5}, "adults"},
		{"too many pets", models.GuestCounts{Adults: 1, Pets: 2}, "pets"},
		{"total over max", models.GuestCounts{Adults: 4, Children: 2, Infants: 1}, "total"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkCapacity(house, tt.guests)
			if tt.wantCategory == "" {
				assert.NoError(t, err)
				return
			}
			var capErr *CapacityError
			require.ErrorAs(t, err, &capErr)
			assert.Equal(t, tt.wantCategory, capErr.Category)
		})
	}

	t.Run("missing max total falls back to default cap", func(t *testing.T) {
		h := testHouse()
		h.GuestCapacity = models.GuestCapacity{Adults: 50, Children: 50}
		err := checkCapacity(h, models.GuestCounts{Adults: 20, Children: 15})
		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, "total", capErr.Category)
		assert.Equal(t, 30, capErr.Limit)
	})
}

func TestCreateBooking(t *testing.T) {
	newService := func(repo *mockBookingRepo, houses *mockHouseRepo, gw *mockGateway) *DefaultBookingService {
		return &DefaultBookingService{
			Repo:      repo,
			HouseRepo: houses,
			Gateway:   gw,
			Logger:    zap.NewNop(),
		}
	}

	req := CreateBookingRequest{
		HouseID:  "h1",
		CheckIn:  day(1),
		CheckOut: day(3),
		Guests:   GuestCountsInput{Adults: intPtr(2)},
	}

	t.Run("prices two nights for two guests", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		gw := new(mockGateway)
		houses.On("GetByID", mock.Anything, "h1").Return(testHouse(), nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(false, nil)
		gw.On("CreateOrder", int64(40000), "INR", mock.Anything).Return("order_123", nil)
		repo.On("CreateIfAvailable", mock.Anything, mock.MatchedBy(func(b *models.Booking) bool {
			return b.HouseID == "h1" &&
				b.BookingStatus == models.BookingStatusPending &&
				b.PaymentStatus == models.PaymentStatusUnpaid &&
				b.TotalGuests == 2
		})).Return(nil)

		res, err := newService(repo, houses, gw).CreateBooking(context.Background(), "u1", req)
		require.NoError(t, err)
		assert.Equal(t, 400.0, res.TotalAmount)
		assert.Equal(t, int64(40000), res.AmountPaise)
		assert.Equal(t, "order_123", res.OrderID)
		assert.NotEmpty(t, res.BookingID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown house", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		houses.On("GetByID", mock.Anything, "nope").Return(nil, houseRepo.ErrNotFound)

		r := req
		r.HouseID = "nope"
		_, err := newService(repo, houses, new(mockGateway)).CreateBooking(context.Background(), "u1", r)
		var nf *NotFoundError
		require.ErrorAs(t, err, &nf)
	})

	t.Run("inverted dates rejected before any write", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		houses.On("GetByID", mock.Anything, "h1").Return(testHouse(), nil)

		r := req
		r.CheckIn, r.CheckOut = r.CheckOut, r.CheckIn
		_, err := newService(repo, houses, new(mockGateway)).CreateBooking(context.Background(), "u1", r)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		repo.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
	})

	t.Run("overlap reported before payment order", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		gw := new(mockGateway)
		houses.On("GetByID", mock.Anything, "h1").Return(testHouse(), nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(true, nil)

		_, err := newService(repo, houses, gw).CreateBooking(context.Background(), "u1", req)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("payment order failure persists nothing", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		gw := new(mockGateway)
		houses.On("GetByID", mock.Anything, "h1").Return(testHouse(), nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(false, nil)
		gw.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("provider down"))

		_, err := newService(repo, houses, gw).CreateBooking(context.Background(), "u1", req)
		var perr *PaymentProviderError
		require.ErrorAs(t, err, &perr)
		repo.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
	})

	t.Run("interval taken during insert maps to conflict", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		gw := new(mockGateway)
		houses.On("GetByID", mock.Anything, "h1").Return(testHouse(), nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(false, nil)
		gw.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return("order_456", nil)
		repo.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(bookingRepo.ErrIntervalTaken)

		_, err := newService(repo, houses, gw).CreateBooking(context.Background(), "u1", req)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("capacity breach carries the category", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		houses.On("GetByID", mock.Anything, "h1").Return(testHouse(), nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(false, nil)

		r := req
		r.Guests = GuestCountsInput{Adults: intPtr(9)}
		_, err := newService(repo, houses, new(mockGateway)).CreateBooking(context.Background(), "u1", r)
		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, "adults", capErr.Category)
	})
}
