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

func TestWithinOpenWindows(t *testing.T) {
	windowed := &models.House{
		Availability: []models.DateWindow{
			{From: day(1), To: day(10)},
			{From: day(20), To: day(28)},
		},
	}
	open := &models.House{}

	tests := []struct {
		name     string
		house    *models.House
		checkIn  int
		checkOut int
		want     bool
	}{
		{"no windows means always open", open, 1, 30, true},
		{"inside first window", windowed, 2, 5, true},
		{"exactly fills a window", windowed, 1, 10, true},
		{"spans the gap between windows", windowed, 8, 22, false},
		{"starts before window opens", windowed, 19, 25, false},
		{"entirely outside", windowed, 12, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withinOpenWindows(tt.house, day(tt.checkIn), day(tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	house := &models.House{ID: "h1", PricePerNight: 100}

	t.Run("open range with no overlap is available", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		houses.On("GetByID", mock.Anything, "h1").Return(house, nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(false, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		res, err := svc.CheckAvailability(context.Background(), "h1", day(1), day(3))
		require.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("overlapping booking blocks the range", func(t *testing.T) {
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		houses.On("GetByID", mock.Anything, "h1").Return(house, nil)
		repo.On("HasOverlap", mock.Anything, "h1", day(1), day(3), "").Return(true, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		res, err := svc.CheckAvailability(context.Background(), "h1", day(1), day(3))
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.NotEmpty(t, res.Reason)
	})

	t.Run("inverted range is a validation error", func(t *testing.T) {
		svc := &DefaultBookingService{Logger: zap.NewNop()}
		_, err := svc.CheckAvailability(context.Background(), "h1", day(3), day(1))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("closed season reports unavailable without touching bookings", func(t *testing.T) {
		seasonal := &models.House{
			ID:           "h2",
			Availability: []models.DateWindow{{From: day(10), To: day(20)}},
		}
		repo := new(mockBookingRepo)
		houses := new(mockHouseRepo)
		houses.On("GetByID", mock.Anything, "h2").Return(seasonal, nil)

		svc := &DefaultBookingService{Repo: repo, HouseRepo: houses, Logger: zap.NewNop()}
		res, err := svc.CheckAvailability(context.Background(), "h2", day(1), day(3))
		require.NoError(t, err)
		assert.False(t, res.Available)
		repo.AssertNotCalled(t, "HasOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
