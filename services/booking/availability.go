package booking

import (
	"context"
	"time"

	houseRepo "stayhaven/database/repository/house"
	"stayhaven/models"
)

// withinOpenWindows reports whether [checkIn, checkOut) lies fully
// inside at least one of the house's declared open windows. A house
// with no windows declared is open year-round.
func withinOpenWindows(house *models.House, checkIn, checkOut time.Time) bool {
	if len(house.Availability) == 0 {
		return true
	}
	for _, w := range house.Availability {
		if !checkIn.Before(w.From) && !checkOut.After(w.To) {
			return true
		}
	}
	return false
}

// CheckAvailability reports whether the house can host the given range:
// the range must be well-formed, fall inside an open window, and not
// intersect any unresolved booking. The result is advisory; creation
// re-validates under a transaction.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, houseID string, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	if !checkOut.After(checkIn) {
		return nil, &ValidationError{Message: "check-out date must be after check-in date"}
	}

	house, err := s.HouseRepo.GetByID(ctx, houseID)
	if err == houseRepo.ErrNotFound {
		return nil, &NotFoundError{Resource: "house", ID: houseID}
	}
	if err != nil {
		return nil, err
	}

	if !withinOpenWindows(house, checkIn, checkOut) {
		return &AvailabilityResult{Available: false, Reason: "house is not open for these dates"}, nil
	}

	overlap, err := s.Repo.HasOverlap(ctx, houseID, checkIn, checkOut, "")
	if err != nil {
		return nil, err
	}
	if overlap {
		return &AvailabilityResult{Available: false, Reason: "house not available for these dates"}, nil
	}
	return &AvailabilityResult{Available: true}, nil
}
