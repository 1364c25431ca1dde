package houseRepo

import (
	"context"
	"errors"

	"stayhaven/models"
)

// ErrNotFound is returned when no house matches the given id.
var ErrNotFound = errors.New("house not found")

// HouseRepository is the read-side contract the booking engine needs
// from the listing store, plus the rating aggregate write the review
// flow performs. Listing management itself lives with the admin surface.
type HouseRepository interface {
	GetByID(ctx context.Context, id string) (*models.House, error)
	List(ctx context.Context) ([]models.House, error)

	// ApplyReviewRating folds a new review rating into the house's
	// aggregates (sum, count, average) in one atomic update.
	ApplyReviewRating(ctx context.Context, houseID string, rating int) error

	// AddImageGroup appends uploaded image URLs under the given group type.
	AddImageGroup(ctx context.Context, houseID string, group models.ImageGroup) error

	// RemoveImageURL detaches a stored image URL from every image group
	// on the house.
	RemoveImageURL(ctx context.Context, houseID, url string) error
}
