package reviewRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stayhaven/database"
	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicate is returned when a review already references the booking.
var ErrDuplicate = errors.New("review already submitted for this booking")

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForBooking(ctx context.Context, bookingID string) (bool, error)
	ListByHouse(ctx context.Context, houseID string) ([]models.Review, error)
}

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes enforces the one-review-per-stay rule at the store level:
// the unique index on booking_id rejects a concurrent duplicate insert.
func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "house_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, review)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ExistsForBooking reports whether a review already references the booking.
func (r *MongoReviewRepo) ExistsForBooking(ctx context.Context, bookingID string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return false, fmt.Errorf("failed to check review for booking %s: %w", bookingID, err)
	}
	return count > 0, nil
}

// ListByHouse returns all reviews for a house, newest first.
func (r *MongoReviewRepo) ListByHouse(ctx context.Context, houseID string) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"house_id": houseID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for house %s: %w", houseID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews for house %s: %w", houseID, err)
	}
	return reviews, nil
}
