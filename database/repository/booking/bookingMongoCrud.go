package bookingRepo

import (
	"context"
	"fmt"

	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// ListByUser returns all bookings made by the given user, newest first.
func (r *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListAll returns every booking, newest first. Admin surface only.
func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// LatestForUserAndHouse returns the booking with the most recent
// checkout for the (user, house) pair.
func (r *MongoBookingRepo) LatestForUserAndHouse(ctx context.Context, userID, houseID string) (*models.Booking, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "check_out", Value: -1}})
	filter := bson.M{"user_id": userID, "house_id": houseID}

	var booking models.Booking
	err := r.coll.FindOne(ctx, filter, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest booking for user %s on house %s: %w", userID, houseID, err)
	}
	return &booking, nil
}
