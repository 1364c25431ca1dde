package userRepo

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

// ErrNotFound is returned when no user matches the given id.
var ErrNotFound = errors.New("user not found")

// UserRepository is the read-side contract on the identity store, plus
// the push-token bookkeeping the notification dispatcher needs.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetFCMTokens(ctx context.Context, id string) ([]string, error)
	AddFCMToken(ctx context.Context, id, token string) error
	RemoveFCMToken(ctx context.Context, token string) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return &user, nil
}

// GetFCMTokens returns the user's registered push targets.
func (r *MongoUserRepo) GetFCMTokens(ctx context.Context, id string) ([]string, error) {
	opts := options.FindOne().SetProjection(bson.M{"fcm_tokens": 1})

	var user models.User
	err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch FCM tokens for user %s: %w", id, err)
	}
	return user.FCMTokens, nil
}

// AddFCMToken registers a push token for the user. $addToSet keeps
// re-registrations from the same device idempotent.
func (r *MongoUserRepo) AddFCMToken(ctx context.Context, id, token string) error {
	update := bson.M{
		"$addToSet": bson.M{"fcm_tokens": token},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to add FCM token for user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveFCMToken strips an invalid token from whichever user holds it.
func (r *MongoUserRepo) RemoveFCMToken(ctx context.Context, token string) error {
	update := bson.M{
		"$pull": bson.M{"fcm_tokens": token},
	}
	if _, err := r.coll.UpdateMany(ctx, bson.M{"fcm_tokens": token}, update); err != nil {
		return fmt.Errorf("failed to remove FCM token: %w", err)
	}
	return nil
}
