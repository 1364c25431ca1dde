package houseRepo

import (
	"context"
	"fmt"
	"time"

	"stayhaven/database"
	"stayhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoHouseRepo implements HouseRepository using MongoDB.
type MongoHouseRepo struct {
	coll *mongo.Collection
}

// NewMongoHouseRepo creates a new instance of HouseRepository using MongoDB.
func NewMongoHouseRepo() HouseRepository {
	coll := database.Collection("houses")
	repo := &MongoHouseRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create house indexes: %v\n", err)
	}
	return repo
}

func (r *MongoHouseRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a house by its unique ID.
func (r *MongoHouseRepo) GetByID(ctx context.Context, id string) (*models.House, error) {
	var house models.House
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&house)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch house %s: %w", id, err)
	}
	return &house, nil
}

// List returns all houses, newest first.
func (r *MongoHouseRepo) List(ctx context.Context) ([]models.House, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	defer cursor.Close(ctx)

	var houses []models.House
	if err := cursor.All(ctx, &houses); err != nil {
		return nil, fmt.Errorf("failed to decode houses: %w", err)
	}
	return houses, nil
}

// ApplyReviewRating folds a rating into the aggregates with a pipeline
// update so the average stays consistent with sum and count.
func (r *MongoHouseRepo) ApplyReviewRating(ctx context.Context, houseID string, rating int) error {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "rating_sum", Value: bson.D{{Key: "$add", Value: bson.A{"$rating_sum", rating}}}},
			{Key: "rating_count", Value: bson.D{{Key: "$add", Value: bson.A{"$rating_count", 1}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "rating_avg", Value: bson.D{{Key: "$round", Value: bson.A{
				bson.D{{Key: "$divide", Value: bson.A{"$rating_sum", "$rating_count"}}},
				1,
			}}}},
			{Key: "updated_at", Value: time.Now()},
		}}},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": houseID}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to apply rating to house %s: %w", houseID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddImageGroup appends an uploaded image group to the house document.
func (r *MongoHouseRepo) AddImageGroup(ctx context.Context, houseID string, group models.ImageGroup) error {
	update := bson.M{
		"$push": bson.M{"images": group},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": houseID}, update)
	if err != nil {
		return fmt.Errorf("failed to add image group to house %s: %w", houseID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveImageURL pulls the URL out of all image groups on the house.
func (r *MongoHouseRepo) RemoveImageURL(ctx context.Context, houseID, url string) error {
	update := bson.M{
		"$pull": bson.M{"images.$[].urls": url},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": houseID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove image url from house %s: %w", houseID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
