package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/yuhyam95/meenos-menu/internal/domain"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DeliveryLocationRepository struct {
	collection *mongo.Collection
}

func NewDeliveryLocationRepository(db *mongo.Database) *DeliveryLocationRepository {
	return &DeliveryLocationRepository{
		collection: db.Collection("delivery_locations"),
	}
}

func (r *DeliveryLocationRepository) Create(ctx context.Context, location *domain.DeliveryLocation) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if location.ID.IsZero() {
		location.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to create delivery location: %w", err)
	}

	return nil
}

func (r *DeliveryLocationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.DeliveryLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var location domain.DeliveryLocation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&location)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get delivery location: %w", err)
	}

	return &location, nil
}

func (r *DeliveryLocationRepository) List(ctx context.Context) ([]domain.DeliveryLocation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery locations: %w", err)
	}
	defer cursor.Close(ctx)

	locations := []domain.DeliveryLocation{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode delivery locations: %w", err)
	}

	return locations, nil
}

func (r *DeliveryLocationRepository) Update(ctx context.Context, location *domain.DeliveryLocation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"name":  location.Name,
			"price": location.Price,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": location.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update delivery location: %w", err)
	}

	if result.MatchedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *DeliveryLocationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete delivery location: %w", err)
	}

	if result.DeletedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}
