package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"
	"smartpass-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPassRepository stores boarding passes in MongoDB
type MongoPassRepository struct {
	collection *mongo.Collection
	logger     logger.Logger
}

// NewMongoPassRepository creates a new MongoDB pass repository
func NewMongoPassRepository(db *mongo.Database, logger logger.Logger) *MongoPassRepository {
	repo := &MongoPassRepository{
		collection: db.Collection("boarding_passes"),
		logger:     logger,
	}
	repo.ensureIndexes()
	return repo
}

func (r *MongoPassRepository) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pnr", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		r.logger.Warn("Failed to create pass indexes", "error", err)
	}
}

// Save inserts a new boarding pass document
func (r *MongoPassRepository) Save(ctx context.Context, pass *entity.BoardingPass) error {
	_, err := r.collection.InsertOne(ctx, pass)
	if err != nil {
		return fmt.Errorf("failed to insert boarding pass: %w", err)
	}

	r.logger.Info("Boarding pass saved", "passId", pass.ID, "flight", pass.Flight)
	return nil
}

// FindByID fetches one pass by its id
func (r *MongoPassRepository) FindByID(ctx context.Context, id string) (*entity.BoardingPass, error) {
	var pass entity.BoardingPass
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pass)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find boarding pass: %w", err)
	}
	return &pass, nil
}

// FindAll returns stored passes sorted newest first
func (r *MongoPassRepository) FindAll(ctx context.Context, limit int) ([]*entity.BoardingPass, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list boarding passes: %w", err)
	}
	defer cursor.Close(ctx)

	var passes []*entity.BoardingPass
	if err := cursor.All(ctx, &passes); err != nil {
		return nil, fmt.Errorf("failed to decode boarding passes: %w", err)
	}
	return passes, nil
}

// Delete removes a pass document by id
func (r *MongoPassRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete boarding pass: %w", err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
