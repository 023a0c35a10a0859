// Package repository implements the MongoDB persistence layer.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/infrastructure/repository/entity"
	"merchant-dashboard-api/internal/ports"
)

// MongoUserRepository implements UserRepository using MongoDB.
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB user repository and ensures
// the unique email index. Index creation failure is logged, not fatal; the
// duplicate check in the service layer still holds without it.
func NewMongoUserRepository(db *mongo.Database, logger zerolog.Logger) ports.UserRepository {
	r := &MongoUserRepository{
		collection: db.Collection("Users"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.Warn().Err(err).Msg("Failed to ensure unique email index")
	}

	return r
}

// FindByEmail retrieves a user by email.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc entity.UserDoc
	filter := bson.M{"email": email}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return doc.ToDomain(), nil
}

// Create inserts a new user.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) error {
	doc := entity.UserDocFromDomain(user)
	doc.UpdatedAt = time.Now()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
