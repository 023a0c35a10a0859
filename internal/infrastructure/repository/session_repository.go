package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/infrastructure/repository/entity"
	"merchant-dashboard-api/internal/ports"
)

// MongoSessionRepository implements SessionRepository using MongoDB. The
// collection is owned by the external install flow; this repository is
// read-only.
type MongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new MongoDB session repository.
func NewMongoSessionRepository(db *mongo.Database) ports.SessionRepository {
	return &MongoSessionRepository{
		collection: db.Collection("Session"),
	}
}

// FindByShopAndEmail retrieves the session for a shop and email.
func (r *MongoSessionRepository) FindByShopAndEmail(ctx context.Context, shop, email string) (*domain.Session, error) {
	return r.findOne(ctx, bson.M{"shop": shop, "email": email})
}

// FindByShop retrieves any session for a shop regardless of email.
func (r *MongoSessionRepository) FindByShop(ctx context.Context, shop string) (*domain.Session, error) {
	return r.findOne(ctx, bson.M{"shop": shop})
}

func (r *MongoSessionRepository) findOne(ctx context.Context, filter bson.M) (*domain.Session, error) {
	var doc entity.SessionDoc

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return doc.ToDomain(), nil
}
