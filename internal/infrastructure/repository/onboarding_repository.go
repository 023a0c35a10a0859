package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/infrastructure/repository/entity"
	"merchant-dashboard-api/internal/ports"
)

// MongoOnboardingRepository implements OnboardingRepository using MongoDB.
// The collection is owned by the external install flow; this repository is
// read-only.
type MongoOnboardingRepository struct {
	collection *mongo.Collection
}

// NewMongoOnboardingRepository creates a new MongoDB onboarding repository.
func NewMongoOnboardingRepository(db *mongo.Database) ports.OnboardingRepository {
	return &MongoOnboardingRepository{
		collection: db.Collection("Onboarding"),
	}
}

// FindCompleted retrieves the completed onboarding for an email and shop.
func (r *MongoOnboardingRepository) FindCompleted(ctx context.Context, adminEmail, shop string) (*domain.Onboarding, error) {
	var doc entity.OnboardingDoc
	filter := bson.M{
		"adminEmail": adminEmail,
		"shop":       shop,
		"completed":  true,
	}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding: %w", err)
	}

	return doc.ToDomain(), nil
}

// FindLatestCompleted retrieves the most-recently-updated completed
// onboarding for an email.
func (r *MongoOnboardingRepository) FindLatestCompleted(ctx context.Context, adminEmail string) (*domain.Onboarding, error) {
	var doc entity.OnboardingDoc
	filter := bson.M{
		"adminEmail": adminEmail,
		"completed":  true,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	err := r.collection.FindOne(ctx, filter, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get onboarding: %w", err)
	}

	return doc.ToDomain(), nil
}

// ListCompleted retrieves all completed onboardings for an email, newest
// first.
func (r *MongoOnboardingRepository) ListCompleted(ctx context.Context, adminEmail string) ([]*domain.Onboarding, error) {
	filter := bson.M{
		"adminEmail": adminEmail,
		"completed":  true,
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboardings: %w", err)
	}
	defer cursor.Close(ctx)

	var onboardings []*domain.Onboarding
	for cursor.Next(ctx) {
		var doc entity.OnboardingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode onboarding: %w", err)
		}
		onboardings = append(onboardings, doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return onboardings, nil
}
