package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merchant-dashboard-api/internal/domain"
)

// OnboardingDoc represents an install-flow onboarding record in MongoDB.
type OnboardingDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Shop       string             `bson:"shop"`
	AdminEmail string             `bson:"adminEmail"`
	Completed  bool               `bson:"completed"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *OnboardingDoc) ToDomain() *domain.Onboarding {
	return &domain.Onboarding{
		ID:         d.ID.Hex(),
		Shop:       d.Shop,
		AdminEmail: d.AdminEmail,
		Completed:  d.Completed,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}
