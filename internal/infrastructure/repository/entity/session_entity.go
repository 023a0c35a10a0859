package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merchant-dashboard-api/internal/domain"
)

// SessionDoc represents an install-flow session record in MongoDB. The
// install flow writes many more fields than the dashboard reads; only the
// ones session resolution needs are mapped.
type SessionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SessionID   string             `bson:"id,omitempty"`
	Shop        string             `bson:"shop"`
	State       string             `bson:"state,omitempty"`
	IsOnline    bool               `bson:"isOnline,omitempty"`
	Scope       string             `bson:"scope,omitempty"`
	Expires     *time.Time         `bson:"expires,omitempty"`
	AccessToken string             `bson:"accessToken,omitempty"`
	Email       string             `bson:"email,omitempty"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *SessionDoc) ToDomain() *domain.Session {
	return &domain.Session{
		ID:          d.ID.Hex(),
		Shop:        d.Shop,
		State:       d.State,
		IsOnline:    d.IsOnline,
		Scope:       d.Scope,
		Expires:     d.Expires,
		AccessToken: d.AccessToken,
		Email:       d.Email,
	}
}
