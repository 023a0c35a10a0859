package entity

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"merchant-dashboard-api/internal/domain"
)

// UserDoc represents a user in MongoDB. Two generations of store linkage
// exist in the collection: a legacy single-shop string and the current
// stores field, which itself may be a bson array or a JSON-encoded string.
// All of them normalize into domain.User.Stores here, so nothing downstream
// ever sniffs formats.
type UserDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"passwordHash"`
	Store        string             `bson:"store,omitempty"`
	Stores       interface{}        `bson:"stores,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// ToDomain converts the MongoDB document to a domain entity.
func (d *UserDoc) ToDomain() *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Stores:       normalizeStores(d.Stores, d.Store),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// UserDocFromDomain converts a domain entity to a MongoDB document. New
// documents always carry the current array format.
func UserDocFromDomain(user *domain.User) *UserDoc {
	doc := &UserDoc{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if len(user.Stores) > 0 {
		doc.Stores = user.Stores
	}

	if user.ID != "" {
		if objID, err := primitive.ObjectIDFromHex(user.ID); err == nil {
			doc.ID = objID
		}
	}

	return doc
}

// normalizeStores folds the three historical store-linkage formats into a
// plain slice: bson array, JSON-encoded string array, then the legacy
// single-shop field. Unparseable values fall through to the legacy field.
func normalizeStores(stores interface{}, legacyStore string) []string {
	var out []string

	switch v := stores.(type) {
	case nil:
	case []string:
		out = appendNonEmpty(out, v...)
	case primitive.A:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = appendNonEmpty(out, s)
			}
		}
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = appendNonEmpty(out, s)
			}
		}
	case string:
		var parsed []string
		if err := json.Unmarshal([]byte(v), &parsed); err == nil {
			out = appendNonEmpty(out, parsed...)
		}
	}

	if len(out) == 0 && legacyStore != "" {
		out = []string{legacyStore}
	}

	return out
}

func appendNonEmpty(dst []string, values ...string) []string {
	for _, v := range values {
		if v != "" {
			dst = append(dst, v)
		}
	}
	return dst
}
