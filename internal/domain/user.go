package domain

import "time"

// User is a registered dashboard user. Stores holds the Shopify shop domains
// linked to the account; legacy records kept a single shop in a separate
// string field, so repositories normalize every stored format into this
// slice at load time.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Stores       []string  `json:"stores"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
