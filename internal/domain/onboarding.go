package domain

import "time"

// Onboarding records that an admin email completed the external install flow
// for a shop. Read-only to this system; the completed flag gates every
// lookup.
type Onboarding struct {
	ID         string    `json:"id"`
	Shop       string    `json:"shop"`
	AdminEmail string    `json:"admin_email"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
