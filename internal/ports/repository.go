package ports

import (
	"context"

	"merchant-dashboard-api/internal/domain"
)

// UserRepository defines the interface for user persistence. Users is the
// only collection this system writes.
type UserRepository interface {
	// FindByEmail returns the user for an email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create inserts a new user record.
	Create(ctx context.Context, user *domain.User) error
}

// OnboardingRepository reads the install-flow onboarding records. All
// lookups are restricted to completed records.
type OnboardingRepository interface {
	// FindCompleted returns the completed onboarding for an email and shop,
	// or nil when absent.
	FindCompleted(ctx context.Context, adminEmail, shop string) (*domain.Onboarding, error)

	// FindLatestCompleted returns the most-recently-updated completed
	// onboarding for an email, or nil when absent.
	FindLatestCompleted(ctx context.Context, adminEmail string) (*domain.Onboarding, error)

	// ListCompleted returns all completed onboardings for an email, newest
	// first.
	ListCompleted(ctx context.Context, adminEmail string) ([]*domain.Onboarding, error)
}

// SessionRepository reads the install-flow session records holding access
// tokens.
type SessionRepository interface {
	// FindByShopAndEmail returns the session for a shop and email, or nil
	// when absent.
	FindByShopAndEmail(ctx context.Context, shop, email string) (*domain.Session, error)

	// FindByShop returns any session for a shop regardless of email, or nil
	// when absent.
	FindByShop(ctx context.Context, shop string) (*domain.Session, error)
}
