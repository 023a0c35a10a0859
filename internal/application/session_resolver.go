package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/ports"
)

// SessionResolver maps a user email (plus optional shop hint) to the shop
// and access token to act on. Resolution is read-only and uncached; every
// call re-queries the store.
type SessionResolver struct {
	onboardings ports.OnboardingRepository
	sessions    ports.SessionRepository
	logger      zerolog.Logger
}

// NewSessionResolver creates a new session resolver.
func NewSessionResolver(
	onboardings ports.OnboardingRepository,
	sessions ports.SessionRepository,
	logger zerolog.Logger,
) *SessionResolver {
	return &SessionResolver{
		onboardings: onboardings,
		sessions:    sessions,
		logger:      logger,
	}
}

// Resolve determines the shop for the email and retrieves its access token.
// Fails with domain.ErrNotOnboarded when no completed onboarding matches,
// and domain.ErrMissingToken when the shop has no usable session.
func (r *SessionResolver) Resolve(ctx context.Context, email, shopHint string) (*domain.StoreSession, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	var (
		onboarding *domain.Onboarding
		err        error
	)
	if shopHint != "" {
		onboarding, err = r.onboardings.FindCompleted(ctx, email, shopHint)
	} else {
		onboarding, err = r.onboardings.FindLatestCompleted(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up onboarding: %w", err)
	}

	shop := shopHint
	if shop == "" && onboarding != nil {
		shop = onboarding.Shop
	}
	if shop == "" || onboarding == nil {
		return nil, domain.ErrNotOnboarded
	}

	session, err := r.sessionForShop(ctx, shop, email)
	if err != nil {
		return nil, err
	}
	if session == nil || session.AccessToken == "" {
		return nil, domain.ErrMissingToken
	}

	return &domain.StoreSession{Shop: shop, AccessToken: session.AccessToken}, nil
}

// sessionForShop looks up a session by shop and email, falling back to any
// session for the shop. The fallback assumes a single tenant per shop.
func (r *SessionResolver) sessionForShop(ctx context.Context, shop, email string) (*domain.Session, error) {
	session, err := r.sessions.FindByShopAndEmail(ctx, shop, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session != nil {
		return session, nil
	}

	session, err = r.sessions.FindByShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	return session, nil
}
