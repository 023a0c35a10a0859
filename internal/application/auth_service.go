// Package application implements the dashboard business logic on top of
// the ports interfaces.
package application

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"merchant-dashboard-api/internal/domain"
	"merchant-dashboard-api/internal/ports"
)

// AuthService handles registration and login.
type AuthService struct {
	users       ports.UserRepository
	onboardings ports.OnboardingRepository
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(
	users ports.UserRepository,
	onboardings ports.OnboardingRepository,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		onboardings: onboardings,
		logger:      logger,
	}
}

// Register hashes the password and stores a new user. Fails with
// domain.ErrUserExists when the email is already registered.
func (s *AuthService) Register(ctx context.Context, email, password string) error {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("Registered new user")
	return nil
}

// LoginResult is what a successful login returns. Store is the most recent
// onboarded shop, surfaced for display only; it carries no authority.
type LoginResult struct {
	Email string `json:"email"`
	Store string `json:"store"`
}

// Login verifies the credentials. Unknown email and password mismatch both
// fail with domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	result := &LoginResult{Email: user.Email}

	// Surface the latest onboarded shop for the UI; missing onboarding is
	// not a login failure.
	onboarding, err := s.onboardings.FindLatestCompleted(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("Failed to look up onboarding on login")
	} else if onboarding != nil {
		result.Store = onboarding.Shop
	}

	return result, nil
}
