package domain

import "errors"

// Sentinel errors for the auth and session-resolution paths. Handlers map
// these onto HTTP statuses; everything else surfaces as a 500.
var (
	// ErrUserExists indicates a registration attempt with an email that is
	// already taken.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound indicates a data fetch for an email with no Users
	// record.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and password mismatch
	// on login, so the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoLinkedStores indicates a registered user with no stores on the
	// record and no completed onboarding to fall back to.
	ErrNoLinkedStores = errors.New("no stores linked to this user")

	// ErrNotOnboarded indicates session resolution found no completed
	// onboarding record for the email (and shop hint, when given).
	ErrNotOnboarded = errors.New("onboarded store not found for this email")

	// ErrMissingToken indicates the resolved shop has no session or a
	// session without an access token.
	ErrMissingToken = errors.New("token missing; install the Shopify app to access data")
)

// UserError is a user-correctable validation error reported by the provider
// inside a mutation payload (Shopify userErrors). Handlers surface its
// message with a 400.
type UserError struct {
	Field   []string
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}
