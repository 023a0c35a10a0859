package application

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"merchant-dashboard-api/internal/domain"
)

func TestResolveLatestOnboarding(t *testing.T) {
	onboardings := &fakeOnboardingRepo{records: []*domain.Onboarding{
		{Shop: "new.myshopify.com", AdminEmail: "a@example.com", Completed: true},
		{Shop: "old.myshopify.com", AdminEmail: "a@example.com", Completed: true},
	}}
	sessions := &fakeSessionRepo{sessions: []*domain.Session{
		{Shop: "new.myshopify.com", Email: "a@example.com", AccessToken: "tok-new"},
	}}
	resolver := NewSessionResolver(onboardings, sessions, zerolog.Nop())

	got, err := resolver.Resolve(context.Background(), "a@example.com", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Shop != "new.myshopify.com" || got.AccessToken != "tok-new" {
		t.Errorf("resolved %q/%q, want latest onboarded shop", got.Shop, got.AccessToken)
	}
}

func TestResolveShopHint(t *testing.T) {
	onboardings := &fakeOnboardingRepo{records: []*domain.Onboarding{
		{Shop: "new.myshopify.com", AdminEmail: "a@example.com", Completed: true},
		{Shop: "old.myshopify.com", AdminEmail: "a@example.com", Completed: true},
	}}
	sessions := &fakeSessionRepo{sessions: []*domain.Session{
		{Shop: "old.myshopify.com", Email: "a@example.com", AccessToken: "tok-old"},
	}}
	resolver := NewSessionResolver(onboardings, sessions, zerolog.Nop())

	got, err := resolver.Resolve(context.Background(), "a@example.com", "old.myshopify.com")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.Shop != "old.myshopify.com" || got.AccessToken != "tok-old" {
		t.Errorf("resolved %q/%q, want hinted shop", got.Shop, got.AccessToken)
	}
}

func TestResolveSessionFallbackToShopOnly(t *testing.T) {
	onboardings := &fakeOnboardingRepo{records: []*domain.Onboarding{
		{Shop: "shared.myshopify.com", AdminEmail: "a@example.com", Completed: true},
	}}
	// The session belongs to a different email on the same shop.
	sessions := &fakeSessionRepo{sessions: []*domain.Session{
		{Shop: "shared.myshopify.com", Email: "installer@example.com", AccessToken: "tok-shared"},
	}}
	resolver := NewSessionResolver(onboardings, sessions, zerolog.Nop())

	got, err := resolver.Resolve(context.Background(), "a@example.com", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.AccessToken != "tok-shared" {
		t.Errorf("token = %q, want the shop-wide session", got.AccessToken)
	}
}

func TestResolveNotOnboarded(t *testing.T) {
	resolver := NewSessionResolver(&fakeOnboardingRepo{}, &fakeSessionRepo{}, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "a@example.com", "")
	if !errors.Is(err, domain.ErrNotOnboarded) {
		t.Fatalf("err = %v, want ErrNotOnboarded", err)
	}
}

func TestResolveIncompleteOnboardingIgnored(t *testing.T) {
	onboardings := &fakeOnboardingRepo{records: []*domain.Onboarding{
		{Shop: "wip.myshopify.com", AdminEmail: "a@example.com", Completed: false},
	}}
	resolver := NewSessionResolver(onboardings, &fakeSessionRepo{}, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "a@example.com", "")
	if !errors.Is(err, domain.ErrNotOnboarded) {
		t.Fatalf("err = %v, want ErrNotOnboarded", err)
	}
}

func TestResolveMissingToken(t *testing.T) {
	onboardings := &fakeOnboardingRepo{records: []*domain.Onboarding{
		{Shop: "shop.myshopify.com", AdminEmail: "a@example.com", Completed: true},
	}}

	tests := []struct {
		name     string
		sessions []*domain.Session
	}{
		{name: "no session at all"},
		{
			name: "session with empty token",
			sessions: []*domain.Session{
				{Shop: "shop.myshopify.com", Email: "a@example.com", AccessToken: ""},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolver := NewSessionResolver(onboardings, &fakeSessionRepo{sessions: tc.sessions}, zerolog.Nop())
			_, err := resolver.Resolve(context.Background(), "a@example.com", "")
			if !errors.Is(err, domain.ErrMissingToken) {
				t.Fatalf("err = %v, want ErrMissingToken", err)
			}
		})
	}
}

func TestResolveEmptyEmail(t *testing.T) {
	resolver := NewSessionResolver(&fakeOnboardingRepo{}, &fakeSessionRepo{}, zerolog.Nop())
	if _, err := resolver.Resolve(context.Background(), "", ""); err == nil {
		t.Fatal("want error for empty email")
	}
}

func TestResolveRepositoryError(t *testing.T) {
	onboardings := &fakeOnboardingRepo{err: errors.New("db down")}
	resolver := NewSessionResolver(onboardings, &fakeSessionRepo{}, zerolog.Nop())

	_, err := resolver.Resolve(context.Background(), "a@example.com", "")
	if err == nil || errors.Is(err, domain.ErrNotOnboarded) {
		t.Fatalf("err = %v, want wrapped repository error", err)
	}
}
