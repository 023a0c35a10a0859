package application

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"merchant-dashboard-api/internal/domain"
)

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, &fakeOnboardingRepo{}, zerolog.Nop())

	if err := svc.Register(context.Background(), "a@example.com", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	created := users.users["a@example.com"]
	if created == nil {
		t.Fatal("user was not created")
	}
	if created.PasswordHash == "secret" {
		t.Error("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestRegisterExistingUser(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Email: "a@example.com", PasswordHash: "x"})
	svc := NewAuthService(users, &fakeOnboardingRepo{}, zerolog.Nop())

	err := svc.Register(context.Background(), "a@example.com", "secret")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		Email:        "a@example.com",
		PasswordHash: hashOf(t, "secret"),
	})
	onboardings := &fakeOnboardingRepo{records: []*domain.Onboarding{
		{Shop: "shop.myshopify.com", AdminEmail: "a@example.com", Completed: true},
	}}
	svc := NewAuthService(users, onboardings, zerolog.Nop())

	result, err := svc.Login(context.Background(), "a@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Email != "a@example.com" {
		t.Errorf("email = %q", result.Email)
	}
	if result.Store != "shop.myshopify.com" {
		t.Errorf("store = %q, want latest onboarded shop", result.Store)
	}
}

func TestLoginWithoutOnboarding(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		Email:        "a@example.com",
		PasswordHash: hashOf(t, "secret"),
	})
	svc := NewAuthService(users, &fakeOnboardingRepo{}, zerolog.Nop())

	result, err := svc.Login(context.Background(), "a@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Store != "" {
		t.Errorf("store = %q, want empty without onboarding", result.Store)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		Email:        "a@example.com",
		PasswordHash: hashOf(t, "secret"),
	})
	svc := NewAuthService(users, &fakeOnboardingRepo{}, zerolog.Nop())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "unknown email", email: "b@example.com", password: "secret"},
		{name: "wrong password", email: "a@example.com", password: "nope"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.email, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("err = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLoginOnboardingLookupFailureIsNotFatal(t *testing.T) {
	users := newFakeUserRepo(&domain.User{
		Email:        "a@example.com",
		PasswordHash: hashOf(t, "secret"),
	})
	onboardings := &fakeOnboardingRepo{err: errors.New("db down")}
	svc := NewAuthService(users, onboardings, zerolog.Nop())

	result, err := svc.Login(context.Background(), "a@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.Store != "" {
		t.Errorf("store = %q, want empty on lookup failure", result.Store)
	}
}
