package application

import (
	"context"
	"encoding/json"
	"fmt"

	"merchant-dashboard-api/internal/domain"
)

type fakeUserRepo struct {
	users     map[string]*domain.User
	findErr   error
	createErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.Email] = user
	return nil
}

// fakeOnboardingRepo holds records newest first, matching the sort the
// repository applies.
type fakeOnboardingRepo struct {
	records []*domain.Onboarding
	err     error
}

func (f *fakeOnboardingRepo) FindCompleted(_ context.Context, email, shop string) (*domain.Onboarding, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.records {
		if o.Completed && o.AdminEmail == email && o.Shop == shop {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOnboardingRepo) FindLatestCompleted(_ context.Context, email string) (*domain.Onboarding, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range f.records {
		if o.Completed && o.AdminEmail == email {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOnboardingRepo) ListCompleted(_ context.Context, email string) ([]*domain.Onboarding, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Onboarding
	for _, o := range f.records {
		if o.Completed && o.AdminEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions []*domain.Session
	err      error
}

func (f *fakeSessionRepo) FindByShopAndEmail(_ context.Context, shop, email string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.Shop == shop && s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindByShop(_ context.Context, shop string) (*domain.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.Shop == shop {
			return s, nil
		}
	}
	return nil, nil
}

type capturedMutation struct {
	Shop        string
	AccessToken string
	Document    string
	Variables   map[string]any
}

// fakeAdminClient serves canned JSON payloads per document and records
// every mutation it receives.
type fakeAdminClient struct {
	queryPayloads  map[string]string
	queryErrs      map[string]error
	mutatePayloads map[string]string
	mutateErr      error
	mutations      []capturedMutation
}

func newFakeAdminClient() *fakeAdminClient {
	return &fakeAdminClient{
		queryPayloads:  make(map[string]string),
		queryErrs:      make(map[string]error),
		mutatePayloads: make(map[string]string),
	}
}

func (f *fakeAdminClient) Query(_ context.Context, shop, _ string, query string, out any) error {
	if err := f.queryErrs[query]; err != nil {
		return err
	}
	payload, ok := f.queryPayloads[query]
	if !ok {
		return fmt.Errorf("no payload configured for query on %s", shop)
	}
	return json.Unmarshal([]byte(payload), out)
}

func (f *fakeAdminClient) Mutate(_ context.Context, shop, accessToken, mutation string, variables map[string]any, out any) error {
	f.mutations = append(f.mutations, capturedMutation{
		Shop:        shop,
		AccessToken: accessToken,
		Document:    mutation,
		Variables:   variables,
	})
	if f.mutateErr != nil {
		return f.mutateErr
	}
	if payload, ok := f.mutatePayloads[mutation]; ok {
		return json.Unmarshal([]byte(payload), out)
	}
	return nil
}
