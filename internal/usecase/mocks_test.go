package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"jobtrail/internal/domain/application"
	"jobtrail/internal/domain/document"
	"jobtrail/internal/domain/user"
	"jobtrail/internal/infrastructure/oauth"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

type fakeAppRepo struct {
	items map[uuid.UUID]application.Application
	err   error
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{items: map[uuid.UUID]application.Application{}}
}

func (r *fakeAppRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]application.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]application.Application, 0)
	for _, a := range r.items {
		if a.UserID == userID && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) GetByID(_ context.Context, id, userID uuid.UUID) (application.Application, error) {
	if r.err != nil {
		return application.Application{}, r.err
	}
	a, ok := r.items[id]
	if !ok || a.UserID != userID {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *fakeAppRepo) Create(_ context.Context, a application.Application) error {
	if r.err != nil {
		return r.err
	}
	r.items[a.ID] = a
	return nil
}

func (r *fakeAppRepo) Update(_ context.Context, a application.Application) error {
	if r.err != nil {
		return r.err
	}
	existing, ok := r.items[a.ID]
	if !ok || existing.UserID != a.UserID {
		return application.ErrNotFound
	}
	r.items[a.ID] = a
	return nil
}

func (r *fakeAppRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	a, ok := r.items[id]
	if !ok || a.UserID != userID {
		return application.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeDocRepo struct {
	created []document.Document
	err     error
}

func (r *fakeDocRepo) Create(_ context.Context, d document.Document) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, d)
	return nil
}

func (r *fakeDocRepo) ListByApplication(_ context.Context, applicationID, userID uuid.UUID, limit int) ([]document.Document, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]document.Document, 0)
	for _, d := range r.created {
		if d.ApplicationID == applicationID && d.UserID == userID && len(out) < limit {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]user.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]user.Profile{}}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p user.Profile) error {
	r.profiles[p.UserID] = p
	return nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p user.Profile) error {
	if _, ok := r.profiles[p.UserID]; !ok {
		return user.ErrProfileNotFound
	}
	r.profiles[p.UserID] = p
	return nil
}

type fakeProvider struct {
	info oauth.UserInfo
	err  error
}

func (p fakeProvider) LoginURL(state string) string {
	return "https://provider.test/authorize?state=" + state
}

func (p fakeProvider) ExchangeCode(context.Context, string) (oauth.UserInfo, error) {
	if p.err != nil {
		return oauth.UserInfo{}, p.err
	}
	return p.info, nil
}

type fakeLLM struct {
	reply string
	err   error

	calls   int
	lastSys string
	lastMsg string
}

func (c *fakeLLM) Complete(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	c.calls++
	c.lastSys = systemPrompt
	c.lastMsg = userPrompt
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

var errBoom = errors.New("boom")
