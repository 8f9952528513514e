package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrail/internal/domain/user"
	"jobtrail/internal/infrastructure/oauth"
	"jobtrail/internal/session"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidSession   = errors.New("invalid session")
	ErrSessionExpired   = errors.New("session expired")
)

type AuthUsecase interface {
	LoginURL() (string, error)
	CompleteLogin(ctx context.Context, state, code string) (user.User, string, error)
	Authenticate(ctx context.Context, token string) (user.User, error)
	Logout(ctx context.Context, token string) error
}

type AuthService struct {
	users    user.Repository
	sessions session.Store
	provider oauth.Provider
	states   *oauth.StateSigner
	ttl      time.Duration

	now func() time.Time
}

func NewAuthService(users user.Repository, sessions session.Store, provider oauth.Provider, states *oauth.StateSigner, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		provider: provider,
		states:   states,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *AuthService) LoginURL() (string, error) {
	state, err := s.states.Sign()
	if err != nil {
		return "", err
	}
	return s.provider.LoginURL(state), nil
}

// CompleteLogin exchanges the authorization result for an identity, looks
// the user up by email (creating one on first login) and issues a fresh
// session token. Email is the only identity-merge key in the system.
func (s *AuthService) CompleteLogin(ctx context.Context, state, code string) (user.User, string, error) {
	if err := s.states.Verify(state); err != nil {
		return user.User{}, "", err
	}

	info, err := s.provider.ExchangeCode(ctx, code)
	if err != nil {
		return user.User{}, "", err
	}

	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" {
		return user.User{}, "", errors.New("provider returned no email")
	}

	usr, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		usr = user.User{
			ID:        uuid.New(),
			Email:     email,
			Name:      info.Name,
			CreatedAt: s.now().UTC(),
		}
		if info.Picture != "" {
			pic := info.Picture
			usr.Picture = &pic
		}
		if err := s.users.Create(ctx, usr); err != nil {
			return user.User{}, "", err
		}
	} else if err != nil {
		return user.User{}, "", err
	}

	sess := session.Session{
		Token:     session.NewToken(),
		UserID:    usr.ID,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return user.User{}, "", err
	}

	return usr, sess.Token, nil
}

// Authenticate resolves a bearer token to its user. An expired entry is
// deleted on the way out, so a retried token fails as unknown rather than
// expired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (user.User, error) {
	if strings.TrimSpace(token) == "" {
		return user.User{}, ErrNotAuthenticated
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return user.User{}, ErrInvalidSession
		}
		return user.User{}, err
	}

	if sess.Expired(s.now().UTC()) {
		_ = s.sessions.Delete(ctx, token)
		return user.User{}, ErrSessionExpired
	}

	usr, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidSession
		}
		return user.User{}, err
	}
	return usr, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

var _ AuthUsecase = (*AuthService)(nil)
