package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryStore_PutGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := Session{
		Token:     NewToken(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := store.Put(ctx, s); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, s.Token)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != s.UserID {
		t.Fatalf("wrong user id: got %s want %s", got.UserID, s.UserID)
	}

	if err := store.Delete(ctx, s.Token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, s.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_DeleteUnknownTokenIsNoop(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Delete(context.Background(), "nope"); err != nil {
		t.Fatalf("delete of unknown token must not fail: %v", err)
	}
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := Session{ExpiresAt: now.Add(time.Minute)}

	if s.Expired(now) {
		t.Fatalf("session must not be expired before its deadline")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("session must be expired after its deadline")
	}
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := NewToken()
		if tok == "" {
			t.Fatalf("empty token")
		}
		if seen[tok] {
			t.Fatalf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}
