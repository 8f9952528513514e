package oauth

import (
	"errors"
	"testing"
	"time"
)

func TestStateSigner_SignVerify(t *testing.T) {
	s := NewStateSigner("test-secret", time.Minute)

	state, err := s.Sign()
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := s.Verify(state); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestStateSigner_VerifyGarbage(t *testing.T) {
	s := NewStateSigner("test-secret", time.Minute)

	if err := s.Verify("not-a-jwt"); !errors.Is(err, ErrStateInvalid) {
		t.Fatalf("expected ErrStateInvalid, got %v", err)
	}
	if err := s.Verify(""); !errors.Is(err, ErrStateInvalid) {
		t.Fatalf("expected ErrStateInvalid for empty state, got %v", err)
	}
}

func TestStateSigner_VerifyWrongSecret(t *testing.T) {
	signer := NewStateSigner("secret-a", time.Minute)
	verifier := NewStateSigner("secret-b", time.Minute)

	state, err := signer.Sign()
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := verifier.Verify(state); !errors.Is(err, ErrStateInvalid) {
		t.Fatalf("expected ErrStateInvalid across secrets, got %v", err)
	}
}

func TestStateSigner_Expired(t *testing.T) {
	s := NewStateSigner("test-secret", time.Minute)

	issued := time.Now().Add(-time.Hour)
	s.now = func() time.Time { return issued }
	state, err := s.Sign()
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	s.now = time.Now
	if err := s.Verify(state); !errors.Is(err, ErrStateExpired) {
		t.Fatalf("expected ErrStateExpired, got %v", err)
	}
}

func TestStateSigner_GeneratedSecretStillRoundTrips(t *testing.T) {
	s := NewStateSigner("", 0)

	state, err := s.Sign()
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := s.Verify(state); err != nil {
		t.Fatalf("verify with generated secret: %v", err)
	}
}
