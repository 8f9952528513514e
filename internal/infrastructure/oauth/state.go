package oauth

import (
	"crypto/rand"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrStateInvalid = errors.New("oauth state invalid")
	ErrStateExpired = errors.New("oauth state expired")
)

// StateSigner issues the signed state value carried through the
// authorization redirect and verified on callback. States are short-lived
// and single-purpose; a restart with a generated secret only invalidates
// logins that were mid-redirect.
type StateSigner struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time
}

type stateClaims struct {
	Nonce string `json:"nonce"`
	jwtlib.RegisteredClaims
}

func NewStateSigner(secret string, ttl time.Duration) *StateSigner {
	b := []byte(secret)
	if len(b) == 0 {
		b = make([]byte, 32)
		_, _ = rand.Read(b)
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &StateSigner{secret: b, ttl: ttl, now: time.Now}
}

func (s *StateSigner) Sign() (string, error) {
	now := s.now()
	c := stateClaims{
		Nonce: uuid.NewString(),
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now.UTC()),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(s.ttl).UTC()),
		},
	}
	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *StateSigner) Verify(state string) error {
	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c stateClaims
	tok, err := p.ParseWithClaims(state, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return ErrStateExpired
		}
		return ErrStateInvalid
	}
	if tok == nil || !tok.Valid || c.Nonce == "" {
		return ErrStateInvalid
	}
	return nil
}
