package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestGoogleProvider_LoginURL(t *testing.T) {
	p := NewGoogleProvider(GoogleConfig{
		ClientID:    "client-1",
		RedirectURL: "https://app.example/api/auth/google/callback",
	})

	raw := p.LoginURL("state-abc")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("login url not parseable: %v", err)
	}

	q := u.Query()
	if q.Get("client_id") != "client-1" {
		t.Fatalf("missing client_id, got %q", q.Get("client_id"))
	}
	if q.Get("redirect_uri") != "https://app.example/api/auth/google/callback" {
		t.Fatalf("missing redirect_uri")
	}
	if q.Get("response_type") != "code" {
		t.Fatalf("expected response_type=code")
	}
	if q.Get("scope") != "openid email profile" {
		t.Fatalf("unexpected scope %q", q.Get("scope"))
	}
	if q.Get("state") != "state-abc" {
		t.Fatalf("state not carried through")
	}
	if !strings.HasPrefix(raw, defaultGoogleAuthURL+"?") {
		t.Fatalf("expected default auth endpoint, got %q", raw)
	}
}

func TestGoogleProvider_ExchangeCode(t *testing.T) {
	userInfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer access-123" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"g-1","email":"jane@example.com","name":"Jane Doe","picture":"https://img.example/jane.png"}`))
	}))
	defer userInfoSrv.Close()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("code") != "auth-code" {
			t.Errorf("expected code=auth-code, got %q", r.PostForm.Get("code"))
		}
		if r.PostForm.Get("grant_type") != "authorization_code" {
			t.Errorf("expected grant_type=authorization_code")
		}
		if r.PostForm.Get("client_secret") != "secret-1" {
			t.Errorf("client secret not sent")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	p := NewGoogleProvider(GoogleConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURL:  "https://app.example/callback",
		TokenURL:     tokenSrv.URL,
		UserInfoURL:  userInfoSrv.URL,
	})

	info, err := p.ExchangeCode(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if info.Email != "jane@example.com" || info.Name != "Jane Doe" {
		t.Fatalf("unexpected user info %+v", info)
	}
	if info.Picture != "https://img.example/jane.png" {
		t.Fatalf("picture not carried through")
	}
}

func TestGoogleProvider_ExchangeCode_TokenEndpointRejects(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer tokenSrv.Close()

	p := NewGoogleProvider(GoogleConfig{TokenURL: tokenSrv.URL})

	_, err := p.ExchangeCode(context.Background(), "stale-code")
	if err == nil {
		t.Fatalf("expected error for rejected code")
	}
	if !strings.Contains(err.Error(), "invalid_grant") {
		t.Fatalf("expected upstream body in error, got %v", err)
	}
}

func TestGoogleProvider_ExchangeCode_EmptyAccessToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer tokenSrv.Close()

	p := NewGoogleProvider(GoogleConfig{TokenURL: tokenSrv.URL})

	if _, err := p.ExchangeCode(context.Background(), "auth-code"); err == nil {
		t.Fatalf("expected error for empty access token")
	}
}

func TestGoogleProvider_ExchangeCode_EmptyEmail(t *testing.T) {
	userInfoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"g-1","name":"No Email"}`))
	}))
	defer userInfoSrv.Close()

	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123"}`))
	}))
	defer tokenSrv.Close()

	p := NewGoogleProvider(GoogleConfig{TokenURL: tokenSrv.URL, UserInfoURL: userInfoSrv.URL})

	if _, err := p.ExchangeCode(context.Background(), "auth-code"); err == nil {
		t.Fatalf("expected error for missing email")
	}
}
