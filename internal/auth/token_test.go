package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/api-productos/products-api/internal/core/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("user-1", "alice@example.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected issued-at and expiry to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", got)
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", 0)

	token, err := codec.Issue("user-1", "a@b.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != DefaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTokenTTL, got)
	}
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	// Craft a token whose expiry already passed, signed with the same secret.
	past := time.Now().Add(-time.Hour)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "user-1",
		Email:  "a@b.com",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(expired); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenCodec_Invalid(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	if _, err := codec.Verify("not-a-token"); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}

	other := NewTokenCodec("other-secret", time.Hour)
	token, err := other.Issue("user-1", "a@b.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codec.Verify(token); err != domain.ErrTokenInvalid {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"valid", "Bearer abc123", "abc123", true},
		{"empty", "", "", false},
		{"missing token", "Bearer", "", false},
		{"trailing space", "Bearer ", "", false},
		{"wrong scheme", "Token abc123", "", false},
		{"lowercase scheme", "bearer abc123", "", false},
		{"double space", "Bearer  abc123", "", false},
		{"extra part", "Bearer abc123 extra", "", false},
		{"no scheme", "abc123", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, ok := ExtractTokenFromHeader(tc.header)
			if ok != tc.ok || token != tc.token {
				t.Fatalf("ExtractTokenFromHeader(%q) = (%q, %v), want (%q, %v)",
					tc.header, token, ok, tc.token, tc.ok)
			}
		})
	}
}
