// Package auth implements the stateless credential primitives: the JWT codec
// and the bcrypt password utility. Both are pure wrappers over configuration
// supplied at startup; there is no server-side token state or revocation.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/api-productos/products-api/internal/core/domain"
)

// DefaultTokenTTL is used when configuration supplies no expiry.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the payload embedded in every issued token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies signed, expiring tokens over a shared secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a compact HS256 token carrying the user's identity and role,
// stamped with issued-at and the configured expiry.
func (tc *TokenCodec) Issue(userID, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Verify parses and validates a token. Expiry and invalidity are distinct
// failure kinds: domain.ErrTokenExpired when the embedded expiry has passed,
// domain.ErrTokenInvalid for any signature or structural problem.
func (tc *TokenCodec) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// ExtractTokenFromHeader accepts only the exact two-token form
// "Bearer <token>" with a single space and exact case. Another scheme, a
// missing token or extra spaces all yield false.
func ExtractTokenFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
