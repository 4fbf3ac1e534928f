package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/api-productos/products-api/internal/auth"
	"github.com/api-productos/products-api/internal/core/domain"
	"github.com/api-productos/products-api/internal/core/ports"
)

// AuthService implements registration, login and profile lookup.
type AuthService struct {
	repo   ports.UserRepository
	codec  *auth.TokenCodec
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.TokenCodec, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, logger: logger}
}

// Register creates a new account and issues its first token. The returned user
// never carries the plaintext password; the hash is excluded from JSON.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if !validEmail(input.Email) {
		return "", nil, domain.ErrInvalidEmail
	}
	if !auth.ValidatePassword(input.Password) {
		return "", nil, domain.ErrWeakPassword
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	} else if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}

	// Pre-check for a friendlier message; the unique index still backstops
	// a concurrent duplicate.
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", nil, err
	}

	user, err := s.repo.Create(ctx, &domain.User{
		Email:     input.Email,
		Password:  hash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      role,
		IsActive:  true,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return token, user, nil
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the same error so the response does not reveal which
// emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, domain.ErrUserInactive
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}

// Profile returns the account for the given id.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// validEmail applies a lightweight shape check: one "@" with a non-empty local
// part and a dotted domain. Not full RFC 5322 validation.
func validEmail(email string) bool {
	if strings.ContainsAny(email, " \t") {
		return false
	}
	at := strings.IndexByte(email, '@')
	if at <= 0 || at != strings.LastIndexByte(email, '@') {
		return false
	}
	host := email[at+1:]
	return strings.Contains(host, ".") &&
		!strings.HasPrefix(host, ".") &&
		!strings.HasSuffix(host, ".")
}
