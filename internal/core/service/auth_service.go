package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/password"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/ports"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/token"
)

const bearerPrefix = "Bearer "

// AuthService implements login, registration and token validation on top of
// the user store and the token codec.
type AuthService struct {
	users ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, log: log}
}

// Login verifies the credentials and issues a session token. An unknown
// email and a password mismatch are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, pw string) (*domain.AuthResult, error) {
	if email == "" || pw == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(pw, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueResult(user)
}

// Register creates the account with a hashed credential and logs the user
// straight in. A duplicate email is rejected before and, through the store's
// unique index, at write time; both paths surface domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return s.issueResult(created)
}

// Validate decodes a bearer value and re-resolves the subject. A token whose
// subject no longer exists is stale and rejected with ErrUserNotFound.
func (s *AuthService) Validate(ctx context.Context, bearer string) (*domain.Identity, error) {
	raw := strings.TrimPrefix(bearer, bearerPrefix)

	subject, err := s.codec.Verify(raw)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.FindByEmail(ctx, subject)
	if err != nil {
		return nil, err
	}

	return &domain.Identity{
		Name:      user.DisplayName(),
		Email:     user.Email,
		Authority: user.Authority(),
	}, nil
}

func (s *AuthService) issueResult(user *domain.User) (*domain.AuthResult, error) {
	tok, err := s.codec.Issue(user.Email, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{
		Token:     tok,
		TokenType: "Bearer",
		UserID:    user.ID,
		Name:      user.DisplayName(),
		Email:     user.Email,
	}, nil
}
