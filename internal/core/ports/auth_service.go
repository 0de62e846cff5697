package ports

import (
	"context"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
)

// RegisterInput carries a new account with its plaintext secret. The secret
// only ever lives in request scope; the service hashes it before anything is
// persisted.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error)

	// Validate verifies a bearer value (optionally prefixed "Bearer ") and
	// re-resolves the subject to its current record.
	Validate(ctx context.Context, bearer string) (*domain.Identity, error)
}
