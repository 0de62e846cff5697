package ports

import (
	"context"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
)

// UserRepository is the persistence boundary for user records. Lookups by
// email are exact; the store enforces email uniqueness and Create maps a
// duplicate-key failure to domain.ErrUserExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateCredential overwrites only the stored credential hash.
	UpdateCredential(ctx context.Context, id, passwordHash string) error

	// FindAll enumerates every record; used only by the credential migrator.
	FindAll(ctx context.Context) ([]*domain.User, error)
}
