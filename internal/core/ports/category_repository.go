package ports

import (
	"context"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
)

// CategoryRepository is the persistence boundary for habit categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}
