package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/ports"
)

// CategoryService implements habit category CRUD.
type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	return s.repo.Create(ctx, &domain.Category{Name: name})
}

func (s *CategoryService) Rename(ctx context.Context, id, name string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = name
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}
