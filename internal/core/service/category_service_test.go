package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/JuanFernandoBallesterosMaciasUIS/rutinia1/internal/core/domain"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	var all []*domain.Category
	for _, c := range r.categories {
		clone := *c
		all = append(all, &clone)
	}
	return all, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if c, ok := r.categories[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	created := *category
	created.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.categories[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	clone := *category
	r.categories[category.ID] = &clone
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func TestCategoryService_CRUD(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.New(io.Discard))
	ctx := context.Background()

	created, err := svc.Create(ctx, "Health")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.Name != "Health" {
		t.Fatalf("unexpected category: %+v", created)
	}

	renamed, err := svc.Rename(ctx, created.ID, "Fitness")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Name != "Fitness" {
		t.Fatalf("expected Fitness, got %q", renamed.Name)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 category, got %d", len(all))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_UnknownID(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.New(io.Discard))
	ctx := context.Background()

	if _, err := svc.Rename(ctx, "missing", "X"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
