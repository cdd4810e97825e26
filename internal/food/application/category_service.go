package application

import (
	"context"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

// CategoryService manages one kind of category; the app builds one for
// ingredient categories and one for recipe categories.
type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) ListCategories(ctx context.Context, opts domain.ListOptions) ([]domain.Category, error) {
	return s.repo.List(ctx, opts)
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	category := &domain.Category{}
	if err := s.apply(category, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, in CategoryInput, partial bool) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(category, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// apply copies the sent fields, recomputes the slug and validates.
func (s *CategoryService) apply(category *domain.Category, in CategoryInput, partial bool) error {
	p := presence{partial: partial}
	if p.sent("title", in.Title != nil) {
		category.Title = *in.Title
	}
	if err := p.err(); err != nil {
		return err
	}
	category.Normalize()
	return category.Validate()
}
