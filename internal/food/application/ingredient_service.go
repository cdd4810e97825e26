package application

import (
	"context"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

type IngredientService struct {
	repo       domain.IngredientRepository
	categories domain.CategoryRepository
}

func NewIngredientService(repo domain.IngredientRepository, categories domain.CategoryRepository) *IngredientService {
	return &IngredientService{repo: repo, categories: categories}
}

func (s *IngredientService) ListIngredients(ctx context.Context, opts domain.ListOptions) ([]domain.Ingredient, error) {
	return s.repo.List(ctx, opts)
}

func (s *IngredientService) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *IngredientService) CreateIngredient(ctx context.Context, in IngredientInput) (*domain.Ingredient, error) {
	ingredient := &domain.Ingredient{}
	if err := s.apply(ctx, ingredient, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, ingredient.ID)
}

func (s *IngredientService) UpdateIngredient(ctx context.Context, id int64, in IngredientInput, partial bool) (*domain.Ingredient, error) {
	ingredient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, ingredient, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *IngredientService) DeleteIngredient(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *IngredientService) apply(ctx context.Context, ingredient *domain.Ingredient, in IngredientInput, partial bool) error {
	p := presence{partial: partial}
	if p.sent("title", in.Title != nil) {
		ingredient.Title = *in.Title
	}
	if p.sent("category_id", in.CategoryID != nil) {
		ingredient.CategoryID = *in.CategoryID
	}
	if err := p.err(); err != nil {
		return err
	}
	if err := ingredient.Validate(); err != nil {
		return err
	}
	if in.CategoryID != nil {
		return checkExists(ctx, s.categories.Exists, "category_id", *in.CategoryID)
	}
	return nil
}

// checkExists reports a missing referenced row as a validation error on field.
func checkExists(ctx context.Context, exists func(context.Context, int64) (bool, error), field string, id int64) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return foodErrors.NewDoesNotExistError(field, id)
	}
	return nil
}
