package application

import (
	"context"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

// RecipeIngredientService serves the link table in both directions; the
// inverse ingredient-recipe listing differs only in its search fields.
type RecipeIngredientService struct {
	repo        domain.RecipeIngredientRepository
	recipes     domain.RecipeRepository
	ingredients domain.IngredientRepository
}

func NewRecipeIngredientService(repo domain.RecipeIngredientRepository, recipes domain.RecipeRepository, ingredients domain.IngredientRepository) *RecipeIngredientService {
	return &RecipeIngredientService{repo: repo, recipes: recipes, ingredients: ingredients}
}

func (s *RecipeIngredientService) ListRecipeIngredients(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.RecipeIngredient], error) {
	var page domain.Page[domain.RecipeIngredient]
	count, err := s.repo.Count(ctx, opts)
	if err != nil {
		return page, err
	}
	links, err := s.repo.List(ctx, opts)
	if err != nil {
		return page, err
	}
	page.Count = count
	page.Items = links
	return page, nil
}

func (s *RecipeIngredientService) GetRecipeIngredient(ctx context.Context, id int64) (*domain.RecipeIngredient, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RecipeIngredientService) CreateRecipeIngredient(ctx context.Context, in RecipeIngredientInput) (*domain.RecipeIngredient, error) {
	link := &domain.RecipeIngredient{}
	if err := s.apply(ctx, link, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, link.ID)
}

func (s *RecipeIngredientService) UpdateRecipeIngredient(ctx context.Context, id int64, in RecipeIngredientInput, partial bool) (*domain.RecipeIngredient, error) {
	link, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, link, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, link); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *RecipeIngredientService) DeleteRecipeIngredient(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *RecipeIngredientService) apply(ctx context.Context, link *domain.RecipeIngredient, in RecipeIngredientInput, partial bool) error {
	p := presence{partial: partial}
	if p.sent("recipe_id", in.RecipeID != nil) {
		link.RecipeID = *in.RecipeID
	}
	if p.sent("ingredient_id", in.IngredientID != nil) {
		link.IngredientID = *in.IngredientID
	}
	if err := p.err(); err != nil {
		return err
	}
	if err := link.Validate(); err != nil {
		return err
	}

	ve := &foodErrors.ValidationErrors{}
	if in.RecipeID != nil {
		if err := checkExists(ctx, s.recipes.Exists, "recipe_id", *in.RecipeID); err != nil {
			if !foodErrors.IsValidationError(err) {
				return err
			}
			ve.Add(err)
		}
	}
	if in.IngredientID != nil {
		if err := checkExists(ctx, s.ingredients.Exists, "ingredient_id", *in.IngredientID); err != nil {
			if !foodErrors.IsValidationError(err) {
				return err
			}
			ve.Add(err)
		}
	}
	return ve.Err()
}
