package application

import (
	"context"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type RecipeService struct {
	repo       domain.RecipeRepository
	categories domain.CategoryRepository
	links      domain.RecipeIngredientRepository
}

func NewRecipeService(repo domain.RecipeRepository, categories domain.CategoryRepository, links domain.RecipeIngredientRepository) *RecipeService {
	return &RecipeService{repo: repo, categories: categories, links: links}
}

// ListRecipes returns one page of recipes, each with its ingredient list.
func (s *RecipeService) ListRecipes(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Recipe], error) {
	var page domain.Page[domain.Recipe]
	count, err := s.repo.Count(ctx, opts)
	if err != nil {
		return page, err
	}
	recipes, err := s.repo.List(ctx, opts)
	if err != nil {
		return page, err
	}
	for i := range recipes {
		if err := s.attachIngredients(ctx, &recipes[i]); err != nil {
			return page, err
		}
	}
	page.Count = count
	page.Items = recipes
	return page, nil
}

func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.attachIngredients(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) CreateRecipe(ctx context.Context, in RecipeInput) (*domain.Recipe, error) {
	recipe := &domain.Recipe{}
	if err := s.apply(ctx, recipe, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, recipe.ID)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id int64, in RecipeInput, partial bool) (*domain.Recipe, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, recipe, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, id)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *RecipeService) attachIngredients(ctx context.Context, recipe *domain.Recipe) error {
	ingredients, err := s.links.IngredientsForRecipe(ctx, recipe.ID)
	if err != nil {
		return err
	}
	recipe.Ingredients = ingredients
	return nil
}

func (s *RecipeService) apply(ctx context.Context, recipe *domain.Recipe, in RecipeInput, partial bool) error {
	p := presence{partial: partial}
	if p.sent("title", in.Title != nil) {
		recipe.Title = *in.Title
	}
	if p.sent("code", in.Code != nil) {
		recipe.Code = *in.Code
	}
	if p.sent("category_id", in.CategoryID != nil) {
		recipe.CategoryID = *in.CategoryID
	}
	if err := p.err(); err != nil {
		return err
	}
	if err := recipe.Validate(); err != nil {
		return err
	}
	if in.CategoryID != nil {
		return checkExists(ctx, s.categories.Exists, "category_id", *in.CategoryID)
	}
	return nil
}
