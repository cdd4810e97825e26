package domain

import (
	"context"
	"fmt"
	"math"
	"strings"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

type Recipe struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Code        int          `json:"code"`
	CategoryID  int64        `json:"-"`
	Category    Category     `json:"category"`
	Ingredients []Ingredient `json:"ingredients"`
}

type RecipeRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Recipe, error)
	Count(ctx context.Context, opts ListOptions) (int, error)
	FindByID(ctx context.Context, id int64) (*Recipe, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, recipe *Recipe) error
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id int64) error
}

func (r *Recipe) Validate() error {
	ve := &foodErrors.ValidationErrors{}
	r.Title = strings.TrimSpace(r.Title)
	validateTitle(ve, r.Title)
	validateCode(ve, r.Code)
	if r.CategoryID <= 0 {
		ve.Add(foodErrors.NewRequiredError("category_id"))
	}
	return ve.Err()
}

// The code column is a 32-bit INTEGER.
func validateCode(ve *foodErrors.ValidationErrors, code int) {
	switch {
	case code > math.MaxInt32:
		ve.Add(foodErrors.NewValidationError("code", fmt.Sprintf("Ensure this value is less than or equal to %d.", math.MaxInt32)))
	case code < math.MinInt32:
		ve.Add(foodErrors.NewValidationError("code", fmt.Sprintf("Ensure this value is greater than or equal to %d.", math.MinInt32)))
	}
}

// RecipeSummary is the nested recipe shown on link rows, without ingredients.
type RecipeSummary struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Code     int      `json:"code"`
	Category Category `json:"category"`
}

// RecipeIngredient links a recipe to one of its ingredients.
type RecipeIngredient struct {
	ID           int64         `json:"id"`
	RecipeID     int64         `json:"-"`
	Recipe       RecipeSummary `json:"recipe"`
	IngredientID int64         `json:"-"`
	Ingredient   Ingredient    `json:"ingredient"`
}

type RecipeIngredientRepository interface {
	List(ctx context.Context, opts ListOptions) ([]RecipeIngredient, error)
	Count(ctx context.Context, opts ListOptions) (int, error)
	FindByID(ctx context.Context, id int64) (*RecipeIngredient, error)
	Create(ctx context.Context, link *RecipeIngredient) error
	Update(ctx context.Context, link *RecipeIngredient) error
	Delete(ctx context.Context, id int64) error
	IngredientsForRecipe(ctx context.Context, recipeID int64) ([]Ingredient, error)
}

func (l *RecipeIngredient) Validate() error {
	ve := &foodErrors.ValidationErrors{}
	if l.RecipeID <= 0 {
		ve.Add(foodErrors.NewRequiredError("recipe_id"))
	}
	if l.IngredientID <= 0 {
		ve.Add(foodErrors.NewRequiredError("ingredient_id"))
	}
	return ve.Err()
}
