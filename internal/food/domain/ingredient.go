package domain

import (
	"context"
	"strings"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

type Ingredient struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	CategoryID int64    `json:"-"`
	Category   Category `json:"category"`
}

type IngredientRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Ingredient, error)
	FindByID(ctx context.Context, id int64) (*Ingredient, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, ingredient *Ingredient) error
	Update(ctx context.Context, ingredient *Ingredient) error
	Delete(ctx context.Context, id int64) error
}

func (i *Ingredient) Validate() error {
	ve := &foodErrors.ValidationErrors{}
	i.Title = strings.TrimSpace(i.Title)
	validateTitle(ve, i.Title)
	if i.CategoryID <= 0 {
		ve.Add(foodErrors.NewRequiredError("category_id"))
	}
	return ve.Err()
}
