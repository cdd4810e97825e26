package domain

import (
	"context"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

// CartItem is one shopping cart line; Buy marks it as already bought.
type CartItem struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"-"`
	User         Owner      `json:"user"`
	IngredientID int64      `json:"-"`
	Ingredient   Ingredient `json:"ingredient"`
	Buy          bool       `json:"buy"`
}

type CartRepository interface {
	List(ctx context.Context, opts ListOptions) ([]CartItem, error)
	FindByID(ctx context.Context, userID string, id int64) (*CartItem, error)
	Create(ctx context.Context, item *CartItem) error
	Update(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, userID string, id int64) error
}

func (c *CartItem) Validate() error {
	if c.IngredientID <= 0 {
		return foodErrors.NewRequiredError("ingredient_id")
	}
	return nil
}
