package domain

import (
	"context"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
	"github.com/shopspring/decimal"
)

// Quantity is stored as NUMERIC(5,1).
var maxQuantity = decimal.New(10000, 0)

// Owner is the read-only projection of the identity collaborator's user.
type Owner struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserIngredient is one pantry record: how much of an ingredient a user holds.
type UserIngredient struct {
	ID           int64           `json:"id"`
	UserID       string          `json:"-"`
	User         Owner           `json:"user"`
	IngredientID int64           `json:"-"`
	Ingredient   Ingredient      `json:"ingredient"`
	Quantity     decimal.Decimal `json:"quantity"`
	StartDate    *Date           `json:"start_date"`
	EndDate      *Date           `json:"end_date"`
	Memo         string          `json:"memo"`
}

type UserIngredientRepository interface {
	List(ctx context.Context, opts ListOptions) ([]UserIngredient, error)
	FindByID(ctx context.Context, userID string, id int64) (*UserIngredient, error)
	Create(ctx context.Context, item *UserIngredient) error
	Update(ctx context.Context, item *UserIngredient) error
	Delete(ctx context.Context, userID string, id int64) error
}

func (u *UserIngredient) Validate() error {
	ve := &foodErrors.ValidationErrors{}
	if u.IngredientID <= 0 {
		ve.Add(foodErrors.NewRequiredError("ingredient_id"))
	}
	if err := ValidateQuantity(u.Quantity); err != nil {
		ve.Add(err)
	}
	if u.StartDate != nil && u.EndDate != nil && u.EndDate.Before(u.StartDate.Time) {
		ve.Add(foodErrors.NewValidationError("end_date", "End date must not be before start date."))
	}
	return ve.Err()
}

func ValidateQuantity(q decimal.Decimal) error {
	switch {
	case q.IsNegative():
		return foodErrors.NewValidationError("quantity", "Ensure this value is greater than or equal to 0.")
	case !q.Equal(q.Truncate(1)):
		return foodErrors.NewValidationError("quantity", "Ensure that there are no more than 1 decimal places.")
	case q.GreaterThanOrEqual(maxQuantity):
		return foodErrors.NewValidationError("quantity", "Ensure that there are no more than 5 digits in total.")
	}
	return nil
}
