package application

import (
	"encoding/json"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
	"github.com/shopspring/decimal"
)

// Write bodies. Pointer fields distinguish "absent" from a zero value so PUT
// can demand every required field while PATCH applies only what was sent.

type CategoryInput struct {
	Title *string `json:"title"`
}

type IngredientInput struct {
	Title      *string `json:"title"`
	CategoryID *int64  `json:"category_id"`
}

type PantryInput struct {
	IngredientID *int64                `json:"ingredient_id"`
	Quantity     *decimal.Decimal      `json:"quantity"`
	StartDate    Optional[domain.Date] `json:"start_date"`
	EndDate      Optional[domain.Date] `json:"end_date"`
	Memo         Optional[string]      `json:"memo"`
}

type CartInput struct {
	IngredientID *int64 `json:"ingredient_id"`
	Buy          *bool  `json:"buy"`
}

type RecipeInput struct {
	Title      *string `json:"title"`
	Code       *int    `json:"code"`
	CategoryID *int64  `json:"category_id"`
}

type RecipeIngredientInput struct {
	RecipeID     *int64 `json:"recipe_id"`
	IngredientID *int64 `json:"ingredient_id"`
}

// Optional is a nullable write field that also records whether it was sent,
// so an explicit null can clear a value that an absent field leaves alone.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some is a sent, non-null value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null is a sent null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// resolve returns the value to store: the sent one, the current one when a
// PATCH omits the field, or nil when a PUT omits it.
func (o Optional[T]) resolve(current *T, partial bool) *T {
	if o.Set {
		return o.Value
	}
	if partial {
		return current
	}
	return nil
}

// presence collects "This field is required." errors for a full write.
type presence struct {
	partial bool
	errs    foodErrors.ValidationErrors
}

func (p *presence) sent(field string, ok bool) bool {
	if !ok && !p.partial {
		p.errs.Add(foodErrors.NewRequiredError(field))
	}
	return ok
}

func (p *presence) err() error {
	return p.errs.Err()
}
