package infrastructure

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	numericOutOfRange   = "22003"
)

// Constraint names created by the migrations.
const (
	userIngredientUniqueKey = "user_ingredients_user_ingredient_key"
	cartUniqueKey           = "carts_user_ingredient_key"
	recipeCodeKey           = "recipes_code_key"
)

var constraintErrors = map[string]error{
	userIngredientUniqueKey: foodErrors.NewValidationError("", "The fields user, ingredient must make a unique set."),
	cartUniqueKey:           foodErrors.NewValidationError("", "The fields user, ingredient must make a unique set."),
	recipeCodeKey:           foodErrors.NewValidationError("code", "recipe with this code already exists."),
}

// foreign key constraint -> write field reported when the referenced row is gone
var constraintFields = map[string]string{
	"ingredients_category_id_fkey":          "category_id",
	"recipes_category_id_fkey":              "category_id",
	"user_ingredients_ingredient_id_fkey":   "ingredient_id",
	"carts_ingredient_id_fkey":              "ingredient_id",
	"recipe_ingredients_recipe_id_fkey":     "recipe_id",
	"recipe_ingredients_ingredient_id_fkey": "ingredient_id",
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// translateWriteError turns constraint violations raised by INSERT/UPDATE into
// validation errors.
func translateWriteError(err error, action string) error {
	pgErr, ok := asPgError(err)
	if !ok {
		return fmt.Errorf("could not %s: %w", action, err)
	}
	switch pgErr.Code {
	case uniqueViolation:
		if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return mapped
		}
		return foodErrors.NewValidationError("", "Object violates a uniqueness constraint.")
	case foreignKeyViolation:
		field := constraintFields[pgErr.ConstraintName]
		return foodErrors.NewValidationError(field, "Invalid pk - object does not exist.")
	case numericOutOfRange:
		return foodErrors.NewValidationError("", "A numeric value is out of range.")
	}
	return fmt.Errorf("could not %s: %w", action, err)
}

// translateDeleteError reports rows still referenced through a RESTRICT key as
// ErrProtected.
func translateDeleteError(err error, action string) error {
	if pgErr, ok := asPgError(err); ok && pgErr.Code == foreignKeyViolation {
		return foodErrors.ErrProtected
	}
	return fmt.Errorf("could not %s: %w", action, err)
}
