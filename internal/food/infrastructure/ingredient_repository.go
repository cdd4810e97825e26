package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

var ingredientColumns = columnSet{
	id: "i.id",
	search: map[string]string{
		domain.FieldTitle:    "i.title",
		domain.FieldCategory: "c.title",
	},
	order: map[string]string{
		domain.FieldID:       "i.id",
		domain.FieldTitle:    "i.title",
		domain.FieldCategory: "c.title",
	},
	defaultOrder: []domain.Ordering{{Field: domain.FieldTitle}},
}

const ingredientSelect = `
	SELECT i.id, i.title, c.id, c.title, c.slug
	FROM ingredients i
	JOIN ingredient_categories c ON c.id = i.category_id`

type IngredientRepository struct {
	db *sql.DB
}

func NewIngredientRepository(db *sql.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func scanIngredient(row scanner) (domain.Ingredient, error) {
	var i domain.Ingredient
	err := row.Scan(&i.ID, &i.Title, &i.Category.ID, &i.Category.Title, &i.Category.Slug)
	i.CategoryID = i.Category.ID
	return i, err
}

func (r *IngredientRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Ingredient, error) {
	var args queryArgs
	query := ingredientSelect +
		ingredientColumns.where(opts, &args) +
		ingredientColumns.orderBy(opts) +
		limitOffset(opts, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []domain.Ingredient{}
	for rows.Next() {
		i, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, i)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) FindByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	i, err := scanIngredient(r.db.QueryRowContext(ctx, ingredientSelect+" WHERE i.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, foodErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find ingredient: %w", err)
	}
	return &i, nil
}

func (r *IngredientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM ingredients WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *IngredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) error {
	query := "INSERT INTO ingredients (title, category_id) VALUES ($1, $2) RETURNING id"
	if err := r.db.QueryRowContext(ctx, query, ingredient.Title, ingredient.CategoryID).Scan(&ingredient.ID); err != nil {
		return translateWriteError(err, "create ingredient")
	}
	return nil
}

func (r *IngredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE ingredients SET title = $1, category_id = $2 WHERE id = $3",
		ingredient.Title, ingredient.CategoryID, ingredient.ID)
	if err != nil {
		return translateWriteError(err, "update ingredient")
	}
	return expectOneRow(result)
}

func (r *IngredientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM ingredients WHERE id = $1", id)
	if err != nil {
		return translateDeleteError(err, "delete ingredient")
	}
	return expectOneRow(result)
}
