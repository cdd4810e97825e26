package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

var recipeColumns = columnSet{
	id: "r.id",
	search: map[string]string{
		domain.FieldTitle:    "r.title",
		domain.FieldCategory: "c.title",
	},
	order: map[string]string{
		domain.FieldID:       "r.id",
		domain.FieldTitle:    "r.title",
		domain.FieldCategory: "c.title",
	},
	defaultOrder: []domain.Ordering{{Field: domain.FieldTitle}},
}

const recipeFrom = `
	FROM recipes r
	JOIN recipe_categories c ON c.id = r.category_id`

const recipeSelect = `SELECT r.id, r.title, r.code, c.id, c.title, c.slug` + recipeFrom

// RecipeRepository loads recipes without their ingredient lists; the service
// attaches those through RecipeIngredientRepository.
type RecipeRepository struct {
	db *sql.DB
}

func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func scanRecipe(row scanner) (domain.Recipe, error) {
	var recipe domain.Recipe
	err := row.Scan(&recipe.ID, &recipe.Title, &recipe.Code,
		&recipe.Category.ID, &recipe.Category.Title, &recipe.Category.Slug)
	recipe.CategoryID = recipe.Category.ID
	recipe.Ingredients = []domain.Ingredient{}
	return recipe, err
}

func (r *RecipeRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Recipe, error) {
	var args queryArgs
	query := recipeSelect +
		recipeColumns.where(opts, &args) +
		recipeColumns.orderBy(opts) +
		limitOffset(opts, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []domain.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}

func (r *RecipeRepository) Count(ctx context.Context, opts domain.ListOptions) (int, error) {
	var (
		args  queryArgs
		count int
	)
	query := "SELECT COUNT(*)" + recipeFrom + recipeColumns.where(opts, &args)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count recipes: %w", err)
	}
	return count, nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, recipeSelect+" WHERE r.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, foodErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find recipe: %w", err)
	}
	return &recipe, nil
}

func (r *RecipeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM recipes WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) error {
	query := "INSERT INTO recipes (title, code, category_id) VALUES ($1, $2, $3) RETURNING id"
	if err := r.db.QueryRowContext(ctx, query, recipe.Title, recipe.Code, recipe.CategoryID).Scan(&recipe.ID); err != nil {
		return translateWriteError(err, "create recipe")
	}
	return nil
}

func (r *RecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE recipes SET title = $1, code = $2, category_id = $3 WHERE id = $4",
		recipe.Title, recipe.Code, recipe.CategoryID, recipe.ID)
	if err != nil {
		return translateWriteError(err, "update recipe")
	}
	return expectOneRow(result)
}

func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return translateDeleteError(err, "delete recipe")
	}
	return expectOneRow(result)
}
