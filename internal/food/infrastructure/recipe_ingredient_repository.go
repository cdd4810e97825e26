package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

var recipeIngredientColumns = columnSet{
	id: "ri.id",
	search: map[string]string{
		domain.FieldRecipe:     "r.title",
		domain.FieldIngredient: "i.title",
	},
	order: map[string]string{
		domain.FieldID:         "ri.id",
		domain.FieldRecipe:     "r.title",
		domain.FieldIngredient: "i.title",
	},
	defaultOrder: []domain.Ordering{{Field: domain.FieldRecipe}, {Field: domain.FieldIngredient}},
}

const recipeIngredientFrom = `
	FROM recipe_ingredients ri
	JOIN recipes r ON r.id = ri.recipe_id
	JOIN recipe_categories rc ON rc.id = r.category_id
	JOIN ingredients i ON i.id = ri.ingredient_id
	JOIN ingredient_categories ic ON ic.id = i.category_id`

const recipeIngredientSelect = `
	SELECT ri.id,
		r.id, r.title, r.code, rc.id, rc.title, rc.slug,
		i.id, i.title, ic.id, ic.title, ic.slug` + recipeIngredientFrom

type RecipeIngredientRepository struct {
	db *sql.DB
}

func NewRecipeIngredientRepository(db *sql.DB) *RecipeIngredientRepository {
	return &RecipeIngredientRepository{db: db}
}

func scanRecipeIngredient(row scanner) (domain.RecipeIngredient, error) {
	var link domain.RecipeIngredient
	err := row.Scan(&link.ID,
		&link.Recipe.ID, &link.Recipe.Title, &link.Recipe.Code,
		&link.Recipe.Category.ID, &link.Recipe.Category.Title, &link.Recipe.Category.Slug,
		&link.Ingredient.ID, &link.Ingredient.Title,
		&link.Ingredient.Category.ID, &link.Ingredient.Category.Title, &link.Ingredient.Category.Slug)
	link.RecipeID = link.Recipe.ID
	link.IngredientID = link.Ingredient.ID
	link.Ingredient.CategoryID = link.Ingredient.Category.ID
	return link, err
}

func (r *RecipeIngredientRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.RecipeIngredient, error) {
	var args queryArgs
	query := recipeIngredientSelect +
		recipeIngredientColumns.where(opts, &args) +
		recipeIngredientColumns.orderBy(opts) +
		limitOffset(opts, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list recipe ingredients: %w", err)
	}
	defer rows.Close()

	links := []domain.RecipeIngredient{}
	for rows.Next() {
		link, err := scanRecipeIngredient(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *RecipeIngredientRepository) Count(ctx context.Context, opts domain.ListOptions) (int, error) {
	var (
		args  queryArgs
		count int
	)
	query := "SELECT COUNT(*)" + recipeIngredientFrom + recipeIngredientColumns.where(opts, &args)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count recipe ingredients: %w", err)
	}
	return count, nil
}

func (r *RecipeIngredientRepository) FindByID(ctx context.Context, id int64) (*domain.RecipeIngredient, error) {
	link, err := scanRecipeIngredient(r.db.QueryRowContext(ctx, recipeIngredientSelect+" WHERE ri.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, foodErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find recipe ingredient: %w", err)
	}
	return &link, nil
}

func (r *RecipeIngredientRepository) Create(ctx context.Context, link *domain.RecipeIngredient) error {
	query := "INSERT INTO recipe_ingredients (recipe_id, ingredient_id) VALUES ($1, $2) RETURNING id"
	if err := r.db.QueryRowContext(ctx, query, link.RecipeID, link.IngredientID).Scan(&link.ID); err != nil {
		return translateWriteError(err, "create recipe ingredient")
	}
	return nil
}

func (r *RecipeIngredientRepository) Update(ctx context.Context, link *domain.RecipeIngredient) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE recipe_ingredients SET recipe_id = $1, ingredient_id = $2 WHERE id = $3",
		link.RecipeID, link.IngredientID, link.ID)
	if err != nil {
		return translateWriteError(err, "update recipe ingredient")
	}
	return expectOneRow(result)
}

func (r *RecipeIngredientRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE id = $1", id)
	if err != nil {
		return translateDeleteError(err, "delete recipe ingredient")
	}
	return expectOneRow(result)
}

// IngredientsForRecipe returns the ingredients linked to one recipe, by title.
func (r *RecipeIngredientRepository) IngredientsForRecipe(ctx context.Context, recipeID int64) ([]domain.Ingredient, error) {
	query := `
		SELECT i.id, i.title, ic.id, ic.title, ic.slug
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		JOIN ingredient_categories ic ON ic.id = i.category_id
		WHERE ri.recipe_id = $1
		ORDER BY i.title ASC, ri.id ASC`
	rows, err := r.db.QueryContext(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("could not load recipe ingredients: %w", err)
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
