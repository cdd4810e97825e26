package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

const (
	IngredientCategoryTable = "ingredient_categories"
	RecipeCategoryTable     = "recipe_categories"
)

var categoryColumns = columnSet{
	id:     "id",
	search: map[string]string{domain.FieldTitle: "title"},
	order: map[string]string{
		domain.FieldID:    "id",
		domain.FieldTitle: "title",
	},
	defaultOrder: []domain.Ordering{{Field: domain.FieldTitle}},
}

// CategoryRepository serves both category tables; table is fixed at
// construction and never taken from input.
type CategoryRepository struct {
	db    *sql.DB
	table string
}

func NewCategoryRepository(db *sql.DB, table string) *CategoryRepository {
	if table != IngredientCategoryTable && table != RecipeCategoryTable {
		panic(fmt.Sprintf("unknown category table %q", table))
	}
	return &CategoryRepository{db: db, table: table}
}

func (r *CategoryRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.Category, error) {
	var args queryArgs
	query := "SELECT id, title, slug FROM " + r.table +
		categoryColumns.where(opts, &args) +
		categoryColumns.orderBy(opts) +
		limitOffset(opts, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	query := "SELECT id, title, slug FROM " + r.table + " WHERE id = $1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.Slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, foodErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM " + r.table + " WHERE id = $1)"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := "INSERT INTO " + r.table + " (title, slug) VALUES ($1, $2) RETURNING id"
	if err := r.db.QueryRowContext(ctx, query, category.Title, category.Slug).Scan(&category.ID); err != nil {
		return translateWriteError(err, "create category")
	}
	return nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	query := "UPDATE " + r.table + " SET title = $1, slug = $2 WHERE id = $3"
	result, err := r.db.ExecContext(ctx, query, category.Title, category.Slug, category.ID)
	if err != nil {
		return translateWriteError(err, "update category")
	}
	return expectOneRow(result)
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM "+r.table+" WHERE id = $1", id)
	if err != nil {
		return translateDeleteError(err, "delete category")
	}
	return expectOneRow(result)
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return foodErrors.ErrNotFound
	}
	return nil
}
