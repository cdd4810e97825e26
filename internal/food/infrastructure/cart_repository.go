package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

var cartColumns = ownedColumns()

const cartSelect = `
	SELECT t.id, t.buy,
		u.id, u.username, u.email,
		i.id, i.title, c.id, c.title, c.slug
	FROM carts t
	JOIN users u ON u.id = t.user_id
	JOIN ingredients i ON i.id = t.ingredient_id
	JOIN ingredient_categories c ON c.id = i.category_id`

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

func scanCartItem(row scanner) (domain.CartItem, error) {
	var item domain.CartItem
	err := row.Scan(&item.ID, &item.Buy,
		&item.User.ID, &item.User.Username, &item.User.Email,
		&item.Ingredient.ID, &item.Ingredient.Title,
		&item.Ingredient.Category.ID, &item.Ingredient.Category.Title, &item.Ingredient.Category.Slug)
	item.UserID = item.User.ID
	item.IngredientID = item.Ingredient.ID
	item.Ingredient.CategoryID = item.Ingredient.Category.ID
	return item, err
}

func (r *CartRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.CartItem, error) {
	var args queryArgs
	query := cartSelect +
		cartColumns.where(opts, &args) +
		cartColumns.orderBy(opts) +
		limitOffset(opts, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list cart: %w", err)
	}
	defer rows.Close()

	items := []domain.CartItem{}
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) FindByID(ctx context.Context, userID string, id int64) (*domain.CartItem, error) {
	item, err := scanCartItem(r.db.QueryRowContext(ctx, cartSelect+" WHERE t.id = $1 AND t.user_id = $2", id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, foodErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find cart item: %w", err)
	}
	return &item, nil
}

func (r *CartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	query := "INSERT INTO carts (user_id, ingredient_id, buy) VALUES ($1, $2, $3) RETURNING id"
	if err := r.db.QueryRowContext(ctx, query, item.UserID, item.IngredientID, item.Buy).Scan(&item.ID); err != nil {
		return translateWriteError(err, "create cart item")
	}
	return nil
}

func (r *CartRepository) Update(ctx context.Context, item *domain.CartItem) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE carts SET ingredient_id = $1, buy = $2 WHERE id = $3 AND user_id = $4",
		item.IngredientID, item.Buy, item.ID, item.UserID)
	if err != nil {
		return translateWriteError(err, "update cart item")
	}
	return expectOneRow(result)
}

func (r *CartRepository) Delete(ctx context.Context, userID string, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM carts WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return translateDeleteError(err, "delete cart item")
	}
	return expectOneRow(result)
}
