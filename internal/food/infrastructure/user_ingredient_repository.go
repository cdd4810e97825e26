package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

// Columns shared by the two user scoped tables (pantry rows and cart rows),
// both aliased as t.
func ownedColumns() columnSet {
	return columnSet{
		id:     "t.id",
		owner:  "t.user_id",
		search: map[string]string{domain.FieldIngredient: "i.title"},
		order: map[string]string{
			domain.FieldID:         "t.id",
			domain.FieldIngredient: "i.title",
		},
		defaultOrder: []domain.Ordering{{Field: domain.FieldIngredient}},
	}
}

var userIngredientColumns = ownedColumns()

const userIngredientSelect = `
	SELECT t.id, t.quantity, t.start_date, t.end_date, t.memo,
		u.id, u.username, u.email,
		i.id, i.title, c.id, c.title, c.slug
	FROM user_ingredients t
	JOIN users u ON u.id = t.user_id
	JOIN ingredients i ON i.id = t.ingredient_id
	JOIN ingredient_categories c ON c.id = i.category_id`

type UserIngredientRepository struct {
	db *sql.DB
}

func NewUserIngredientRepository(db *sql.DB) *UserIngredientRepository {
	return &UserIngredientRepository{db: db}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUserIngredient(row scanner) (domain.UserIngredient, error) {
	var (
		item       domain.UserIngredient
		start, end sql.NullTime
	)
	err := row.Scan(&item.ID, &item.Quantity, &start, &end, &item.Memo,
		&item.User.ID, &item.User.Username, &item.User.Email,
		&item.Ingredient.ID, &item.Ingredient.Title,
		&item.Ingredient.Category.ID, &item.Ingredient.Category.Title, &item.Ingredient.Category.Slug)
	if err != nil {
		return item, err
	}
	item.UserID = item.User.ID
	item.IngredientID = item.Ingredient.ID
	item.Ingredient.CategoryID = item.Ingredient.Category.ID
	item.StartDate = fromNullTime(start)
	item.EndDate = fromNullTime(end)
	return item, nil
}

func fromNullTime(t sql.NullTime) *domain.Date {
	if !t.Valid {
		return nil
	}
	d := domain.NewDate(t.Time.Year(), t.Time.Month(), t.Time.Day())
	return &d
}

func toNullTime(d *domain.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func (r *UserIngredientRepository) List(ctx context.Context, opts domain.ListOptions) ([]domain.UserIngredient, error) {
	var args queryArgs
	query := userIngredientSelect +
		userIngredientColumns.where(opts, &args) +
		userIngredientColumns.orderBy(opts) +
		limitOffset(opts, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not list user ingredients: %w", err)
	}
	defer rows.Close()

	items := []domain.UserIngredient{}
	for rows.Next() {
		item, err := scanUserIngredient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *UserIngredientRepository) FindByID(ctx context.Context, userID string, id int64) (*domain.UserIngredient, error) {
	row := r.db.QueryRowContext(ctx, userIngredientSelect+" WHERE t.id = $1 AND t.user_id = $2", id, userID)
	item, err := scanUserIngredient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, foodErrors.ErrNotFound
		}
		return nil, fmt.Errorf("could not find user ingredient: %w", err)
	}
	return &item, nil
}

func (r *UserIngredientRepository) Create(ctx context.Context, item *domain.UserIngredient) error {
	query := `
		INSERT INTO user_ingredients (user_id, ingredient_id, quantity, start_date, end_date, memo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		item.UserID, item.IngredientID, item.Quantity.String(),
		toNullTime(item.StartDate), toNullTime(item.EndDate), item.Memo,
	).Scan(&item.ID)
	if err != nil {
		return translateWriteError(err, "create user ingredient")
	}
	return nil
}

func (r *UserIngredientRepository) Update(ctx context.Context, item *domain.UserIngredient) error {
	query := `
		UPDATE user_ingredients
		SET ingredient_id = $1, quantity = $2, start_date = $3, end_date = $4, memo = $5
		WHERE id = $6 AND user_id = $7`
	result, err := r.db.ExecContext(ctx, query,
		item.IngredientID, item.Quantity.String(),
		toNullTime(item.StartDate), toNullTime(item.EndDate), item.Memo,
		item.ID, item.UserID)
	if err != nil {
		return translateWriteError(err, "update user ingredient")
	}
	return expectOneRow(result)
}

func (r *UserIngredientRepository) Delete(ctx context.Context, userID string, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM user_ingredients WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return translateDeleteError(err, "delete user ingredient")
	}
	return expectOneRow(result)
}
