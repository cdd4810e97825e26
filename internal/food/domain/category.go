package domain

import (
	"context"
	"strings"
	"unicode/utf8"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

const MaxTitleLength = 255

// Category is shared by ingredient categories and recipe categories; they live
// in separate tables with identical shape.
type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type CategoryRepository interface {
	List(ctx context.Context, opts ListOptions) ([]Category, error)
	FindByID(ctx context.Context, id int64) (*Category, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id int64) error
}

// Normalize trims the title and recomputes the slug. It runs before every save.
func (c *Category) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Slug = Slugify(c.Title)
}

func (c *Category) Validate() error {
	ve := &foodErrors.ValidationErrors{}
	validateTitle(ve, c.Title)
	return ve.Err()
}

func validateTitle(ve *foodErrors.ValidationErrors, title string) {
	if strings.TrimSpace(title) == "" {
		ve.Add(foodErrors.NewValidationError("title", "This field may not be blank."))
		return
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		ve.Add(foodErrors.NewValidationError("title", "Ensure this field has no more than 255 characters."))
	}
}
