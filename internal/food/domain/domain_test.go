package domain

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Café Latte":      "cafe-latte",
		"  Fresh  Herbs ": "fresh-herbs",
		"Crème Brûlée":    "creme-brulee",
		"UPPER lower":     "upper-lower",
	}
	for title, want := range cases {
		assert.Equal(t, want, Slugify(title), title)
	}
}

func TestCategoryNormalize_RecomputesSlug(t *testing.T) {
	c := Category{Title: " Café Latte ", Slug: "client-supplied"}
	c.Normalize()
	assert.Equal(t, "Café Latte", c.Title)
	assert.Equal(t, "cafe-latte", c.Slug)

	c.Title = "Espresso"
	c.Normalize()
	assert.Equal(t, "espresso", c.Slug)
}

func TestCategoryValidate(t *testing.T) {
	assert.NoError(t, (&Category{Title: "Vegetables"}).Validate())

	err := (&Category{Title: "   "}).Validate()
	assert.Equal(t, []string{"This field may not be blank."}, foodErrors.Fields(err)["title"])

	err = (&Category{Title: strings.Repeat("a", MaxTitleLength+1)}).Validate()
	assert.Contains(t, foodErrors.Fields(err), "title")
}

func TestIngredientValidate_RequiresCategory(t *testing.T) {
	err := (&Ingredient{Title: "Carrot"}).Validate()
	assert.Equal(t, []string{"This field is required."}, foodErrors.Fields(err)["category_id"])
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(decimal.RequireFromString("0")))
	assert.NoError(t, ValidateQuantity(decimal.RequireFromString("1.5")))
	assert.NoError(t, ValidateQuantity(decimal.RequireFromString("1.50")))
	assert.NoError(t, ValidateQuantity(decimal.RequireFromString("9999.9")))

	assert.Error(t, ValidateQuantity(decimal.RequireFromString("1.25")))
	assert.Error(t, ValidateQuantity(decimal.RequireFromString("10000")))
	assert.Error(t, ValidateQuantity(decimal.RequireFromString("-1")))
}

func TestUserIngredientValidate_DateWindow(t *testing.T) {
	start := NewDate(2026, time.March, 10)
	end := NewDate(2026, time.March, 1)
	item := UserIngredient{IngredientID: 1, Quantity: decimal.NewFromInt(2), StartDate: &start, EndDate: &end}

	err := item.Validate()
	require.Error(t, err)
	assert.Contains(t, foodErrors.Fields(err), "end_date")

	item.EndDate = &start
	assert.NoError(t, item.Validate())
}

func TestRecipeValidate_CodeFitsInteger(t *testing.T) {
	recipe := &Recipe{Title: "Soup", Code: 3000000000, CategoryID: 1}
	err := recipe.Validate()
	require.Error(t, err)
	assert.Equal(t, []string{"Ensure this value is less than or equal to 2147483647."}, foodErrors.Fields(err)["code"])

	recipe.Code = math.MinInt32 - 1
	assert.Contains(t, foodErrors.Fields(recipe.Validate()), "code")

	recipe.Code = math.MaxInt32
	assert.NoError(t, recipe.Validate())
	recipe.Code = -7
	assert.NoError(t, recipe.Validate())
}

func TestRecipeIngredientValidate(t *testing.T) {
	err := (&RecipeIngredient{}).Validate()
	fields := foodErrors.Fields(err)
	assert.Contains(t, fields, "recipe_id")
	assert.Contains(t, fields, "ingredient_id")
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Start *Date `json:"start_date"`
		End   *Date `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"2026-01-31","end_date":null}`), &payload))
	require.NotNil(t, payload.Start)
	assert.Nil(t, payload.End)
	assert.Equal(t, "2026-01-31", payload.Start.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"2026-01-31","end_date":null}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"start_date":"31/01/2026"}`), &payload))
}

func TestUserIngredientJSON_HidesForeignKeys(t *testing.T) {
	item := UserIngredient{
		ID:           3,
		UserID:       "u-1",
		User:         Owner{ID: "u-1", Username: "kim", Email: "kim@example.com"},
		IngredientID: 9,
		Ingredient:   Ingredient{ID: 9, Title: "Milk", Category: Category{ID: 1, Title: "Dairy", Slug: "dairy"}},
		Quantity:     decimal.RequireFromString("1.5"),
	}
	out, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotContains(t, decoded, "user_id")
	assert.NotContains(t, decoded, "ingredient_id")
	assert.Equal(t, "1.5", decoded["quantity"])
	assert.Equal(t, "kim", decoded["user"].(map[string]interface{})["username"])
}
