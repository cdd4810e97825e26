package interfaces

import (
	"context"
	"errors"

	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

type mockServices struct {
	categories  *MockCategoryService
	ingredients *MockIngredientService
	pantry      *MockPantryService
	cart        *MockCartService
	recipes     *MockRecipeService
	links       *MockRecipeIngredientService
}

func newMockServices() *mockServices {
	return &mockServices{
		categories:  &MockCategoryService{},
		ingredients: &MockIngredientService{},
		pantry:      &MockPantryService{},
		cart:        &MockCartService{},
		recipes:     &MockRecipeService{},
		links:       &MockRecipeIngredientService{},
	}
}

type MockCategoryService struct {
	categories []domain.Category
	deleteErr  error
	lastOpts   domain.ListOptions
	lastInput  application.CategoryInput
	partial    bool
}

func (m *MockCategoryService) ListCategories(_ context.Context, opts domain.ListOptions) ([]domain.Category, error) {
	m.lastOpts = opts
	return m.categories, nil
}

func (m *MockCategoryService) GetCategory(_ context.Context, id int64) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, foodErrors.ErrNotFound
}

func (m *MockCategoryService) CreateCategory(_ context.Context, in application.CategoryInput) (*domain.Category, error) {
	m.lastInput = in
	if in.Title == nil {
		return nil, foodErrors.NewRequiredError("title")
	}
	c := domain.Category{ID: 1, Title: *in.Title}
	c.Normalize()
	return &c, nil
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, id int64, in application.CategoryInput, partial bool) (*domain.Category, error) {
	m.lastInput = in
	m.partial = partial
	return &domain.Category{ID: id}, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, _ int64) error {
	return m.deleteErr
}

type MockIngredientService struct {
	ingredients []domain.Ingredient
	created     int
}

func (m *MockIngredientService) ListIngredients(_ context.Context, _ domain.ListOptions) ([]domain.Ingredient, error) {
	return m.ingredients, nil
}

func (m *MockIngredientService) GetIngredient(_ context.Context, id int64) (*domain.Ingredient, error) {
	return &domain.Ingredient{ID: id}, nil
}

func (m *MockIngredientService) CreateIngredient(_ context.Context, in application.IngredientInput) (*domain.Ingredient, error) {
	m.created++
	return &domain.Ingredient{ID: 1, Title: *in.Title}, nil
}

func (m *MockIngredientService) UpdateIngredient(_ context.Context, id int64, _ application.IngredientInput, _ bool) (*domain.Ingredient, error) {
	return &domain.Ingredient{ID: id}, nil
}

func (m *MockIngredientService) DeleteIngredient(_ context.Context, _ int64) error {
	return nil
}

// MockPantryService stores rows per owner so scoping can be asserted.
type MockPantryService struct {
	items    map[int64]domain.UserIngredient
	lastUser string
}

func (m *MockPantryService) ListUserIngredients(_ context.Context, userID string, _ domain.ListOptions) ([]domain.UserIngredient, error) {
	m.lastUser = userID
	out := []domain.UserIngredient{}
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockPantryService) GetUserIngredient(_ context.Context, userID string, id int64) (*domain.UserIngredient, error) {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return nil, foodErrors.ErrNotFound
	}
	return &item, nil
}

func (m *MockPantryService) CreateUserIngredient(_ context.Context, userID string, in application.PantryInput) (*domain.UserIngredient, error) {
	m.lastUser = userID
	ve := &foodErrors.ValidationErrors{}
	if in.IngredientID == nil {
		ve.Add(foodErrors.NewRequiredError("ingredient_id"))
	}
	if in.Quantity == nil {
		ve.Add(foodErrors.NewRequiredError("quantity"))
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}
	return &domain.UserIngredient{ID: 1, UserID: userID, IngredientID: *in.IngredientID, Quantity: *in.Quantity}, nil
}

func (m *MockPantryService) UpdateUserIngredient(ctx context.Context, userID string, id int64, _ application.PantryInput, _ bool) (*domain.UserIngredient, error) {
	return m.GetUserIngredient(ctx, userID, id)
}

func (m *MockPantryService) DeleteUserIngredient(ctx context.Context, userID string, id int64) error {
	_, err := m.GetUserIngredient(ctx, userID, id)
	return err
}

type MockCartService struct {
	lastUser string
}

func (m *MockCartService) ListCartItems(_ context.Context, userID string, _ domain.ListOptions) ([]domain.CartItem, error) {
	m.lastUser = userID
	return []domain.CartItem{}, nil
}

func (m *MockCartService) GetCartItem(_ context.Context, _ string, _ int64) (*domain.CartItem, error) {
	return nil, foodErrors.ErrNotFound
}

func (m *MockCartService) CreateCartItem(_ context.Context, userID string, in application.CartInput) (*domain.CartItem, error) {
	m.lastUser = userID
	return nil, foodErrors.NewValidationError("", "The fields user, ingredient must make a unique set.")
}

func (m *MockCartService) UpdateCartItem(_ context.Context, _ string, _ int64, _ application.CartInput, _ bool) (*domain.CartItem, error) {
	return nil, foodErrors.ErrNotFound
}

func (m *MockCartService) DeleteCartItem(_ context.Context, _ string, _ int64) error {
	return foodErrors.ErrNotFound
}

// MockRecipeService pages over Total generated recipes.
type MockRecipeService struct {
	Total    int
	lastOpts domain.ListOptions
	fail     bool
}

func (m *MockRecipeService) ListRecipes(_ context.Context, opts domain.ListOptions) (domain.Page[domain.Recipe], error) {
	m.lastOpts = opts
	if m.fail {
		return domain.Page[domain.Recipe]{}, errors.New("connection reset")
	}
	page := domain.Page[domain.Recipe]{Count: m.Total, Items: []domain.Recipe{}}
	for i := opts.Offset; i < m.Total && i < opts.Offset+opts.Limit; i++ {
		page.Items = append(page.Items, domain.Recipe{ID: int64(i + 1), Ingredients: []domain.Ingredient{}})
	}
	return page, nil
}

func (m *MockRecipeService) GetRecipe(_ context.Context, id int64) (*domain.Recipe, error) {
	return &domain.Recipe{ID: id, Ingredients: []domain.Ingredient{}}, nil
}

func (m *MockRecipeService) CreateRecipe(_ context.Context, _ application.RecipeInput) (*domain.Recipe, error) {
	return nil, foodErrors.NewValidationError("code", "recipe with this code already exists.")
}

func (m *MockRecipeService) UpdateRecipe(_ context.Context, id int64, _ application.RecipeInput, _ bool) (*domain.Recipe, error) {
	return &domain.Recipe{ID: id}, nil
}

func (m *MockRecipeService) DeleteRecipe(_ context.Context, _ int64) error {
	return nil
}

type MockRecipeIngredientService struct {
	lastOpts domain.ListOptions
}

func (m *MockRecipeIngredientService) ListRecipeIngredients(_ context.Context, opts domain.ListOptions) (domain.Page[domain.RecipeIngredient], error) {
	m.lastOpts = opts
	return domain.Page[domain.RecipeIngredient]{}, nil
}

func (m *MockRecipeIngredientService) GetRecipeIngredient(_ context.Context, id int64) (*domain.RecipeIngredient, error) {
	return &domain.RecipeIngredient{ID: id}, nil
}

func (m *MockRecipeIngredientService) CreateRecipeIngredient(_ context.Context, _ application.RecipeIngredientInput) (*domain.RecipeIngredient, error) {
	return &domain.RecipeIngredient{ID: 1}, nil
}

func (m *MockRecipeIngredientService) UpdateRecipeIngredient(_ context.Context, id int64, _ application.RecipeIngredientInput, _ bool) (*domain.RecipeIngredient, error) {
	return &domain.RecipeIngredient{ID: id}, nil
}

func (m *MockRecipeIngredientService) DeleteRecipeIngredient(_ context.Context, _ int64) error {
	return nil
}
