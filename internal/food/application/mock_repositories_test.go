package application

import (
	"context"
	"errors"
	"sort"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
	foodErrors "github.com/sebuszqo/FoodManager/internal/food/errors"
)

var errDatabase = errors.New("database unavailable")

type MockCategoryRepository struct {
	Categories map[int64]domain.Category
	nextID     int64
}

func NewMockCategoryRepository(categories ...domain.Category) *MockCategoryRepository {
	m := &MockCategoryRepository{Categories: make(map[int64]domain.Category)}
	for _, c := range categories {
		m.Categories[c.ID] = c
		if c.ID > m.nextID {
			m.nextID = c.ID
		}
	}
	return m
}

func (m *MockCategoryRepository) List(_ context.Context, _ domain.ListOptions) ([]domain.Category, error) {
	out := []domain.Category{}
	for _, c := range m.Categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MockCategoryRepository) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := m.Categories[id]
	if !ok {
		return nil, foodErrors.ErrNotFound
	}
	return &c, nil
}

func (m *MockCategoryRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.Categories[id]
	return ok, nil
}

func (m *MockCategoryRepository) Create(_ context.Context, c *domain.Category) error {
	m.nextID++
	c.ID = m.nextID
	m.Categories[c.ID] = *c
	return nil
}

func (m *MockCategoryRepository) Update(_ context.Context, c *domain.Category) error {
	if _, ok := m.Categories[c.ID]; !ok {
		return foodErrors.ErrNotFound
	}
	m.Categories[c.ID] = *c
	return nil
}

func (m *MockCategoryRepository) Delete(_ context.Context, id int64) error {
	if _, ok := m.Categories[id]; !ok {
		return foodErrors.ErrNotFound
	}
	delete(m.Categories, id)
	return nil
}

type MockIngredientRepository struct {
	Ingredients map[int64]domain.Ingredient
	categories  *MockCategoryRepository
	nextID      int64
	ExistsErr   error
}

func NewMockIngredientRepository(categories *MockCategoryRepository) *MockIngredientRepository {
	return &MockIngredientRepository{Ingredients: make(map[int64]domain.Ingredient), categories: categories}
}

func (m *MockIngredientRepository) List(_ context.Context, _ domain.ListOptions) ([]domain.Ingredient, error) {
	out := []domain.Ingredient{}
	for _, i := range m.Ingredients {
		out = append(out, i)
	}
	return out, nil
}

func (m *MockIngredientRepository) FindByID(_ context.Context, id int64) (*domain.Ingredient, error) {
	i, ok := m.Ingredients[id]
	if !ok {
		return nil, foodErrors.ErrNotFound
	}
	if c, ok := m.categories.Categories[i.CategoryID]; ok {
		i.Category = c
	}
	return &i, nil
}

func (m *MockIngredientRepository) Exists(_ context.Context, id int64) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	_, ok := m.Ingredients[id]
	return ok, nil
}

func (m *MockIngredientRepository) Create(_ context.Context, i *domain.Ingredient) error {
	m.nextID++
	i.ID = m.nextID
	m.Ingredients[i.ID] = *i
	return nil
}

func (m *MockIngredientRepository) Update(_ context.Context, i *domain.Ingredient) error {
	m.Ingredients[i.ID] = *i
	return nil
}

func (m *MockIngredientRepository) Delete(_ context.Context, id int64) error {
	delete(m.Ingredients, id)
	return nil
}

type MockUserIngredientRepository struct {
	Items  map[int64]domain.UserIngredient
	nextID int64
}

func NewMockUserIngredientRepository() *MockUserIngredientRepository {
	return &MockUserIngredientRepository{Items: make(map[int64]domain.UserIngredient)}
}

func (m *MockUserIngredientRepository) List(_ context.Context, opts domain.ListOptions) ([]domain.UserIngredient, error) {
	out := []domain.UserIngredient{}
	for _, item := range m.Items {
		if item.UserID == opts.OwnerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockUserIngredientRepository) FindByID(_ context.Context, userID string, id int64) (*domain.UserIngredient, error) {
	item, ok := m.Items[id]
	if !ok || item.UserID != userID {
		return nil, foodErrors.ErrNotFound
	}
	return &item, nil
}

func (m *MockUserIngredientRepository) Create(_ context.Context, item *domain.UserIngredient) error {
	for _, existing := range m.Items {
		if existing.UserID == item.UserID && existing.IngredientID == item.IngredientID {
			return foodErrors.NewValidationError("", "The fields user, ingredient must make a unique set.")
		}
	}
	m.nextID++
	item.ID = m.nextID
	m.Items[item.ID] = *item
	return nil
}

func (m *MockUserIngredientRepository) Update(_ context.Context, item *domain.UserIngredient) error {
	m.Items[item.ID] = *item
	return nil
}

func (m *MockUserIngredientRepository) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := m.FindByID(ctx, userID, id); err != nil {
		return err
	}
	delete(m.Items, id)
	return nil
}

type MockCartRepository struct {
	Items  map[int64]domain.CartItem
	nextID int64
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{Items: make(map[int64]domain.CartItem)}
}

func (m *MockCartRepository) List(_ context.Context, opts domain.ListOptions) ([]domain.CartItem, error) {
	out := []domain.CartItem{}
	for _, item := range m.Items {
		if item.UserID == opts.OwnerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockCartRepository) FindByID(_ context.Context, userID string, id int64) (*domain.CartItem, error) {
	item, ok := m.Items[id]
	if !ok || item.UserID != userID {
		return nil, foodErrors.ErrNotFound
	}
	return &item, nil
}

func (m *MockCartRepository) Create(_ context.Context, item *domain.CartItem) error {
	m.nextID++
	item.ID = m.nextID
	m.Items[item.ID] = *item
	return nil
}

func (m *MockCartRepository) Update(_ context.Context, item *domain.CartItem) error {
	m.Items[item.ID] = *item
	return nil
}

func (m *MockCartRepository) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := m.FindByID(ctx, userID, id); err != nil {
		return err
	}
	delete(m.Items, id)
	return nil
}

type MockRecipeRepository struct {
	Recipes map[int64]domain.Recipe
	nextID  int64
}

func NewMockRecipeRepository() *MockRecipeRepository {
	return &MockRecipeRepository{Recipes: make(map[int64]domain.Recipe)}
}

func (m *MockRecipeRepository) sorted() []domain.Recipe {
	out := []domain.Recipe{}
	for _, r := range m.Recipes {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *MockRecipeRepository) List(_ context.Context, opts domain.ListOptions) ([]domain.Recipe, error) {
	all := m.sorted()
	if opts.Offset >= len(all) {
		return []domain.Recipe{}, nil
	}
	all = all[opts.Offset:]
	if opts.Limit > 0 && opts.Limit < len(all) {
		all = all[:opts.Limit]
	}
	return all, nil
}

func (m *MockRecipeRepository) Count(_ context.Context, _ domain.ListOptions) (int, error) {
	return len(m.Recipes), nil
}

func (m *MockRecipeRepository) FindByID(_ context.Context, id int64) (*domain.Recipe, error) {
	r, ok := m.Recipes[id]
	if !ok {
		return nil, foodErrors.ErrNotFound
	}
	return &r, nil
}

func (m *MockRecipeRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.Recipes[id]
	return ok, nil
}

func (m *MockRecipeRepository) Create(_ context.Context, r *domain.Recipe) error {
	for _, existing := range m.Recipes {
		if existing.Code == r.Code {
			return foodErrors.NewValidationError("code", "recipe with this code already exists.")
		}
	}
	m.nextID++
	r.ID = m.nextID
	m.Recipes[r.ID] = *r
	return nil
}

func (m *MockRecipeRepository) Update(_ context.Context, r *domain.Recipe) error {
	m.Recipes[r.ID] = *r
	return nil
}

func (m *MockRecipeRepository) Delete(_ context.Context, id int64) error {
	delete(m.Recipes, id)
	return nil
}

type MockRecipeIngredientRepository struct {
	Links       map[int64]domain.RecipeIngredient
	ingredients *MockIngredientRepository
	nextID      int64
}

func NewMockRecipeIngredientRepository(ingredients *MockIngredientRepository) *MockRecipeIngredientRepository {
	return &MockRecipeIngredientRepository{Links: make(map[int64]domain.RecipeIngredient), ingredients: ingredients}
}

func (m *MockRecipeIngredientRepository) List(_ context.Context, _ domain.ListOptions) ([]domain.RecipeIngredient, error) {
	out := []domain.RecipeIngredient{}
	for _, l := range m.Links {
		out = append(out, l)
	}
	return out, nil
}

func (m *MockRecipeIngredientRepository) Count(_ context.Context, _ domain.ListOptions) (int, error) {
	return len(m.Links), nil
}

func (m *MockRecipeIngredientRepository) FindByID(_ context.Context, id int64) (*domain.RecipeIngredient, error) {
	l, ok := m.Links[id]
	if !ok {
		return nil, foodErrors.ErrNotFound
	}
	return &l, nil
}

func (m *MockRecipeIngredientRepository) Create(_ context.Context, l *domain.RecipeIngredient) error {
	m.nextID++
	l.ID = m.nextID
	m.Links[l.ID] = *l
	return nil
}

func (m *MockRecipeIngredientRepository) Update(_ context.Context, l *domain.RecipeIngredient) error {
	m.Links[l.ID] = *l
	return nil
}

func (m *MockRecipeIngredientRepository) Delete(_ context.Context, id int64) error {
	delete(m.Links, id)
	return nil
}

func (m *MockRecipeIngredientRepository) IngredientsForRecipe(_ context.Context, recipeID int64) ([]domain.Ingredient, error) {
	out := []domain.Ingredient{}
	for _, l := range m.Links {
		if l.RecipeID == recipeID {
			out = append(out, m.ingredients.Ingredients[l.IngredientID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}
