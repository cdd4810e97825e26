package interfaces

import (
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

var (
	CategoryEndpoint = EndpointConfig{
		SearchFields:    []string{domain.FieldTitle},
		OrderingFields:  []string{domain.FieldID, domain.FieldTitle},
		DefaultOrdering: []domain.Ordering{{Field: domain.FieldTitle}},
		CollectionAuth:  auth.CollectionPolicy,
		ItemAuth:        auth.AlwaysElevated,
	}

	IngredientEndpoint = EndpointConfig{
		SearchFields:    []string{domain.FieldTitle, domain.FieldCategory},
		OrderingFields:  []string{domain.FieldID, domain.FieldTitle},
		DefaultOrdering: []domain.Ordering{{Field: domain.FieldTitle}},
		CollectionAuth:  auth.CollectionPolicy,
		ItemAuth:        auth.AlwaysElevated,
	}

	// Shared by /user-ingredient and /user-cart.
	OwnedEndpoint = EndpointConfig{
		SearchFields:    []string{domain.FieldIngredient},
		OrderingFields:  []string{domain.FieldID, domain.FieldIngredient},
		DefaultOrdering: []domain.Ordering{{Field: domain.FieldIngredient}},
		CollectionAuth:  auth.AlwaysAuthenticated,
		ItemAuth:        auth.AlwaysAuthenticated,
	}

	RecipeEndpoint = EndpointConfig{
		SearchFields:    []string{domain.FieldTitle, domain.FieldCategory},
		OrderingFields:  []string{domain.FieldID, domain.FieldTitle},
		DefaultOrdering: []domain.Ordering{{Field: domain.FieldTitle}},
		Pagination:      DefaultPagination,
		CollectionAuth:  auth.CollectionPolicy,
		ItemAuth:        auth.ItemPolicy,
	}

	RecipeIngredientEndpoint = EndpointConfig{
		SearchFields:    []string{domain.FieldRecipe},
		OrderingFields:  []string{domain.FieldID, domain.FieldRecipe, domain.FieldIngredient},
		DefaultOrdering: []domain.Ordering{{Field: domain.FieldRecipe}, {Field: domain.FieldIngredient}},
		Pagination:      DefaultPagination,
		CollectionAuth:  auth.CollectionPolicy,
		ItemAuth:        auth.ItemPolicy,
	}

	IngredientRecipeEndpoint = EndpointConfig{
		SearchFields:    []string{domain.FieldIngredient},
		OrderingFields:  []string{domain.FieldID, domain.FieldRecipe, domain.FieldIngredient},
		DefaultOrdering: []domain.Ordering{{Field: domain.FieldRecipe}, {Field: domain.FieldIngredient}},
		Pagination:      DefaultPagination,
		CollectionAuth:  auth.AlwaysAuthenticated,
	}
)

// Route binds a method pattern to a handler and the policy guarding it.
// A nil Policy marks a public route.
type Route struct {
	Pattern string
	Handler http.HandlerFunc
	Policy  auth.Policy
}

type Handlers struct {
	IngredientCategories *CategoryHandler
	Ingredients          *IngredientHandler
	Pantry               *PantryHandler
	Cart                 *CartHandler
	RecipeCategories     *CategoryHandler
	Recipes              *RecipeHandler
	RecipeIngredients    *RecipeIngredientHandler
	IngredientRecipes    *RecipeIngredientHandler
}

type crud struct {
	list, create, get, update, remove http.HandlerFunc
}

func resourceRoutes(path string, cfg EndpointConfig, h crud) []Route {
	item := path + "/{id}"
	return []Route{
		{Pattern: "GET " + path, Handler: h.list, Policy: cfg.CollectionAuth},
		{Pattern: "POST " + path, Handler: h.create, Policy: cfg.CollectionAuth},
		{Pattern: "GET " + item, Handler: h.get, Policy: cfg.ItemAuth},
		{Pattern: "PUT " + item, Handler: h.update, Policy: cfg.ItemAuth},
		{Pattern: "PATCH " + item, Handler: h.update, Policy: cfg.ItemAuth},
		{Pattern: "DELETE " + item, Handler: h.remove, Policy: cfg.ItemAuth},
	}
}

// Routes returns the full /api route table for the food endpoints.
func (h Handlers) Routes() []Route {
	var routes []Route
	routes = append(routes, resourceRoutes("/api/ingredient-category", h.IngredientCategories.config, crud{
		h.IngredientCategories.ListCategories, h.IngredientCategories.CreateCategory,
		h.IngredientCategories.GetCategory, h.IngredientCategories.UpdateCategory, h.IngredientCategories.DeleteCategory,
	})...)
	routes = append(routes, resourceRoutes("/api/ingredient", h.Ingredients.config, crud{
		h.Ingredients.ListIngredients, h.Ingredients.CreateIngredient,
		h.Ingredients.GetIngredient, h.Ingredients.UpdateIngredient, h.Ingredients.DeleteIngredient,
	})...)
	routes = append(routes, resourceRoutes("/api/user-ingredient", h.Pantry.config, crud{
		h.Pantry.ListUserIngredients, h.Pantry.CreateUserIngredient,
		h.Pantry.GetUserIngredient, h.Pantry.UpdateUserIngredient, h.Pantry.DeleteUserIngredient,
	})...)
	routes = append(routes, resourceRoutes("/api/user-cart", h.Cart.config, crud{
		h.Cart.ListCartItems, h.Cart.CreateCartItem,
		h.Cart.GetCartItem, h.Cart.UpdateCartItem, h.Cart.DeleteCartItem,
	})...)
	routes = append(routes, resourceRoutes("/api/recipe-category", h.RecipeCategories.config, crud{
		h.RecipeCategories.ListCategories, h.RecipeCategories.CreateCategory,
		h.RecipeCategories.GetCategory, h.RecipeCategories.UpdateCategory, h.RecipeCategories.DeleteCategory,
	})...)
	routes = append(routes, resourceRoutes("/api/recipe", h.Recipes.config, crud{
		h.Recipes.ListRecipes, h.Recipes.CreateRecipe,
		h.Recipes.GetRecipe, h.Recipes.UpdateRecipe, h.Recipes.DeleteRecipe,
	})...)
	routes = append(routes, resourceRoutes("/api/recipe-ingredient", h.RecipeIngredients.config, crud{
		h.RecipeIngredients.ListRecipeIngredients, h.RecipeIngredients.CreateRecipeIngredient,
		h.RecipeIngredients.GetRecipeIngredient, h.RecipeIngredients.UpdateRecipeIngredient, h.RecipeIngredients.DeleteRecipeIngredient,
	})...)
	routes = append(routes, Route{
		Pattern: "GET /api/ingredient-recipe",
		Handler: h.IngredientRecipes.ListRecipeIngredients,
		Policy:  h.IngredientRecipes.config.CollectionAuth,
	})
	return routes
}

// Register mounts every route on mux, wrapping each with protect.
func Register(mux *http.ServeMux, routes []Route, protect func(auth.Policy, http.Handler) http.Handler) {
	for _, route := range routes {
		mux.Handle(route.Pattern, protect(route.Policy, route.Handler))
	}
}
