package interfaces

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/user"
	"github.com/stretchr/testify/require"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string, fields ...map[string][]string) {
	payload := map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	}
	if len(fields) > 0 && len(fields[0]) > 0 {
		payload["errors"] = fields[0]
	}
	respondJSON(w, status, payload)
}

const (
	staffID  = "11111111-1111-1111-1111-111111111111"
	memberID = "22222222-2222-2222-2222-222222222222"
)

type stubUsers struct{}

func (stubUsers) GetUserByID(_ context.Context, id string) (*user.User, error) {
	switch id {
	case staffID:
		return &user.User{ID: staffID, Username: "chef", IsStaff: true, IsActive: true}, nil
	case memberID:
		return &user.User{ID: memberID, Username: "cook", IsActive: true}, nil
	}
	return nil, user.ErrUserNotFound
}

// testServer wires handlers through the real route table and auth middleware.
type testServer struct {
	t      *testing.T
	mux    *http.ServeMux
	tokens map[string]string
}

func newTestServer(t *testing.T, handlers Handlers) *testServer {
	t.Helper()
	manager, err := auth.NewJWTManager("interfaces-test")
	require.NoError(t, err)
	middleware := auth.NewMiddleware(manager, stubUsers{})

	mux := http.NewServeMux()
	Register(mux, handlers.Routes(), middleware.Protect)

	tokens := map[string]string{}
	for _, id := range []string{staffID, memberID} {
		tok, err := manager.GenerateAccessJWT(id, time.Minute)
		require.NoError(t, err)
		tokens[id] = tok
	}
	return &testServer{t: t, mux: mux, tokens: tokens}
}

func (s *testServer) do(method, target, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.tokens[userID])
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// defaultHandlers builds every handler over the given mocks, filling the rest
// with empty ones.
func defaultHandlers(m *mockServices) Handlers {
	return Handlers{
		IngredientCategories: NewCategoryHandler(m.categories, CategoryEndpoint, respondJSON, respondError),
		Ingredients:          NewIngredientHandler(m.ingredients, IngredientEndpoint, respondJSON, respondError),
		Pantry:               NewPantryHandler(m.pantry, OwnedEndpoint, respondJSON, respondError),
		Cart:                 NewCartHandler(m.cart, OwnedEndpoint, respondJSON, respondError),
		RecipeCategories:     NewCategoryHandler(m.categories, CategoryEndpoint, respondJSON, respondError),
		Recipes:              NewRecipeHandler(m.recipes, RecipeEndpoint, respondJSON, respondError),
		RecipeIngredients:    NewRecipeIngredientHandler(m.links, RecipeIngredientEndpoint, respondJSON, respondError),
		IngredientRecipes:    NewRecipeIngredientHandler(m.links, IngredientRecipeEndpoint, respondJSON, respondError),
	}
}
