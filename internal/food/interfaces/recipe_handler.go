package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type RecipeServiceInterface interface {
	ListRecipes(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.Recipe], error)
	GetRecipe(ctx context.Context, id int64) (*domain.Recipe, error)
	CreateRecipe(ctx context.Context, in application.RecipeInput) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, id int64, in application.RecipeInput, partial bool) (*domain.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error
}

type RecipeHandler struct {
	responder
	service RecipeServiceInterface
	config  EndpointConfig
}

func NewRecipeHandler(service RecipeServiceInterface, config EndpointConfig, respondJSON RespondJSON, respondError RespondError) *RecipeHandler {
	if service == nil {
		panic("Service and response functions must not be nil")
	}
	return &RecipeHandler{
		responder: newResponder(respondJSON, respondError),
		service:   service,
		config:    config,
	}
}

func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	servePage(h.responder, h.config, w, r, h.service.ListRecipes)
}

func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var in application.RecipeInput
	if !h.decode(w, r, &in) {
		return
	}
	recipe, err := h.service.CreateRecipe(r.Context(), in)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, recipe)
}

func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in application.RecipeInput
	if !h.decode(w, r, &in) {
		return
	}
	recipe, err := h.service.UpdateRecipe(r.Context(), id, in, isPartial(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteRecipe(r.Context(), id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.noContent(w)
}
