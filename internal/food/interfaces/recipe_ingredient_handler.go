package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type RecipeIngredientServiceInterface interface {
	ListRecipeIngredients(ctx context.Context, opts domain.ListOptions) (domain.Page[domain.RecipeIngredient], error)
	GetRecipeIngredient(ctx context.Context, id int64) (*domain.RecipeIngredient, error)
	CreateRecipeIngredient(ctx context.Context, in application.RecipeIngredientInput) (*domain.RecipeIngredient, error)
	UpdateRecipeIngredient(ctx context.Context, id int64, in application.RecipeIngredientInput, partial bool) (*domain.RecipeIngredient, error)
	DeleteRecipeIngredient(ctx context.Context, id int64) error
}

// RecipeIngredientHandler serves /recipe-ingredient and, with a config that
// searches ingredient titles, the read-only /ingredient-recipe listing.
type RecipeIngredientHandler struct {
	responder
	service RecipeIngredientServiceInterface
	config  EndpointConfig
}

func NewRecipeIngredientHandler(service RecipeIngredientServiceInterface, config EndpointConfig, respondJSON RespondJSON, respondError RespondError) *RecipeIngredientHandler {
	if service == nil {
		panic("Service and response functions must not be nil")
	}
	return &RecipeIngredientHandler{
		responder: newResponder(respondJSON, respondError),
		service:   service,
		config:    config,
	}
}

func (h *RecipeIngredientHandler) ListRecipeIngredients(w http.ResponseWriter, r *http.Request) {
	servePage(h.responder, h.config, w, r, h.service.ListRecipeIngredients)
}

func (h *RecipeIngredientHandler) CreateRecipeIngredient(w http.ResponseWriter, r *http.Request) {
	var in application.RecipeIngredientInput
	if !h.decode(w, r, &in) {
		return
	}
	link, err := h.service.CreateRecipeIngredient(r.Context(), in)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, link)
}

func (h *RecipeIngredientHandler) GetRecipeIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	link, err := h.service.GetRecipeIngredient(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, link)
}

func (h *RecipeIngredientHandler) UpdateRecipeIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in application.RecipeIngredientInput
	if !h.decode(w, r, &in) {
		return
	}
	link, err := h.service.UpdateRecipeIngredient(r.Context(), id, in, isPartial(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, link)
}

func (h *RecipeIngredientHandler) DeleteRecipeIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteRecipeIngredient(r.Context(), id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.noContent(w)
}
