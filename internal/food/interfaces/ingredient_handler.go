package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type IngredientServiceInterface interface {
	ListIngredients(ctx context.Context, opts domain.ListOptions) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error)
	CreateIngredient(ctx context.Context, in application.IngredientInput) (*domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, id int64, in application.IngredientInput, partial bool) (*domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, id int64) error
}

type IngredientHandler struct {
	responder
	service IngredientServiceInterface
	config  EndpointConfig
}

func NewIngredientHandler(service IngredientServiceInterface, config EndpointConfig, respondJSON RespondJSON, respondError RespondError) *IngredientHandler {
	if service == nil {
		panic("Service and response functions must not be nil")
	}
	return &IngredientHandler{
		responder: newResponder(respondJSON, respondError),
		service:   service,
		config:    config,
	}
}

func (h *IngredientHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.service.ListIngredients(r.Context(), h.config.listOptions(r.URL.Query()))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, ingredients)
}

func (h *IngredientHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var in application.IngredientInput
	if !h.decode(w, r, &in) {
		return
	}
	ingredient, err := h.service.CreateIngredient(r.Context(), in)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, ingredient)
}

func (h *IngredientHandler) GetIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	ingredient, err := h.service.GetIngredient(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, ingredient)
}

func (h *IngredientHandler) UpdateIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in application.IngredientInput
	if !h.decode(w, r, &in) {
		return
	}
	ingredient, err := h.service.UpdateIngredient(r.Context(), id, in, isPartial(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, ingredient)
}

func (h *IngredientHandler) DeleteIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteIngredient(r.Context(), id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.noContent(w)
}
