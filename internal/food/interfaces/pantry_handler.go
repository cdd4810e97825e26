package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type PantryServiceInterface interface {
	ListUserIngredients(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.UserIngredient, error)
	GetUserIngredient(ctx context.Context, userID string, id int64) (*domain.UserIngredient, error)
	CreateUserIngredient(ctx context.Context, userID string, in application.PantryInput) (*domain.UserIngredient, error)
	UpdateUserIngredient(ctx context.Context, userID string, id int64, in application.PantryInput, partial bool) (*domain.UserIngredient, error)
	DeleteUserIngredient(ctx context.Context, userID string, id int64) error
}

// PantryHandler serves /user-ingredient. Every call is scoped to the caller.
type PantryHandler struct {
	responder
	service PantryServiceInterface
	config  EndpointConfig
}

func NewPantryHandler(service PantryServiceInterface, config EndpointConfig, respondJSON RespondJSON, respondError RespondError) *PantryHandler {
	if service == nil {
		panic("Service and response functions must not be nil")
	}
	return &PantryHandler{
		responder: newResponder(respondJSON, respondError),
		service:   service,
		config:    config,
	}
}

// caller returns the authenticated user id, answering 401 when there is none.
func (h responder) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
		return "", false
	}
	return userID, true
}

func (h *PantryHandler) ListUserIngredients(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	items, err := h.service.ListUserIngredients(r.Context(), userID, h.config.listOptions(r.URL.Query()))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, items)
}

func (h *PantryHandler) CreateUserIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	var in application.PantryInput
	if !h.decode(w, r, &in) {
		return
	}
	item, err := h.service.CreateUserIngredient(r.Context(), userID, in)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, item)
}

func (h *PantryHandler) GetUserIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	item, err := h.service.GetUserIngredient(r.Context(), userID, id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *PantryHandler) UpdateUserIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in application.PantryInput
	if !h.decode(w, r, &in) {
		return
	}
	item, err := h.service.UpdateUserIngredient(r.Context(), userID, id, in, isPartial(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *PantryHandler) DeleteUserIngredient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteUserIngredient(r.Context(), userID, id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.noContent(w)
}
