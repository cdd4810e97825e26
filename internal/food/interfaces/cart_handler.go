package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type CartServiceInterface interface {
	ListCartItems(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.CartItem, error)
	GetCartItem(ctx context.Context, userID string, id int64) (*domain.CartItem, error)
	CreateCartItem(ctx context.Context, userID string, in application.CartInput) (*domain.CartItem, error)
	UpdateCartItem(ctx context.Context, userID string, id int64, in application.CartInput, partial bool) (*domain.CartItem, error)
	DeleteCartItem(ctx context.Context, userID string, id int64) error
}

type CartHandler struct {
	responder
	service CartServiceInterface
	config  EndpointConfig
}

func NewCartHandler(service CartServiceInterface, config EndpointConfig, respondJSON RespondJSON, respondError RespondError) *CartHandler {
	if service == nil {
		panic("Service and response functions must not be nil")
	}
	return &CartHandler{
		responder: newResponder(respondJSON, respondError),
		service:   service,
		config:    config,
	}
}

func (h *CartHandler) ListCartItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	items, err := h.service.ListCartItems(r.Context(), userID, h.config.listOptions(r.URL.Query()))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, items)
}

func (h *CartHandler) CreateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	var in application.CartInput
	if !h.decode(w, r, &in) {
		return
	}
	item, err := h.service.CreateCartItem(r.Context(), userID, in)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, item)
}

func (h *CartHandler) GetCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	item, err := h.service.GetCartItem(r.Context(), userID, id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in application.CartInput
	if !h.decode(w, r, &in) {
		return
	}
	item, err := h.service.UpdateCartItem(r.Context(), userID, id, in, isPartial(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

func (h *CartHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteCartItem(r.Context(), userID, id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.noContent(w)
}
