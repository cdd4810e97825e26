package interfaces

import (
	"context"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, opts domain.ListOptions) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, in application.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, in application.CategoryInput, partial bool) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// CategoryHandler serves /ingredient-category and /recipe-category.
type CategoryHandler struct {
	responder
	service CategoryServiceInterface
	config  EndpointConfig
}

func NewCategoryHandler(service CategoryServiceInterface, config EndpointConfig, respondJSON RespondJSON, respondError RespondError) *CategoryHandler {
	if service == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		responder: newResponder(respondJSON, respondError),
		service:   service,
		config:    config,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context(), h.config.listOptions(r.URL.Query()))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in application.CategoryInput
	if !h.decode(w, r, &in) {
		return
	}
	category, err := h.service.CreateCategory(r.Context(), in)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	category, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

// UpdateCategory handles PUT and PATCH.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in application.CategoryInput
	if !h.decode(w, r, &in) {
		return
	}
	category, err := h.service.UpdateCategory(r.Context(), id, in, isPartial(r))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.noContent(w)
}
