package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/sebuszqo/FoodManager/internal/logger"
)

type Handler struct {
	userService   Service
	currentUserID func(ctx context.Context) string
	respondJSON   func(w http.ResponseWriter, status int, payload interface{})
	respondError  func(w http.ResponseWriter, status int, message string, fields ...map[string][]string)
}

// NewHandler builds the profile handler. currentUserID reads the caller set by
// the authentication middleware.
func NewHandler(
	userService Service,
	currentUserID func(ctx context.Context) string,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string, fields ...map[string][]string),
) *Handler {
	if userService == nil || currentUserID == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &Handler{
		userService:   userService,
		currentUserID: currentUserID,
		respondJSON:   respondJSON,
		respondError:  respondError,
	}
}

func (h *Handler) HandleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID := h.currentUserID(r.Context())
	if userID == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, "User not found")
			return
		}
		logger.FromContext(r.Context()).WithError(err).Error("Could not fetch user data")
		h.respondError(w, http.StatusInternalServerError, "Could not fetch user data")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"user_id":    user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"is_staff":   user.IsStaff,
			"created_at": user.CreatedAt,
			"updated_at": user.UpdatedAt,
		},
	})
}
