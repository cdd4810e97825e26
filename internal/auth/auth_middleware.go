package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sebuszqo/FoodManager/internal/logger"
	"github.com/sebuszqo/FoodManager/internal/user"
)

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Identity is the authenticated caller as seen by handlers.
type Identity struct {
	UserID   string
	Username string
	IsStaff  bool
}

type contextKey string

const identityContextKey contextKey = "identity"

func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}

// UserIDFromContext returns the caller's id, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	id, _ := IdentityFromContext(ctx)
	return id.UserID
}

type UserLookup interface {
	GetUserByID(ctx context.Context, userID string) (*user.User, error)
}

type Middleware struct {
	jwtManager JWTManagerInterface
	users      UserLookup
}

func NewMiddleware(jwtManager JWTManagerInterface, users UserLookup) *Middleware {
	if jwtManager == nil || users == nil {
		panic("JWT manager and user lookup must not be nil")
	}
	return &Middleware{jwtManager: jwtManager, users: users}
}

// JWTAccessTokenMiddleware resolves the bearer token to an active user and
// stores its Identity in the request context.
func (m *Middleware) JWTAccessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeJSONError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			writeJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		userID, err := m.jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		u, err := m.users.GetUserByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				writeJSONError(w, http.StatusUnauthorized, user.ErrUserNotFound.Error())
				return
			}
			logger.FromContext(r.Context()).WithError(err).Error("Failed to load authenticated user")
			writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if !u.IsActive {
			writeJSONError(w, http.StatusUnauthorized, "User account is disabled")
			return
		}

		ctx := ContextWithIdentity(r.Context(), Identity{UserID: u.ID, Username: u.Username, IsStaff: u.IsStaff})
		logger.FromContext(ctx).WithField("user_id", u.ID).Debug("Authenticated request")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Protect authenticates the request and then enforces the privilege policy
// demands for its method. A nil policy leaves the route public.
func (m *Middleware) Protect(policy Policy, next http.Handler) http.Handler {
	if policy == nil {
		return next
	}
	return m.JWTAccessTokenMiddleware(RequirePrivilege(policy)(next))
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    statusCode,
	})
}
