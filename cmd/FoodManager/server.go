package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/config"
	"github.com/sebuszqo/FoodManager/internal/food/interfaces"
	"github.com/sebuszqo/FoodManager/internal/logger"
	"github.com/sebuszqo/FoodManager/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

type healthChecker interface {
	Health(ctx context.Context) map[string]string
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("JSON encoding error")
	}
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

type Server struct {
	router         *http.ServeMux
	db             healthChecker
	authMiddleware *auth.Middleware
	userHandler    *user.Handler
	foodHandlers   interfaces.Handlers
}

func NewServer(db healthChecker, authMiddleware *auth.Middleware, userHandler *user.Handler, foodHandlers interfaces.Handlers) *Server {
	return &Server{
		router:         http.NewServeMux(),
		db:             db,
		authMiddleware: authMiddleware,
		userHandler:    userHandler,
		foodHandlers:   foodHandlers,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusNotFound, Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, map[string]interface{}{
		"status":   readiness(status),
		"database": health,
	})
}

func readiness(status int) string {
	if status == http.StatusOK {
		return "ready"
	}
	return "unavailable"
}

func (s *Server) RegisterRoutes() {
	routes := []interfaces.Route{
		{Pattern: "GET /api/ready", Handler: s.handleReady},
		{Pattern: "GET /api/profile", Handler: s.userHandler.HandleGetUserProfile, Policy: auth.AlwaysAuthenticated},
	}
	routes = append(routes, s.foodHandlers.Routes()...)

	interfaces.Register(s.router, routes, s.authMiddleware.Protect)
	s.router.Handle("/", http.HandlerFunc(notFoundHandler))
}

// Handler wraps the router with request logging and CORS.
func (s *Server) Handler(log logrus.FieldLogger, corsCfg config.CORSConfig) http.Handler {
	withCORS := cors.Handler(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", logger.RequestIDHeader},
		ExposedHeaders: []string{logger.RequestIDHeader},
		MaxAge:         300,
	})
	return logger.Middleware(log)(withCORS(s.router))
}
