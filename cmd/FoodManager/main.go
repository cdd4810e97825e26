package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	database "github.com/sebuszqo/FoodManager/db"
	"github.com/sebuszqo/FoodManager/internal/auth"
	"github.com/sebuszqo/FoodManager/internal/config"
	"github.com/sebuszqo/FoodManager/internal/food/application"
	"github.com/sebuszqo/FoodManager/internal/food/infrastructure"
	"github.com/sebuszqo/FoodManager/internal/food/interfaces"
	"github.com/sebuszqo/FoodManager/internal/logger"
	"github.com/sebuszqo/FoodManager/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Missing configuration, update to start server: %v", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	dbService, err := database.NewDBService(cfg.Database)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if cfg.Database.MigrateOnStart {
		if err := database.ApplyMigrations(context.Background(), dbService.DB); err != nil {
			log.Fatalf("Could not apply migrations: %v", err)
		}
		log.Info("Database schema is up to date")
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWT.Secret)
	if err != nil {
		log.Fatalf("Could not initialize JWT manager: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService, auth.UserIDFromContext, respondJSON, respondError)
	authMiddleware := auth.NewMiddleware(jwtManager, userService)

	ingredientCategoryRepo := infrastructure.NewCategoryRepository(dbService.DB, infrastructure.IngredientCategoryTable)
	recipeCategoryRepo := infrastructure.NewCategoryRepository(dbService.DB, infrastructure.RecipeCategoryTable)
	ingredientRepo := infrastructure.NewIngredientRepository(dbService.DB)
	pantryRepo := infrastructure.NewUserIngredientRepository(dbService.DB)
	cartRepo := infrastructure.NewCartRepository(dbService.DB)
	recipeRepo := infrastructure.NewRecipeRepository(dbService.DB)
	recipeIngredientRepo := infrastructure.NewRecipeIngredientRepository(dbService.DB)

	ingredientCategoryService := application.NewCategoryService(ingredientCategoryRepo)
	recipeCategoryService := application.NewCategoryService(recipeCategoryRepo)
	ingredientService := application.NewIngredientService(ingredientRepo, ingredientCategoryRepo)
	pantryService := application.NewPantryService(pantryRepo, ingredientRepo)
	cartService := application.NewCartService(cartRepo, ingredientRepo)
	recipeService := application.NewRecipeService(recipeRepo, recipeCategoryRepo, recipeIngredientRepo)
	recipeIngredientService := application.NewRecipeIngredientService(recipeIngredientRepo, recipeRepo, ingredientRepo)

	handlers := interfaces.Handlers{
		IngredientCategories: interfaces.NewCategoryHandler(ingredientCategoryService, interfaces.CategoryEndpoint, respondJSON, respondError),
		Ingredients:          interfaces.NewIngredientHandler(ingredientService, interfaces.IngredientEndpoint, respondJSON, respondError),
		Pantry:               interfaces.NewPantryHandler(pantryService, interfaces.OwnedEndpoint, respondJSON, respondError),
		Cart:                 interfaces.NewCartHandler(cartService, interfaces.OwnedEndpoint, respondJSON, respondError),
		RecipeCategories:     interfaces.NewCategoryHandler(recipeCategoryService, interfaces.CategoryEndpoint, respondJSON, respondError),
		Recipes:              interfaces.NewRecipeHandler(recipeService, interfaces.RecipeEndpoint, respondJSON, respondError),
		RecipeIngredients:    interfaces.NewRecipeIngredientHandler(recipeIngredientService, interfaces.RecipeIngredientEndpoint, respondJSON, respondError),
		IngredientRecipes:    interfaces.NewRecipeIngredientHandler(recipeIngredientService, interfaces.IngredientRecipeEndpoint, respondJSON, respondError),
	}

	server := NewServer(dbService, authMiddleware, userHandler, handlers)
	server.RegisterRoutes()

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      server.Handler(log, cfg.CORS),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Infof("Server starting on %s...", cfg.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
}
