package application

import (
	"context"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

type CartService struct {
	repo        domain.CartRepository
	ingredients domain.IngredientRepository
}

func NewCartService(repo domain.CartRepository, ingredients domain.IngredientRepository) *CartService {
	return &CartService{repo: repo, ingredients: ingredients}
}

func (s *CartService) ListCartItems(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.CartItem, error) {
	opts.OwnerID = userID
	return s.repo.List(ctx, opts)
}

func (s *CartService) GetCartItem(ctx context.Context, userID string, id int64) (*domain.CartItem, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *CartService) CreateCartItem(ctx context.Context, userID string, in CartInput) (*domain.CartItem, error) {
	item := &domain.CartItem{UserID: userID}
	if err := s.apply(ctx, item, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, item.ID)
}

func (s *CartService) UpdateCartItem(ctx context.Context, userID string, id int64, in CartInput, partial bool) (*domain.CartItem, error) {
	item, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, item, in, partial); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, id)
}

func (s *CartService) DeleteCartItem(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *CartService) apply(ctx context.Context, item *domain.CartItem, in CartInput, partial bool) error {
	p := presence{partial: partial}
	if p.sent("ingredient_id", in.IngredientID != nil) {
		item.IngredientID = *in.IngredientID
	}
	if err := p.err(); err != nil {
		return err
	}
	// buy has a default, so it stays as stored unless sent, on PUT too.
	if in.Buy != nil {
		item.Buy = *in.Buy
	}

	if err := item.Validate(); err != nil {
		return err
	}
	if in.IngredientID != nil {
		return checkExists(ctx, s.ingredients.Exists, "ingredient_id", *in.IngredientID)
	}
	return nil
}
