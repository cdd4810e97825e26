package application

import (
	"context"

	"github.com/sebuszqo/FoodManager/internal/food/domain"
)

// PantryService manages the caller's user-ingredient rows. userID always comes
// from the authenticated identity.
type PantryService struct {
	repo        domain.UserIngredientRepository
	ingredients domain.IngredientRepository
}

func NewPantryService(repo domain.UserIngredientRepository, ingredients domain.IngredientRepository) *PantryService {
	return &PantryService{repo: repo, ingredients: ingredients}
}

func (s *PantryService) ListUserIngredients(ctx context.Context, userID string, opts domain.ListOptions) ([]domain.UserIngredient, error) {
	opts.OwnerID = userID
	return s.repo.List(ctx, opts)
}

func (s *PantryService) GetUserIngredient(ctx context.Context, userID string, id int64) (*domain.UserIngredient, error) {
	return s.repo.FindByID(ctx, userID, id)
}

func (s *PantryService) CreateUserIngredient(ctx context.Context, userID string, in PantryInput) (*domain.UserIngredient, error) {
	item := &domain.UserIngredient{UserID: userID}
	if err := s.apply(ctx, item, in, false); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, userID, item.ID)
}

func (s *PantryService) UpdateUserIngredient(ctx context.Context, userID string, id int64, in PantryInput, partial bool) (*domain.UserIngredient, error) {
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

func (s *PantryService) DeleteUserIngredient(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

// apply copies the sent fields. Optional fields missing from a PUT or sent as
// null are cleared; missing from a PATCH they keep their stored value.
func (s *PantryService) apply(ctx context.Context, item *domain.UserIngredient, in PantryInput, partial bool) error {
	p := presence{partial: partial}
	if p.sent("ingredient_id", in.IngredientID != nil) {
		item.IngredientID = *in.IngredientID
	}
	if p.sent("quantity", in.Quantity != nil) {
		item.Quantity = *in.Quantity
	}
	if err := p.err(); err != nil {
		return err
	}

	item.StartDate = in.StartDate.resolve(item.StartDate, partial)
	item.EndDate = in.EndDate.resolve(item.EndDate, partial)
	if memo := in.Memo.resolve(&item.Memo, partial); memo != nil {
		item.Memo = *memo
	} else {
		item.Memo = ""
	}

	if err := item.Validate(); err != nil {
		return err
	}
	if in.IngredientID != nil {
		return checkExists(ctx, s.ingredients.Exists, "ingredient_id", *in.IngredientID)
	}
	return nil
}
