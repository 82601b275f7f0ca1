package service

import (
	"context"
	"fmt"

	"github.com/abhiburugu8586/StudentMart/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

// AddItem merges qty into the user's cart line for the product. The product's
// existence is not checked here: a dangling product id simply never shows up
// in ListItems.
func (s *CartService) AddItem(ctx context.Context, userID, productID, qty uint) error {
	if productID == 0 {
		return fmt.Errorf("product id required: %w", ErrValidation)
	}
	if qty == 0 {
		return fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}
	return s.Repo.AddItem(ctx, userID, productID, qty)
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID uint, qty int) error {
	if productID == 0 {
		return fmt.Errorf("product id required: %w", ErrValidation)
	}
	return s.Repo.SetQuantity(ctx, userID, productID, qty)
}

// ListItems returns the user's cart lines ordered by product name, plus the
// display total computed from current product prices.
func (s *CartService) ListItems(ctx context.Context, userID uint) ([]repo.CartLine, float64, error) {
	lines, err := s.Repo.ListItems(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, line := range lines {
		total += float64(line.Quantity) * line.Price
	}
	return lines, total, nil
}

func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.Repo.ClearCart(ctx, userID)
}
