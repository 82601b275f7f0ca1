package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/abhiburugu8586/StudentMart/internal/models"
	"github.com/abhiburugu8586/StudentMart/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// Checkout converts the user's current cart into an order and clears the
// cart. Checkout is deliberately not idempotent: each call with a non-empty
// cart produces a new order.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	order, err := s.Repo.CreateOrderFromCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrEmptyCart) {
			return nil, fmt.Errorf("nothing to checkout: %w", ErrEmptyCart)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrderItems(ctx context.Context, orderID uint) ([]repo.OrderLine, error) {
	return s.Repo.GetOrderItems(ctx, orderID)
}

func (s *OrderService) ListOrdersForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Order, error) {
	return s.Repo.ListOrdersForUser(ctx, userID, limit, offset)
}
