package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhiburugu8586/StudentMart/internal/models"
)

func TestCheckoutEmptyCartError(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}

	order, err := svc.Checkout(context.Background(), 1)
	require.ErrorIs(t, err, ErrEmptyCart)
	require.Nil(t, order)
}

func TestCheckoutHappyPath(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{UserID: 9, Name: "Basmati Rice 5kg", Price: 14.99}
	require.NoError(t, r.DB.Create(&product).Error)
	require.NoError(t, r.AddItem(ctx, 1, product.ID, 2))

	svc := &OrderService{Repo: r}
	order, err := svc.Checkout(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 29.98, order.Total)
	require.Equal(t, models.OrderStatusPlaced, order.Status)
}

func TestGetOrderNotFound(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}

	order, err := svc.GetOrder(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, order)
}
