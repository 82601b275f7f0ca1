package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhiburugu8586/StudentMart/internal/models"
)

func TestCreateProductValidation(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	err := svc.CreateProduct(ctx, &models.Product{UserID: 1, Name: "", Price: 1})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.CreateProduct(ctx, &models.Product{UserID: 1, Name: "Pan", Price: -1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateProductOwnerOnly(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	product := &models.Product{UserID: 1, Name: "Non-stick Frying Pan", Price: 12.99}
	require.NoError(t, svc.CreateProduct(ctx, product))

	_, err := svc.UpdateProduct(ctx, 2, &models.Product{ID: product.ID, Name: "Hijacked", Price: 1})
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateProduct(ctx, 1, &models.Product{
		ID:    product.ID,
		Name:  "Non-stick Frying Pan 28cm",
		Price: 13.99,
		Stock: 5,
	})
	require.NoError(t, err)
	require.Equal(t, "Non-stick Frying Pan 28cm", updated.Name)
	require.Equal(t, 13.99, updated.Price)
	require.Equal(t, uint(1), updated.UserID)
}

func TestDeleteProductOwnerOnly(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	product := &models.Product{UserID: 1, Name: "Toor Dal 1kg", Price: 3.49}
	require.NoError(t, svc.CreateProduct(ctx, product))

	require.ErrorIs(t, svc.DeleteProduct(ctx, 2, product.ID), ErrForbidden)
	require.NoError(t, svc.DeleteProduct(ctx, 1, product.ID))

	_, err := svc.GetProduct(ctx, product.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSearchProductsByKeyword(t *testing.T) {
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}
	ctx := context.Background()

	require.NoError(t, svc.CreateProduct(ctx, &models.Product{UserID: 1, Name: "Basmati Rice 5kg", Price: 14.99}))
	require.NoError(t, svc.CreateProduct(ctx, &models.Product{UserID: 1, Name: "Toor Dal 1kg", Price: 3.49}))

	products, err := svc.SearchProducts(ctx, "Rice", 12)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Basmati Rice 5kg", products[0].Name)
}
