package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhiburugu8586/StudentMart/internal/models"
)

func TestAddItemCreatesLine(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))

	var item models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 1, 7).First(&item).Error)
	require.Equal(t, uint(2), item.Quantity)
}

func TestAddItemMergesQuantity(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))
	require.NoError(t, r.AddItem(ctx, 1, 7, 3))

	var items []models.CartItem
	require.NoError(t, r.DB.Where("user_id = ?", 1).Find(&items).Error)
	require.Len(t, items, 1)
	require.Equal(t, uint(5), items[0].Quantity)
}

func TestAddItemKeepsUsersSeparate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))
	require.NoError(t, r.AddItem(ctx, 2, 7, 4))

	var item models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 1, 7).First(&item).Error)
	require.Equal(t, uint(2), item.Quantity)
	var item2 models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 2, 7).First(&item2).Error)
	require.Equal(t, uint(4), item2.Quantity)
}

func TestSetQuantityOverwrites(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))
	require.NoError(t, r.SetQuantity(ctx, 1, 7, 9))

	var item models.CartItem
	require.NoError(t, r.DB.Where("user_id = ? AND product_id = ?", 1, 7).First(&item).Error)
	require.Equal(t, uint(9), item.Quantity)
}

func TestSetQuantityZeroDeletesLine(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))
	require.NoError(t, r.SetQuantity(ctx, 1, 7, 0))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count).Error)
	require.Zero(t, count)
}

func TestSetQuantityNegativeDeletesLine(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))
	require.NoError(t, r.SetQuantity(ctx, 1, 7, -3))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count).Error)
	require.Zero(t, count)
}

func TestSetQuantityMissingLineIsNoOp(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetQuantity(ctx, 1, 7, 5))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSetQuantityZeroMissingLineIsIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetQuantity(ctx, 1, 7, 0))
	require.NoError(t, r.SetQuantity(ctx, 1, 7, 0))
}

func TestListItemsJoinsProductsOrderedByName(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	rice := seedProduct(t, r, "Basmati Rice 5kg", 14.99)
	pan := seedProduct(t, r, "Non-stick Frying Pan", 12.99)
	dal := seedProduct(t, r, "Toor Dal 1kg", 3.49)

	require.NoError(t, r.AddItem(ctx, 1, dal.ID, 2))
	require.NoError(t, r.AddItem(ctx, 1, rice.ID, 1))
	require.NoError(t, r.AddItem(ctx, 1, pan.ID, 1))
	require.NoError(t, r.AddItem(ctx, 2, rice.ID, 5))

	lines, err := r.ListItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, "Basmati Rice 5kg", lines[0].Name)
	require.Equal(t, "Non-stick Frying Pan", lines[1].Name)
	require.Equal(t, "Toor Dal 1kg", lines[2].Name)
	require.Equal(t, 14.99, lines[0].Price)
	require.Equal(t, uint(2), lines[2].Quantity)
}

func TestListItemsEmptyCart(t *testing.T) {
	r := newTestRepo(t)

	lines, err := r.ListItems(context.Background(), 1)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestClearCart(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.AddItem(ctx, 1, 7, 2))
	require.NoError(t, r.AddItem(ctx, 1, 8, 1))
	require.NoError(t, r.AddItem(ctx, 2, 7, 3))

	require.NoError(t, r.ClearCart(ctx, 1))

	var count int64
	require.NoError(t, r.DB.Model(&models.CartItem{}).Where("user_id = ?", 1).Count(&count).Error)
	require.Zero(t, count)

	require.NoError(t, r.DB.Model(&models.CartItem{}).Where("user_id = ?", 2).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
