package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/abhiburugu8586/StudentMart/internal/models"
)

// ErrEmptyCart is returned by CreateOrderFromCart when the user has no cart
// lines to convert.
var ErrEmptyCart = errors.New("cart is empty")

// OrderLine is an order item joined with the product name for display.
// PriceEach is the price frozen at checkout, not the product's current price.
type OrderLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  uint    `json:"quantity"`
	PriceEach float64 `json:"price_each"`
}

// CreateOrderFromCart converts the user's cart into an order plus line items
// and clears the cart, all in one transaction. The prices written to
// order_items are the ones read inside the transaction; later product price
// changes never touch them. On any failure the whole unit rolls back: no
// partial order, no cleared cart without a fully written order.
//
// The clear step removes exactly the lines the transaction read, each keyed
// by (product_id, quantity). A concurrent checkout for the same user loses
// that race and rolls back, and a line added or bumped after the read is left
// in the cart instead of being cleared unbilled.
func (r *GormRepo) CreateOrderFromCart(ctx context.Context, userID uint) (*models.Order, error) {
	var order models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []CartLine
		if err := tx.
			Table("cart_items").
			Select("cart_items.product_id, cart_items.quantity, products.name, products.price, products.image_url").
			Joins("JOIN products ON products.id = cart_items.product_id").
			Where("cart_items.user_id = ?", userID).
			Order("products.name ASC").
			Scan(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var total float64
		for _, line := range lines {
			total += float64(line.Quantity) * line.Price
		}

		order = models.Order{
			UserID: userID,
			Total:  total,
			Status: models.OrderStatusPlaced,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				PriceEach: line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return clearCheckedOutLines(tx, userID, lines)
	})

	if err != nil {
		return nil, err
	}
	return &order, nil
}

// clearCheckedOutLines deletes the cart rows a checkout read, each scoped to
// the quantity that was billed. A row that no longer matches (removed, or
// quantity changed by a concurrent request) fails the whole checkout; a row
// added after the read is simply not covered by any delete and survives.
func clearCheckedOutLines(tx *gorm.DB, userID uint, lines []CartLine) error {
	for _, line := range lines {
		res := tx.
			Where("user_id = ? AND product_id = ? AND quantity = ?", userID, line.ProductID, line.Quantity).
			Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return fmt.Errorf("cart changed during checkout: line for product %d no longer matches", line.ProductID)
		}
	}
	return nil
}

func (r *GormRepo) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) GetOrderItems(ctx context.Context, orderID uint) ([]OrderLine, error) {
	var lines []OrderLine
	err := r.DB.WithContext(ctx).
		Table("order_items").
		Select("order_items.product_id, order_items.quantity, order_items.price_each, products.name").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *GormRepo) ListOrdersForUser(ctx context.Context, userID uint, limit, offset int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
