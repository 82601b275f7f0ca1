package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abhiburugu8586/StudentMart/internal/models"
)

// CartLine is a cart row joined with the product's current listing data.
// Price here is the live product price, not a frozen one.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Quantity  uint    `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}

// AddItem merges qty into the user's line for the product as a single
// upsert-increment statement, so concurrent adds for the same (user, product)
// pair never lose updates.
func (r *GormRepo) AddItem(ctx context.Context, userID, productID, qty uint) error {
	item := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", qty),
		}),
	}).Create(&item).Error
}

// SetQuantity sets (not increments) the line's quantity. A non-positive qty
// deletes the line. Updating an absent line touches zero rows and is a silent
// no-op.
func (r *GormRepo) SetQuantity(ctx context.Context, userID, productID uint, qty int) error {
	if qty <= 0 {
		return r.DB.WithContext(ctx).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&models.CartItem{}).Error
	}
	return r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", qty).Error
}

func (r *GormRepo) ListItems(ctx context.Context, userID uint) ([]CartLine, error) {
	var lines []CartLine
	err := r.DB.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.product_id, cart_items.quantity, products.name, products.price, products.image_url").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("products.name ASC").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *GormRepo) ClearCart(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
