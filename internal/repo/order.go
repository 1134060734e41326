package repo

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/models"
)

// CreateOrder persists the order with its line items and applies the stock
// decrements in a single transaction. Each decrement is conditional
// ("stock = stock - n WHERE stock >= n"); a decrement that matches no row
// aborts the transaction with ErrStockConflict, so concurrent orders can
// never oversell an item.
func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order, decrements map[uint]int) error {
	ids := make([]uint, 0, len(decrements))
	for id := range decrements {
		ids = append(ids, id)
	}
	// fixed decrement order keeps row locks deadlock-free across requests
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			qty := decrements[id]
			res := tx.Model(&models.FoodItem{}).
				Where("id = ? AND stock >= ?", id, qty).
				UpdateColumn("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrStockConflict
			}
		}
		return tx.Create(order).Error
	})
}

func (r *GormRepo) GetOrderWithRelations(ctx context.Context, id uint) (*models.Order, error) {
	order := models.Order{}
	err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.FoodItem").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrdersWithRelations(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id ASC") }).
		Preload("Items.FoodItem").
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
