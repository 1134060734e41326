package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/models"
)

func (r *GormRepo) GetFoodItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	item := models.FoodItem{}
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetFoodItemsByIDs batch-fetches the subset of ids that exist in one query.
func (r *GormRepo) GetFoodItemsByIDs(ctx context.Context, ids []uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindFoodItemByNameFold looks up a food item by case-folded name, skipping
// excludeID so renames do not collide with the item itself.
func (r *GormRepo) FindFoodItemByNameFold(ctx context.Context, name string, excludeID uint) (*models.FoodItem, error) {
	item := models.FoodItem{}
	q := r.DB.WithContext(ctx).Where("lower(name) = lower(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateFoodItem(ctx context.Context, item *models.FoodItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) SaveFoodItem(ctx context.Context, item *models.FoodItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *GormRepo) DeleteFoodItem(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.FoodItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormRepo) ListFoodItems(ctx context.Context, offset, limit int) (int64, []models.FoodItem, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.FoodItem{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.FoodItem
	if err := r.DB.WithContext(ctx).Model(&models.FoodItem{}).Order("id ASC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

// Restock adds quantity to stock atomically and returns the updated row.
func (r *GormRepo) Restock(ctx context.Context, id uint, quantity int) (*models.FoodItem, error) {
	item := models.FoodItem{}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.FoodItem{}).
			Where("id = ?", id).
			UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&item, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CountOrderItemsForFood reports how many order lines reference the item,
// used to enforce the delete-restrict policy.
func (r *GormRepo) CountOrderItemsForFood(ctx context.Context, foodID uint) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.OrderItem{}).Where("food_item_id = ?", foodID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
