package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/es"
	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/mykafka"
	"github.com/avolkov/canteen/internal/repo"
	"github.com/avolkov/canteen/internal/transport"
)

type FoodService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Indexer  *es.Indexer
}

func (s *FoodService) CreateFoodItem(ctx context.Context, req transport.CreateFoodItemRequest) (*models.FoodItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	if err := s.checkNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	item := &models.FoodItem{
		Name:     name,
		Price:    req.Price,
		Category: strings.TrimSpace(req.Category),
		Stock:    req.Stock,
	}
	if err := s.Repo.CreateFoodItem(ctx, item); err != nil {
		return nil, err
	}

	s.index(ctx, item)
	s.publish(ctx, fmt.Sprint(item.ID), map[string]any{
		"type":   "food_item_created",
		"foodID": item.ID,
		"name":   item.Name,
	})

	return item, nil
}

func (s *FoodService) GetFoodItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	item, err := s.Repo.GetFoodItem(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: food item %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) ListFoodItems(ctx context.Context, offset, limit int) (int64, []models.FoodItem, error) {
	return s.Repo.ListFoodItems(ctx, offset, limit)
}

func (s *FoodService) PatchFoodItem(ctx context.Context, id uint, req transport.PatchFoodItemRequest) (*models.FoodItem, error) {
	item, err := s.GetFoodItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name required", ErrValidation)
		}
		if err := s.checkNameFree(ctx, name, id); err != nil {
			return nil, err
		}
		item.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
		}
		item.Stock = *req.Stock
	}

	if err := s.Repo.SaveFoodItem(ctx, item); err != nil {
		return nil, err
	}

	s.index(ctx, item)
	s.publish(ctx, fmt.Sprint(item.ID), map[string]any{
		"type":   "food_item_updated",
		"foodID": item.ID,
		"name":   item.Name,
	})

	return item, nil
}

func (s *FoodService) DeleteFoodItem(ctx context.Context, id uint) error {
	n, err := s.Repo.CountOrderItemsForFood(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: food item %d is referenced by existing orders", ErrConflict, id)
	}

	if err := s.Repo.DeleteFoodItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: food item %d", ErrNotFound, id)
		}
		return err
	}

	if err := s.Indexer.DeleteFoodItem(ctx, id); err != nil {
		logging.FromContext(ctx).Error("es deindex failed", "foodID", id, "error", err)
	}
	s.publish(ctx, fmt.Sprint(id), map[string]any{
		"type":   "food_item_deleted",
		"foodID": id,
	})
	return nil
}

// Restock adds quantity to the item's stock. The adjustment is additive,
// distinct from the absolute stock update in PatchFoodItem.
func (s *FoodService) Restock(ctx context.Context, id uint, quantity int) (*models.FoodItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be > 0", ErrValidation)
	}

	item, err := s.Repo.Restock(ctx, id, quantity)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: food item %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	s.index(ctx, item)
	s.publish(ctx, fmt.Sprint(item.ID), map[string]any{
		"type":     "food_item_restocked",
		"foodID":   item.ID,
		"quantity": quantity,
		"stock":    item.Stock,
	})

	return item, nil
}

func (s *FoodService) checkNameFree(ctx context.Context, name string, excludeID uint) error {
	if _, err := s.Repo.FindFoodItemByNameFold(ctx, name, excludeID); err == nil {
		return fmt.Errorf("%w: food item %q already exists", ErrConflict, name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *FoodService) index(ctx context.Context, item *models.FoodItem) {
	if err := s.Indexer.IndexFoodItem(ctx, item); err != nil {
		logging.FromContext(ctx).Error("es index failed", "foodID", item.ID, "error", err)
	}
}

func (s *FoodService) publish(ctx context.Context, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicInventoryEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "topic", mykafka.TopicInventoryEvents, "error", err)
	}
}
