package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/es"
	"github.com/avolkov/canteen/internal/logging"
	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/mykafka"
	"github.com/avolkov/canteen/internal/repo"
	"github.com/avolkov/canteen/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
	Indexer  *es.Indexer
}

// CreateOrder validates the request against live inventory, persists the
// order with price-snapshotted line items and the stock decrements in one
// transaction, and returns the invoice projection of the new order. On any
// failure nothing is persisted.
func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*transport.Invoice, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	user, err := s.Repo.GetUser(ctx, req.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, req.UserID)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(req.Items))
	for _, it := range req.Items {
		ids = append(ids, it.FoodItemID)
	}
	fetched, err := s.Repo.GetFoodItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	foods := make(map[uint]*models.FoodItem, len(fetched))
	for i := range fetched {
		foods[fetched[i].ID] = &fetched[i]
	}

	// Validate lines in input order against a running stock view, so two
	// lines for the same item cannot jointly exceed what is available.
	var (
		total      float64
		orderItems []models.OrderItem
		decrements = make(map[uint]int, len(req.Items))
	)
	for _, it := range req.Items {
		food, ok := foods[it.FoodItemID]
		if !ok {
			return nil, fmt.Errorf("%w: food item %d", ErrNotFound, it.FoodItemID)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0 for %q", ErrValidation, food.Name)
		}
		if food.Stock == 0 {
			return nil, fmt.Errorf("%w: %q is out of stock", ErrOutOfStock, food.Name)
		}
		if it.Quantity > food.Stock {
			return nil, fmt.Errorf("%w: only %d units available for %q", ErrInsufficientStock, food.Stock, food.Name)
		}

		subtotal := food.Price * float64(it.Quantity)
		total += subtotal
		food.Stock -= it.Quantity
		decrements[food.ID] += it.Quantity

		orderItems = append(orderItems, models.OrderItem{
			FoodItemID: food.ID,
			Quantity:   it.Quantity,
			ItemPrice:  food.Price,
			TotalPrice: subtotal,
		})
	}

	order := &models.Order{
		UserID:      user.ID,
		TotalAmount: total,
		CreatedAt:   time.Now().UTC(),
		Items:       orderItems,
	}
	if err := s.Repo.CreateOrder(ctx, order, decrements); err != nil {
		if errors.Is(err, repo.ErrStockConflict) {
			return nil, fmt.Errorf("%w: stock changed while ordering", ErrInsufficientStock)
		}
		return nil, err
	}

	for _, food := range foods {
		s.index(ctx, food)
	}
	s.publish(ctx, fmt.Sprint(order.ID), map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  user.ID,
		"total":   order.TotalAmount,
	})

	return s.GetInvoice(ctx, order.ID)
}

// GetInvoice re-reads a persisted order with its relations and projects it
// into the invoice view. Read-only.
func (s *OrderService) GetInvoice(ctx context.Context, id uint) (*transport.Invoice, error) {
	order, err := s.Repo.GetOrderWithRelations(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	inv := buildInvoice(order)
	return &inv, nil
}

func (s *OrderService) ListInvoices(ctx context.Context) ([]transport.Invoice, error) {
	orders, err := s.Repo.ListOrdersWithRelations(ctx)
	if err != nil {
		return nil, err
	}

	invoices := make([]transport.Invoice, len(orders))
	for i := range orders {
		invoices[i] = buildInvoice(&orders[i])
	}
	return invoices, nil
}

func buildInvoice(order *models.Order) transport.Invoice {
	items := make([]transport.InvoiceItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = transport.InvoiceItem{
			FoodItem:  it.FoodItem.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.ItemPrice,
			Subtotal:  it.TotalPrice,
		}
	}
	return transport.Invoice{
		OrderID:      order.ID,
		CustomerName: order.User.Name,
		TotalItems:   len(order.Items),
		TotalAmount:  order.TotalAmount,
		OrderDate:    order.CreatedAt,
		Items:        items,
	}
}

func (s *OrderService) index(ctx context.Context, item *models.FoodItem) {
	if err := s.Indexer.IndexFoodItem(ctx, item); err != nil {
		logging.FromContext(ctx).Error("es index failed", "foodID", item.ID, "error", err)
	}
}

func (s *OrderService) publish(ctx context.Context, key string, event map[string]any) {
	if err := s.Producer.PublishEvent(ctx, mykafka.TopicOrderEvents, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish failed", "topic", mykafka.TopicOrderEvents, "error", err)
	}
}
