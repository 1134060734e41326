package transport

import (
	"time"

	"github.com/avolkov/canteen/internal/models"
)

type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type CreateFoodItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

type PatchFoodItemRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Stock    *int     `json:"stock"`
}

type RestockRequest struct {
	Quantity int `json:"quantity"`
}

type CreateOrderItem struct {
	FoodItemID uint `json:"food_item_id"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderRequest struct {
	UserID uint              `json:"user_id"`
	Items  []CreateOrderItem `json:"items"`
}

// Invoice is the customer-facing projection of a persisted order.
type Invoice struct {
	OrderID      uint          `json:"order_id"`
	CustomerName string        `json:"customer_name"`
	TotalItems   int           `json:"total_items"`
	TotalAmount  float64       `json:"total_amount"`
	OrderDate    time.Time     `json:"order_date"`
	Items        []InvoiceItem `json:"items"`
}

type InvoiceItem struct {
	FoodItem  string  `json:"food_item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}
