package models

import (
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}

type User struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name     string  `gorm:"size:100;not null"         json:"name"`
	Email    string  `gorm:"size:100;unique;not null"  json:"email"`
	Password string  `gorm:"size:100;not null"         json:"-"`
	Role     Role    `gorm:"size:50;not null;default:customer" json:"role"`
	Orders   []Order `gorm:"foreignKey:UserID"         json:"orders,omitempty"`
}

// FoodItem name uniqueness is case-insensitive: enforced by a unique index
// on lower(name), created in config.InitDB.
type FoodItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name     string  `gorm:"size:100;not null"         json:"name"`
	Price    float64 `gorm:"not null;check:price >= 0" json:"price"`
	Category string  `gorm:"size:50;not null"          json:"category"`
	Stock    int     `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
}

type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint        `gorm:"index;not null"           json:"user_id"`
	User        User        `gorm:"foreignKey:UserID"        json:"user,omitempty"`
	TotalAmount float64     `gorm:"not null"                 json:"total_amount"`
	CreatedAt   time.Time   `gorm:"not null"                 json:"created_at"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem stores item_price as a snapshot of the food item's price at order
// time; later price changes never alter persisted totals.
type OrderItem struct {
	ID         uint     `gorm:"primaryKey;autoIncrement"    json:"id"`
	OrderID    uint     `gorm:"index;not null"              json:"order_id"`
	FoodItemID uint     `gorm:"not null"                    json:"food_item_id"`
	FoodItem   FoodItem `gorm:"foreignKey:FoodItemID;constraint:OnDelete:RESTRICT" json:"food_item,omitempty"`
	Quantity   int      `gorm:"not null;check:quantity > 0" json:"quantity"`
	ItemPrice  float64  `gorm:"not null"                    json:"item_price"`
	TotalPrice float64  `gorm:"not null"                    json:"total_price"`
}
