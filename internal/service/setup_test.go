package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/avolkov/canteen/internal/config"
	"github.com/avolkov/canteen/internal/models"
	"github.com/avolkov/canteen/internal/repo"
)

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

func newTestServices(t *testing.T) (*gorm.DB, *UserService, *FoodService, *OrderService) {
	t.Helper()

	db := InitTestDB(t)
	r := repo.New(db)
	return db,
		&UserService{Repo: r},
		&FoodService{Repo: r},
		&OrderService{Repo: r}
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		Name:     "test_user",
		Email:    "test_user@example.com",
		Password: "password",
		Role:     models.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return &user
}

func seedFood(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.FoodItem {
	t.Helper()

	item := models.FoodItem{
		Name:     name,
		Price:    price,
		Category: "Drinks",
		Stock:    stock,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("failed to seed food item %q: %v", name, err)
	}
	return &item
}
