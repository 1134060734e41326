package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStockConflict is returned when a conditional stock decrement matches no
// row, i.e. the item's stock dropped below the requested quantity between
// validation and commit.
var ErrStockConflict = errors.New("stock conflict")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}
