package service

import "errors"

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrConflict          = errors.New("conflict")           // 409
	ErrOutOfStock        = errors.New("out of stock")       // 409
	ErrInsufficientStock = errors.New("insufficient stock") // 409
)
