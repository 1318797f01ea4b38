package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías válidas de producto (catálogo cerrado).
const (
	CategoryMen   = "men"
	CategoryWomen = "women"
)

// ValidCategory indica si la categoría pertenece al catálogo cerrado.
func ValidCategory(c string) bool {
	return c == CategoryMen || c == CategoryWomen
}

// Product representa un producto del catálogo (ropa hombre/mujer).
// El stock no vive aquí: se maneja en InventoryRecord por producto+categoría.
type Product struct {
	ID        string
	Category  string // men | women
	Brand     string
	Name      string
	Image     string
	MRP       decimal.Decimal // precio de lista
	Price     decimal.Decimal // precio de venta
	CreatedAt time.Time
	UpdatedAt time.Time
}
