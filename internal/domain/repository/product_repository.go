package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/clohit/storefront-api/internal/domain/entity"
)

// ProductFilter criterios de búsqueda del catálogo. Campos en cero no filtran;
// Query aplica sobre marca y nombre sin distinguir mayúsculas.
type ProductFilter struct {
	Query    string
	Category string
	Brand    string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, category string) (int, error)
	Search(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountSearch(ctx context.Context, filter ProductFilter) (int, error)
}
