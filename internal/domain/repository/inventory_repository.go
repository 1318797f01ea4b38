package repository

import (
	"context"

	"github.com/clohit/storefront-api/internal/domain/entity"
)

// InventoryRepository define el puerto para consultar/actualizar el inventario
// por producto+categoría. Usado dentro de transacciones para garantizar consistencia.
type InventoryRepository interface {
	Get(ctx context.Context, productID, category string) (*entity.InventoryRecord, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Retorna nil si no existe el registro.
	GetForUpdate(ctx context.Context, productID, category string) (*entity.InventoryRecord, error)
	Upsert(ctx context.Context, record *entity.InventoryRecord) error
	Delete(ctx context.Context, productID, category string) error
	List(ctx context.Context, limit, offset int) ([]*entity.InventoryRecord, error)
	// ListLowStock devuelve los registros con disponible <= umbral de stock bajo.
	ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error)
}
