package inventory

import (
	"context"

	"github.com/clohit/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de inventario atado a esa tx. Garantiza que cada escritura sea
// un read-modify-write atómico sobre la fila bloqueada.
type TxRunner interface {
	Run(ctx context.Context, fn func(invRepo repository.InventoryRepository) error) error
}
