package order

import (
	"context"
	"time"

	"github.com/clohit/storefront-api/internal/domain/repository"
)

// TxRunner ejecuta funciones dentro de una transacción de BD, pasando
// repositorios atados a esa tx. RunCheckout cubre la colocación de la orden
// (reservas + consecutivo + persistencia, todo-o-nada); RunOrder cubre las
// transiciones de estado (fila de la orden bloqueada + liberación de stock).
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		orderRepo repository.OrderRepository,
		seqRepo repository.OrderSequenceRepository,
	) error) error

	RunOrder(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// InventoryService interfaz para integrar órdenes con inventario.
// Las variantes InTx usan los repositorios del caller (misma transacción):
// si retornan error, el caller debe hacer rollback.
type InventoryService interface {
	ReserveInTx(ctx context.Context, invRepo repository.InventoryRepository, productID, category string, quantity int64, now time.Time) error
	ReleaseInTx(ctx context.Context, invRepo repository.InventoryRepository, productID, category string, quantity int64, now time.Time) error
}
