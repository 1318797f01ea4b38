package repository

import (
	"context"

	"github.com/clohit/storefront-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	// GetByID obtiene la orden con sus líneas.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetForUpdate bloquea la fila de la orden (SELECT FOR UPDATE) y carga sus líneas.
	// Las transiciones de estado deben operar sobre la fila bloqueada.
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	// Update persiste status, payment_status, notes, estimated_delivery y updated_at.
	Update(ctx context.Context, order *entity.Order) error
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Order, error)
	CountByUser(ctx context.Context, userID, status string) (int, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context, status string) (int, error)
}
