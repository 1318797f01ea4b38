package order

import (
	"context"
	"fmt"
	"time"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	domorder "github.com/clohit/storefront-api/internal/domain/order"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// Entrega estimada al marcar la orden como enviada.
const shippedDeliveryDays = 3

// LifecycleUseCase gobierna las transiciones de estado de una orden y sus
// efectos sobre el inventario. Cada transición opera sobre la fila bloqueada
// de la orden; la liberación de stock de una cancelación se confirma en la
// misma transacción que el cambio de estado (el stock nunca queda filtrado
// como reservado permanente).
type LifecycleUseCase struct {
	txRunner    TxRunner
	inventoryUC InventoryService
	now         func() time.Time
}

// NewLifecycleUseCase construye el caso de uso de ciclo de vida de órdenes.
func NewLifecycleUseCase(txRunner TxRunner, inventoryUC InventoryService) *LifecycleUseCase {
	return &LifecycleUseCase{txRunner: txRunner, inventoryUC: inventoryUC, now: time.Now}
}

// SetStatus aplica una transición validada contra la tabla cerrada.
// -> cancelled (solo desde pending) libera la reserva de cada línea.
// -> shipped fija la entrega estimada en now + 3 días.
// Las demás transiciones solo persisten el nuevo estado.
func (uc *LifecycleUseCase) SetStatus(ctx context.Context, orderID, newStatus, notes string) (*dto.OrderResponse, error) {
	if orderID == "" || !domorder.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
	) error {
		o, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrOrderNotFound
		}
		if !domorder.CanTransition(o.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, o.Status, newStatus)
		}
		now := uc.now()
		if newStatus == entity.OrderStatusCancelled {
			// Liberar la reserva de cada línea antes de confirmar la
			// cancelación; el rollback deshace ambas si algo falla.
			for _, item := range o.Items {
				if err := uc.inventoryUC.ReleaseInTx(ctx, invRepo, item.ProductID, item.Category, item.Quantity, now); err != nil {
					return err
				}
			}
		}
		if newStatus == entity.OrderStatusShipped {
			eta := now.Add(shippedDeliveryDays * 24 * time.Hour)
			o.EstimatedDelivery = &eta
		}
		o.Status = newStatus
		if notes != "" {
			o.Notes = notes
		}
		o.UpdatedAt = now
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// Cancel cancela una orden del propio usuario. Solo procede desde pending;
// en cualquier otro estado retorna ErrInvalidTransition sin tocar nada.
func (uc *LifecycleUseCase) Cancel(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error) {
	if userID == "" || orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		invRepo repository.InventoryRepository,
	) error {
		o, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		// La orden de otro usuario no se revela: mismo 404
		if o == nil || o.UserID != userID {
			return domain.ErrOrderNotFound
		}
		if o.Status != entity.OrderStatusPending {
			return fmt.Errorf("%w: la orden ya fue procesada", domain.ErrInvalidTransition)
		}
		now := uc.now()
		for _, item := range o.Items {
			if err := uc.inventoryUC.ReleaseInTx(ctx, invRepo, item.ProductID, item.Category, item.Quantity, now); err != nil {
				return err
			}
		}
		o.Status = entity.OrderStatusCancelled
		o.UpdatedAt = now
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// SetPaymentStatus cambia el estado de pago, independiente del estado de la
// orden: puede fijarse en cualquier momento.
func (uc *LifecycleUseCase) SetPaymentStatus(ctx context.Context, orderID, paymentStatus string) (*dto.OrderResponse, error) {
	if orderID == "" || !entity.ValidPaymentStatus(paymentStatus) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Order
	err := uc.txRunner.RunOrder(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.InventoryRepository,
	) error {
		o, err := orderRepo.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrOrderNotFound
		}
		o.PaymentStatus = paymentStatus
		o.UpdatedAt = uc.now()
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}
