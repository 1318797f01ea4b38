package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// UseCase libro mayor de inventario: reservas, liberaciones y ajustes de
// stock por producto+categoría. Toda mutación corre dentro de una transacción
// con bloqueo de fila (SELECT FOR UPDATE) y recalcula los campos derivados
// antes de persistir.
type UseCase struct {
	txRunner TxRunner
	invRepo  repository.InventoryRepository // lecturas fuera de transacción
	now      func() time.Time
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(txRunner TxRunner, invRepo repository.InventoryRepository) *UseCase {
	return &UseCase{txRunner: txRunner, invRepo: invRepo, now: time.Now}
}

// AdjustStock aplica add/subtract/set sobre StockQuantity. Crea el registro
// si no existe (stock inicial = amount solo con add; subtract/set inician en 0).
// subtract nunca deja el stock negativo.
func (uc *UseCase) AdjustStock(ctx context.Context, productID, category string, amount int64, op string) (*entity.InventoryRecord, error) {
	if productID == "" || !entity.ValidCategory(category) || !entity.ValidStockOp(op) {
		return nil, domain.ErrInvalidInput
	}
	if amount < 0 {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.InventoryRecord
	err := uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		record, err := uc.adjustInTx(ctx, invRepo, productID, category, amount, op)
		if err != nil {
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BulkAdjustItem línea de un ajuste masivo. Operation vacía aplica set.
type BulkAdjustItem struct {
	ProductID string
	Category  string
	Amount    int64
	Operation string
}

// BulkAdjust aplica varios ajustes de stock en una sola transacción
// (todo o nada). Las líneas se validan completas antes de tocar nada.
func (uc *UseCase) BulkAdjust(ctx context.Context, items []BulkAdjustItem) ([]*entity.InventoryRecord, error) {
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	normalized := make([]BulkAdjustItem, len(items))
	for i, item := range items {
		if item.Operation == "" {
			item.Operation = entity.StockOpSet
		}
		if item.ProductID == "" || !entity.ValidCategory(item.Category) ||
			!entity.ValidStockOp(item.Operation) || item.Amount < 0 {
			return nil, fmt.Errorf("%w: línea %d", domain.ErrInvalidInput, i+1)
		}
		normalized[i] = item
	}
	var results []*entity.InventoryRecord
	err := uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		results = results[:0]
		for _, item := range normalized {
			record, err := uc.adjustInTx(ctx, invRepo, item.ProductID, item.Category, item.Amount, item.Operation)
			if err != nil {
				return err
			}
			results = append(results, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// adjustInTx aplica un add/subtract/set usando el repositorio del caller
// (misma transacción). Crea el registro si no existe.
func (uc *UseCase) adjustInTx(ctx context.Context, invRepo repository.InventoryRepository, productID, category string, amount int64, op string) (*entity.InventoryRecord, error) {
	record, err := invRepo.GetForUpdate(ctx, productID, category)
	if err != nil {
		return nil, err
	}
	if record == nil {
		initial := int64(0)
		if op == entity.StockOpAdd {
			initial = amount
		}
		record = &entity.InventoryRecord{
			ProductID:         productID,
			Category:          category,
			StockQuantity:     initial,
			LowStockThreshold: entity.DefaultLowStockThreshold,
		}
	} else {
		switch op {
		case entity.StockOpAdd:
			record.StockQuantity += amount
		case entity.StockOpSubtract:
			record.StockQuantity -= amount
			if record.StockQuantity < 0 {
				record.StockQuantity = 0
			}
		case entity.StockOpSet:
			record.StockQuantity = amount
		}
	}
	record.Recalculate()
	record.UpdatedAt = uc.now()
	if err := invRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Reserve retiene quantity unidades contra órdenes pendientes. Falla con
// ErrInventoryNotFound si el registro no existe y con ErrInsufficientStock si
// el disponible no alcanza. Atómico frente a reservas concurrentes sobre el
// mismo registro (bloqueo de fila).
func (uc *UseCase) Reserve(ctx context.Context, productID, category string, quantity int64) error {
	if productID == "" || !entity.ValidCategory(category) || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		return uc.ReserveInTx(ctx, invRepo, productID, category, quantity, uc.now())
	})
}

// Release libera quantity unidades reservadas, con piso en 0: liberar de más
// es un no-op parcial, nunca deja el reservado negativo ni retorna error.
// Los callers pueden competir (cancelación vs. admin), de ahí el clamp.
func (uc *UseCase) Release(ctx context.Context, productID, category string, quantity int64) error {
	if productID == "" || !entity.ValidCategory(category) || quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		return uc.ReleaseInTx(ctx, invRepo, productID, category, quantity, uc.now())
	})
}

// ReserveInTx ejecuta la reserva usando el repositorio del caller (misma
// transacción). Si retorna error, el caller debe hacer rollback.
func (uc *UseCase) ReserveInTx(ctx context.Context, invRepo repository.InventoryRepository, productID, category string, quantity int64, now time.Time) error {
	record, err := invRepo.GetForUpdate(ctx, productID, category)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, productID)
	}
	if record.AvailableQuantity < quantity {
		return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, productID)
	}
	record.ReservedQuantity += quantity
	record.Recalculate()
	record.UpdatedAt = now
	return invRepo.Upsert(ctx, record)
}

// ReleaseInTx ejecuta la liberación usando el repositorio del caller (misma
// transacción). Clamp en 0 si se libera más de lo reservado.
func (uc *UseCase) ReleaseInTx(ctx context.Context, invRepo repository.InventoryRepository, productID, category string, quantity int64, now time.Time) error {
	record, err := invRepo.GetForUpdate(ctx, productID, category)
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, productID)
	}
	record.ReservedQuantity -= quantity
	record.Recalculate()
	record.UpdatedAt = now
	return invRepo.Upsert(ctx, record)
}

// UpdateSettings actualiza stock (semántica set) y/o umbral de stock bajo.
// Campos nil no se tocan.
func (uc *UseCase) UpdateSettings(ctx context.Context, productID, category string, stockQuantity, lowStockThreshold *int64) (*entity.InventoryRecord, error) {
	if productID == "" || !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	if stockQuantity == nil && lowStockThreshold == nil {
		return nil, domain.ErrInvalidInput
	}
	if (stockQuantity != nil && *stockQuantity < 0) || (lowStockThreshold != nil && *lowStockThreshold < 0) {
		return nil, domain.ErrInvalidInput
	}
	var result *entity.InventoryRecord
	err := uc.txRunner.Run(ctx, func(invRepo repository.InventoryRepository) error {
		record, err := invRepo.GetForUpdate(ctx, productID, category)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("%w: %s", domain.ErrInventoryNotFound, productID)
		}
		if stockQuantity != nil {
			record.StockQuantity = *stockQuantity
		}
		if lowStockThreshold != nil {
			record.LowStockThreshold = *lowStockThreshold
		}
		record.Recalculate()
		record.UpdatedAt = uc.now()
		if err := invRepo.Upsert(ctx, record); err != nil {
			return err
		}
		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteForProduct elimina el registro de inventario de un producto
// (solo al borrar el producto del catálogo).
func (uc *UseCase) DeleteForProduct(ctx context.Context, productID, category string) error {
	if productID == "" || !entity.ValidCategory(category) {
		return domain.ErrInvalidInput
	}
	return uc.invRepo.Delete(ctx, productID, category)
}

// Get devuelve el registro de inventario de un producto.
func (uc *UseCase) Get(ctx context.Context, productID, category string) (*entity.InventoryRecord, error) {
	record, err := uc.invRepo.Get(ctx, productID, category)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrInventoryNotFound
	}
	return record, nil
}

// List devuelve el inventario paginado (admin).
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.InventoryRecord, error) {
	return uc.invRepo.List(ctx, limit, offset)
}

// ListLowStock devuelve los registros con disponible en o bajo el umbral.
func (uc *UseCase) ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error) {
	return uc.invRepo.ListLowStock(ctx)
}
