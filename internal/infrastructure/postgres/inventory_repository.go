package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `product_id, category, stock_quantity, reserved_quantity, available_quantity, low_stock_threshold, is_in_stock, updated_at`

func scanInventory(row pgx.Row) (*entity.InventoryRecord, error) {
	var rec entity.InventoryRecord
	err := row.Scan(
		&rec.ProductID, &rec.Category, &rec.StockQuantity, &rec.ReservedQuantity,
		&rec.AvailableQuantity, &rec.LowStockThreshold, &rec.IsInStock, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Get obtiene el registro de inventario de un producto. Retorna nil si no existe.
func (r *InventoryRepo) Get(ctx context.Context, productID, category string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE product_id = $1 AND category = $2`
	rec, err := scanInventory(r.q.QueryRow(ctx, query, productID, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return rec, nil
}

// GetForUpdate obtiene el registro y bloquea la fila (SELECT FOR UPDATE).
// Retorna nil si no existe.
func (r *InventoryRepo) GetForUpdate(ctx context.Context, productID, category string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE product_id = $1 AND category = $2
		FOR UPDATE`
	rec, err := scanInventory(r.q.QueryRow(ctx, query, productID, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return rec, nil
}

// Upsert inserta o actualiza el registro. Los derivados ya vienen
// recalculados por el caso de uso (Recalculate antes de persistir).
func (r *InventoryRepo) Upsert(ctx context.Context, record *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (product_id, category, stock_quantity, reserved_quantity, available_quantity, low_stock_threshold, is_in_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (product_id, category)
		DO UPDATE SET stock_quantity = EXCLUDED.stock_quantity,
		              reserved_quantity = EXCLUDED.reserved_quantity,
		              available_quantity = EXCLUDED.available_quantity,
		              low_stock_threshold = EXCLUDED.low_stock_threshold,
		              is_in_stock = EXCLUDED.is_in_stock,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		record.ProductID, record.Category, record.StockQuantity, record.ReservedQuantity,
		record.AvailableQuantity, record.LowStockThreshold, record.IsInStock, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// Delete elimina el registro (solo al borrar el producto del catálogo).
func (r *InventoryRepo) Delete(ctx context.Context, productID, category string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory WHERE product_id = $1 AND category = $2`, productID, category)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

// List devuelve el inventario paginado, más reciente primero.
func (r *InventoryRepo) List(ctx context.Context, limit, offset int) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	return collectInventory(rows)
}

// ListLowStock devuelve los registros con disponible <= umbral.
func (r *InventoryRepo) ListLowStock(ctx context.Context) ([]*entity.InventoryRecord, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE available_quantity <= low_stock_threshold
		ORDER BY available_quantity ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return collectInventory(rows)
}

func collectInventory(rows pgx.Rows) ([]*entity.InventoryRecord, error) {
	var list []*entity.InventoryRecord
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
