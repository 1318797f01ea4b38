package entity

import "time"

// Operaciones de ajuste de stock.
const (
	StockOpAdd      = "add"
	StockOpSubtract = "subtract"
	StockOpSet      = "set"
)

// ValidStockOp indica si la operación de ajuste es conocida.
func ValidStockOp(op string) bool {
	return op == StockOpAdd || op == StockOpSubtract || op == StockOpSet
}

// InventoryRecord representa el stock de un producto (cantidades en unidades).
// AvailableQuantity e IsInStock son derivados: siempre se recalculan con
// Recalculate antes de persistir, nunca se asignan de forma independiente.
type InventoryRecord struct {
	ProductID         string
	Category          string // men | women
	StockQuantity     int64  // unidades totales en propiedad
	ReservedQuantity  int64  // unidades retenidas por órdenes pendientes
	AvailableQuantity int64  // derivado: stock - reservado
	LowStockThreshold int64
	IsInStock         bool // derivado: available > 0
	UpdatedAt         time.Time
}

// DefaultLowStockThreshold umbral de stock bajo al crear el registro.
const DefaultLowStockThreshold = 10

// Recalculate recalcula los campos derivados a partir de stock y reservado.
// Las cantidades nunca quedan negativas.
func (i *InventoryRecord) Recalculate() {
	if i.StockQuantity < 0 {
		i.StockQuantity = 0
	}
	if i.ReservedQuantity < 0 {
		i.ReservedQuantity = 0
	}
	i.AvailableQuantity = i.StockQuantity - i.ReservedQuantity
	if i.AvailableQuantity < 0 {
		i.AvailableQuantity = 0
	}
	i.IsInStock = i.AvailableQuantity > 0
}

// IsLowStock indica si el disponible está en o por debajo del umbral.
func (i *InventoryRecord) IsLowStock() bool {
	return i.AvailableQuantity <= i.LowStockThreshold
}
