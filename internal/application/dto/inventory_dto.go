package dto

import "time"

// AdjustStockRequest body para POST /api/admin/inventory/adjust.
// Operation: add | subtract | set.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
	Quantity  int64  `json:"quantity"`
	Operation string `json:"operation"`
}

// UpdateInventoryRequest body para PUT /api/admin/inventory/:productId.
// Solo los campos presentes se actualizan; stock_quantity aplica un `set`.
type UpdateInventoryRequest struct {
	Category          string `json:"category"`
	StockQuantity     *int64 `json:"stock_quantity,omitempty"`
	LowStockThreshold *int64 `json:"low_stock_threshold,omitempty"`
}

// BulkAdjustRequest body para POST /api/admin/inventory/bulk.
// Operation vacía en una línea aplica `set`.
type BulkAdjustRequest struct {
	Updates []AdjustStockRequest `json:"updates"`
}

// BulkAdjustResponse registros resultantes del ajuste masivo, en el orden
// de las líneas enviadas.
type BulkAdjustResponse struct {
	Updated []InventoryResponse `json:"updated"`
}

// InventoryResponse registro de inventario en respuestas.
type InventoryResponse struct {
	ProductID         string    `json:"product_id"`
	Category          string    `json:"category"`
	StockQuantity     int64     `json:"stock_quantity"`
	ReservedQuantity  int64     `json:"reserved_quantity"`
	AvailableQuantity int64     `json:"available_quantity"`
	LowStockThreshold int64     `json:"low_stock_threshold"`
	IsInStock         bool      `json:"is_in_stock"`
	UpdatedAt         time.Time `json:"updated_at"`
}
