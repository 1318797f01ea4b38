package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingAddressDTO dirección de envío en requests y respuestas.
type ShippingAddressDTO struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Phone   string `json:"phone"`
}

// OrderItemRequest línea solicitada en el checkout (cantidad >= 1).
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Category  string `json:"category"`
	Quantity  int64  `json:"quantity"`
}

// CreateOrderRequest body para POST /api/customer/orders.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress ShippingAddressDTO `json:"shipping_address"`
	PaymentMethod   string             `json:"payment_method,omitempty"` // cod (default) | online
	Notes           string             `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest body para PUT /api/admin/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// UpdatePaymentStatusRequest body para PUT /api/admin/orders/:id/payment.
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status"`
}

// OrderItemResponse línea de la orden en respuestas (snapshot del producto).
type OrderItemResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Category     string          `json:"category"`
	ProductName  string          `json:"product_name"`
	ProductImage string          `json:"product_image"`
	Brand        string          `json:"brand"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int64           `json:"quantity"`
	TotalPrice   decimal.Decimal `json:"total_price"`
}

// OrderResponse orden completa en respuestas.
type OrderResponse struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	OrderNumber       string              `json:"order_number"`
	Items             []OrderItemResponse `json:"items"`
	Subtotal          decimal.Decimal     `json:"subtotal"`
	Shipping          decimal.Decimal     `json:"shipping"`
	Tax               decimal.Decimal     `json:"tax"`
	Total             decimal.Decimal     `json:"total"`
	Status            string              `json:"status"`
	ShippingAddress   ShippingAddressDTO  `json:"shipping_address"`
	PaymentMethod     string              `json:"payment_method"`
	PaymentStatus     string              `json:"payment_status"`
	Notes             string              `json:"notes,omitempty"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
}

// OrderListResponse listado paginado de órdenes.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Page   PageResponse    `json:"pagination"`
}
