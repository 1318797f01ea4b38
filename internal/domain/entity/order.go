package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Estados de pago (independientes del estado de la orden).
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Métodos de pago.
const (
	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"
)

// ValidPaymentStatus indica si el estado de pago es conocido.
func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid || s == PaymentStatusFailed
}

// ValidPaymentMethod indica si el método de pago es conocido.
func ValidPaymentMethod(m string) bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

// ShippingAddress dirección de envío embebida en la orden.
type ShippingAddress struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Phone   string
}

// Order representa una compra. Los totales se calculan al crearla y no se
// recalculan después de persistir; la cancelación es un estado terminal,
// nunca se borra la orden.
type Order struct {
	ID                string
	UserID            string
	OrderNumber       string // CL<YY><MM><DD><NNN>, único
	Items             []OrderItem
	Subtotal          decimal.Decimal
	Shipping          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	Status            string
	ShippingAddress   ShippingAddress
	PaymentMethod     string // cod | online
	PaymentStatus     string // pending | paid | failed
	Notes             string
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem línea de una orden: snapshot del producto al momento de la compra.
// Se desacopla del catálogo vivo para que las órdenes históricas no cambien
// si el producto se edita o elimina.
type OrderItem struct {
	ID           string
	OrderID      string
	ProductID    string
	Category     string
	ProductName  string
	ProductImage string
	Brand        string
	Price        decimal.Decimal
	Quantity     int64
	TotalPrice   decimal.Decimal
}
