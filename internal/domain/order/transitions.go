package order

import "github.com/clohit/storefront-api/internal/domain/entity"

// Tabla cerrada de transiciones de estado de una orden.
// pending -> confirmed | cancelled
// confirmed -> processing
// processing -> shipped
// shipped -> delivered
// delivered y cancelled son terminales.
var transitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusConfirmed, entity.OrderStatusCancelled},
	entity.OrderStatusConfirmed:  {entity.OrderStatusProcessing},
	entity.OrderStatusProcessing: {entity.OrderStatusShipped},
	entity.OrderStatusShipped:    {entity.OrderStatusDelivered},
}

// ValidStatus indica si el estado pertenece al conjunto cerrado.
func ValidStatus(s string) bool {
	switch s {
	case entity.OrderStatusPending, entity.OrderStatusConfirmed, entity.OrderStatusProcessing,
		entity.OrderStatusShipped, entity.OrderStatusDelivered, entity.OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition indica si la transición from -> to está permitida por la tabla.
// Un cambio al mismo estado no es una transición válida.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(s string) bool {
	return s == entity.OrderStatusDelivered || s == entity.OrderStatusCancelled
}
