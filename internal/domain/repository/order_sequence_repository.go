package repository

import (
	"context"
	"time"
)

// OrderSequenceRepository define el puerto del consecutivo diario de órdenes.
// Next debe ser un increment-and-read atómico por día: dos llamadas
// concurrentes nunca reciben el mismo valor.
type OrderSequenceRepository interface {
	Next(ctx context.Context, day time.Time) (int, error)
}
