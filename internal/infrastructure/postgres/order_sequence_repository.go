package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/clohit/storefront-api/internal/domain/repository"
)

var _ repository.OrderSequenceRepository = (*OrderSequenceRepo)(nil)

// OrderSequenceRepo consecutivo diario de órdenes sobre PostgreSQL.
// El increment-and-read es atómico a nivel de fila: dos checkouts
// concurrentes del mismo día nunca reciben el mismo valor.
type OrderSequenceRepo struct {
	q Querier
}

// NewOrderSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderSequenceRepository(q Querier) *OrderSequenceRepo {
	return &OrderSequenceRepo{q: q}
}

// Next incrementa y devuelve el consecutivo del día (1 para la primera orden).
func (r *OrderSequenceRepo) Next(ctx context.Context, day time.Time) (int, error) {
	query := `
		INSERT INTO order_sequences (day, counter)
		VALUES ($1, 1)
		ON CONFLICT (day)
		DO UPDATE SET counter = order_sequences.counter + 1
		RETURNING counter`
	var seq int
	if err := r.q.QueryRow(ctx, query, day.Format("2006-01-02")).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next order sequence: %w", err)
	}
	return seq, nil
}
