package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, user_id, order_number, subtotal, shipping, tax, total, status,
	ship_name, ship_address, ship_city, ship_state, ship_zip_code, ship_phone,
	payment_method, payment_status, notes, estimated_delivery, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var notes *string
	err := row.Scan(
		&o.ID, &o.UserID, &o.OrderNumber, &o.Subtotal, &o.Shipping, &o.Tax, &o.Total, &o.Status,
		&o.ShippingAddress.Name, &o.ShippingAddress.Address, &o.ShippingAddress.City,
		&o.ShippingAddress.State, &o.ShippingAddress.ZipCode, &o.ShippingAddress.Phone,
		&o.PaymentMethod, &o.PaymentStatus, &notes, &o.EstimatedDelivery, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		o.Notes = *notes
	}
	return &o, nil
}

// Create persiste la cabecera de la orden.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, user_id, order_number, subtotal, shipping, tax, total, status,
			ship_name, ship_address, ship_city, ship_state, ship_zip_code, ship_phone,
			payment_method, payment_status, notes, estimated_delivery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.UserID, order.OrderNumber,
		order.Subtotal, order.Shipping, order.Tax, order.Total, order.Status,
		order.ShippingAddress.Name, order.ShippingAddress.Address, order.ShippingAddress.City,
		order.ShippingAddress.State, order.ShippingAddress.ZipCode, order.ShippingAddress.Phone,
		order.PaymentMethod, order.PaymentStatus, nullIfEmpty(order.Notes),
		order.EstimatedDelivery, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("número de orden duplicado: %w", err)
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de la orden (snapshot del producto).
func (r *OrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, category, product_name, product_image, brand, price, quantity, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.Category, item.ProductName,
		item.ProductImage, item.Brand, item.Price, item.Quantity, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene la orden con sus líneas. Retorna nil si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate obtiene la orden bloqueando la fila (SELECT FOR UPDATE) y carga sus líneas.
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, id, true)
}

func (r *OrderRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepo) getItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, category, product_name, product_image, brand, price, quantity, total_price
		FROM order_items WHERE order_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.Category, &it.ProductName,
			&it.ProductImage, &it.Brand, &it.Price, &it.Quantity, &it.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update persiste estado, pago, notas y entrega estimada de la orden.
// Los totales y las líneas nunca se reescriben después de la creación.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = $2, payment_status = $3, notes = $4, estimated_delivery = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.Status, order.PaymentStatus, nullIfEmpty(order.Notes),
		order.EstimatedDelivery, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByUser historial de órdenes del usuario, más reciente primero.
func (r *OrderRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Order, error) {
	var (
		query string
		args  []any
	)
	if status != "" {
		query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
		args = []any{userID, status, limit, offset}
	} else {
		query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []any{userID, limit, offset}
	}
	return r.list(ctx, query, args...)
}

// CountByUser cuenta las órdenes del usuario, con filtro opcional de estado.
func (r *OrderRepo) CountByUser(ctx context.Context, userID, status string) (int, error) {
	var (
		query string
		args  []any
	)
	if status != "" {
		query = `SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = $2`
		args = []any{userID, status}
	} else {
		query = `SELECT COUNT(*) FROM orders WHERE user_id = $1`
		args = []any{userID}
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

// List todas las órdenes (admin), con filtro opcional de estado.
func (r *OrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Order, error) {
	var (
		query string
		args  []any
	)
	if status != "" {
		query = `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = []any{status, limit, offset}
	} else {
		query = `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = []any{limit, offset}
	}
	return r.list(ctx, query, args...)
}

// Count cuenta todas las órdenes, con filtro opcional de estado.
func (r *OrderRepo) Count(ctx context.Context, status string) (int, error) {
	var (
		query string
		args  []any
	)
	if status != "" {
		query = `SELECT COUNT(*) FROM orders WHERE status = $1`
		args = []any{status}
	} else {
		query = `SELECT COUNT(*) FROM orders`
	}
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.getItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}
