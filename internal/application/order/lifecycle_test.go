package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
)

// placeTestOrder coloca una orden de 2 camisas para user-1 y la devuelve.
func placeTestOrder(t *testing.T, w *testWorld) *dto.OrderResponse {
	t.Helper()
	w.seedProduct("camisa", entity.CategoryMen, "Clohit", "Camisa Oxford", 300, 10)
	out, err := w.checkout.PlaceOrder(context.Background(), "user-1", dto.CreateOrderRequest{
		Items:           []dto.OrderItemRequest{{ProductID: "camisa", Category: entity.CategoryMen, Quantity: 2}},
		ShippingAddress: validAddress(),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetStatus (admin)
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_TransicionValida(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)

	out, err := w.lifecycle.SetStatus(context.Background(), o.ID, entity.OrderStatusConfirmed, "")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusConfirmed, out.Status)
	// Confirmar no toca la reserva
	assert.Equal(t, int64(2), w.inventoryOf("camisa", entity.CategoryMen).ReservedQuantity)
}

func TestSetStatus_TransicionInvalida(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)

	// pending -> shipped se salta confirmed y processing
	_, err := w.lifecycle.SetStatus(context.Background(), o.ID, entity.OrderStatusShipped, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El estado no cambió
	persisted, _ := w.orderRepo.GetByID(context.Background(), o.ID)
	assert.Equal(t, entity.OrderStatusPending, persisted.Status)
}

func TestSetStatus_CancelarLiberaLasReservas(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)

	out, err := w.lifecycle.SetStatus(context.Background(), o.ID, entity.OrderStatusCancelled, "cliente se arrepintió")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
	assert.Equal(t, "cliente se arrepintió", out.Notes)

	rec := w.inventoryOf("camisa", entity.CategoryMen)
	assert.Equal(t, int64(0), rec.ReservedQuantity, "cancelar devuelve exactamente lo reservado")
	assert.Equal(t, int64(10), rec.AvailableQuantity)
}

func TestSetStatus_ShippedFijaEntregaEstimada(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)
	ctx := context.Background()

	_, err := w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusConfirmed, "")
	require.NoError(t, err)
	_, err = w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusProcessing, "")
	require.NoError(t, err)
	out, err := w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusShipped, "")
	require.NoError(t, err)

	require.NotNil(t, out.EstimatedDelivery)
	assert.Equal(t, fixedNow.Add(3*24*time.Hour), *out.EstimatedDelivery,
		"shipped reestima la entrega a now + 3 días")
}

func TestSetStatus_OrdenInexistente(t *testing.T) {
	w := newTestWorld()

	_, err := w.lifecycle.SetStatus(context.Background(), "fantasma", entity.OrderStatusConfirmed, "")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestSetStatus_EstadoDesconocido(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)

	_, err := w.lifecycle.SetStatus(context.Background(), o.ID, "returned", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cancel (cliente)
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_DesdePendingLiberaElStock(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)

	out, err := w.lifecycle.Cancel(context.Background(), "user-1", o.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCancelled, out.Status)
	rec := w.inventoryOf("camisa", entity.CategoryMen)
	assert.Equal(t, int64(0), rec.ReservedQuantity)
	assert.Equal(t, int64(10), rec.AvailableQuantity)
}

func TestCancel_DeOtroUsuarioEsNotFound(t *testing.T) {
	// La existencia de órdenes ajenas no se revela: mismo error que inexistente.
	w := newTestWorld()
	o := placeTestOrder(t, w)

	_, err := w.lifecycle.Cancel(context.Background(), "user-2", o.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	persisted, _ := w.orderRepo.GetByID(context.Background(), o.ID)
	assert.Equal(t, entity.OrderStatusPending, persisted.Status)
}

func TestCancel_OrdenYaProcesadaNoSePuedeCancelar(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)
	ctx := context.Background()

	_, err := w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusConfirmed, "")
	require.NoError(t, err)

	_, err = w.lifecycle.Cancel(ctx, "user-1", o.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Nada cambió: ni el estado ni la reserva
	persisted, _ := w.orderRepo.GetByID(ctx, o.ID)
	assert.Equal(t, entity.OrderStatusConfirmed, persisted.Status)
	assert.Equal(t, int64(2), w.inventoryOf("camisa", entity.CategoryMen).ReservedQuantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SetPaymentStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPaymentStatus_IndependienteDelEstado(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)
	ctx := context.Background()

	// Avanzar la orden hasta shipped
	_, err := w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusConfirmed, "")
	require.NoError(t, err)
	_, err = w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusProcessing, "")
	require.NoError(t, err)
	_, err = w.lifecycle.SetStatus(ctx, o.ID, entity.OrderStatusShipped, "")
	require.NoError(t, err)

	// El pago se marca en cualquier estado de la orden
	out, err := w.lifecycle.SetPaymentStatus(ctx, o.ID, entity.PaymentStatusPaid)
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPaid, out.PaymentStatus)
	assert.Equal(t, entity.OrderStatusShipped, out.Status, "el estado de la orden no cambia")
}

func TestSetPaymentStatus_EstadoDePagoDesconocido(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)

	_, err := w.lifecycle.SetPaymentStatus(context.Background(), o.ID, "refunded")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetForUser_OrdenAjenaEsNotFound(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)
	ctx := context.Background()

	mine, err := w.queries.GetForUser(ctx, "user-1", o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, mine.ID)

	_, err = w.queries.GetForUser(ctx, "user-2", o.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListForUser_FiltraPorEstado(t *testing.T) {
	w := newTestWorld()
	o := placeTestOrder(t, w)
	ctx := context.Background()

	_, err := w.lifecycle.Cancel(ctx, "user-1", o.ID)
	require.NoError(t, err)

	cancelled, err := w.queries.ListForUser(ctx, "user-1", entity.OrderStatusCancelled, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, cancelled.Orders, 1)
	assert.Equal(t, 1, cancelled.Page.Total)

	pending, err := w.queries.ListForUser(ctx, "user-1", entity.OrderStatusPending, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, pending.Orders)

	_, err = w.queries.ListForUser(ctx, "user-1", "returned", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
