package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	domorder "github.com/clohit/storefront-api/internal/domain/order"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// Entrega estimada al crear la orden.
const deliveryEstimateDays = 7

// CheckoutUseCase coloca una orden: valida cada línea contra el catálogo,
// reserva stock y persiste la orden en estado pending. Todo el checkout corre
// en una sola transacción: si una línea falla, las reservas de las líneas
// anteriores se revierten con el rollback (todo-o-nada).
type CheckoutUseCase struct {
	txRunner    TxRunner
	inventoryUC InventoryService
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewCheckoutUseCase construye el caso de uso de checkout.
func NewCheckoutUseCase(txRunner TxRunner, inventoryUC InventoryService, productRepo repository.ProductRepository) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:    txRunner,
		inventoryUC: inventoryUC,
		productRepo: productRepo,
		now:         time.Now,
	}
}

// PlaceOrder crea una orden para el usuario con las líneas solicitadas.
// Por cada línea, en orden: resuelve el producto, verifica disponibilidad,
// toma snapshot de nombre/imagen/marca/precio y reserva el stock. El número
// de orden sale del consecutivo diario atómico dentro de la misma transacción.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ShippingAddress.Name == "" || in.ShippingAddress.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCOD
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !entity.ValidCategory(item.Category) || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Resolver productos (solo lectura, fuera de la tx)
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.Category != item.Category {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
		}
		productsByID[item.ProductID] = product
	}

	now := uc.now()
	orderID := uuid.New().String()
	var created *entity.Order

	err := uc.txRunner.RunCheckout(ctx, func(
		invRepo repository.InventoryRepository,
		orderRepo repository.OrderRepository,
		seqRepo repository.OrderSequenceRepository,
	) error {
		// 1) Reservar stock línea por línea; cualquier fallo revierte todas
		// las reservas anteriores (rollback de la transacción).
		items := make([]entity.OrderItem, 0, len(in.Items))
		subtotal := decimal.Zero
		for _, item := range in.Items {
			product := productsByID[item.ProductID]
			if err := uc.inventoryUC.ReserveInTx(ctx, invRepo, item.ProductID, item.Category, item.Quantity, now); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("%w para %s - %s", domain.ErrInsufficientStock, product.Brand, product.Name)
				}
				return err
			}
			totalPrice := product.Price.Mul(decimal.NewFromInt(item.Quantity))
			subtotal = subtotal.Add(totalPrice)
			items = append(items, entity.OrderItem{
				ID:           uuid.New().String(),
				OrderID:      orderID,
				ProductID:    product.ID,
				Category:     product.Category,
				ProductName:  product.Name,
				ProductImage: product.Image,
				Brand:        product.Brand,
				Price:        product.Price,
				Quantity:     item.Quantity,
				TotalPrice:   totalPrice,
			})
		}

		// 2) Totales: envío gratis sobre el umbral, IVA 18%
		totals := domorder.ComputeTotals(subtotal)

		// 3) Número de orden desde el consecutivo diario (atómico, misma tx)
		seq, err := seqRepo.Next(ctx, now)
		if err != nil {
			return err
		}

		// 4) Persistir cabecera y líneas en estado pending
		eta := now.Add(deliveryEstimateDays * 24 * time.Hour)
		created = &entity.Order{
			ID:          orderID,
			UserID:      userID,
			OrderNumber: domorder.FormatNumber(now, seq),
			Items:       items,
			Subtotal:    totals.Subtotal,
			Shipping:    totals.Shipping,
			Tax:         totals.Tax,
			Total:       totals.Total,
			Status:      entity.OrderStatusPending,
			ShippingAddress: entity.ShippingAddress{
				Name:    in.ShippingAddress.Name,
				Address: in.ShippingAddress.Address,
				City:    in.ShippingAddress.City,
				State:   in.ShippingAddress.State,
				ZipCode: in.ShippingAddress.ZipCode,
				Phone:   in.ShippingAddress.Phone,
			},
			PaymentMethod:     paymentMethod,
			PaymentStatus:     entity.PaymentStatusPending,
			Notes:             in.Notes,
			EstimatedDelivery: &eta,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := orderRepo.Create(ctx, created); err != nil {
			return err
		}
		for i := range created.Items {
			if err := orderRepo.CreateItem(ctx, &created.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toOrderResponse(created), nil
}
