package order

import (
	"context"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	domorder "github.com/clohit/storefront-api/internal/domain/order"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// QueryUseCase lecturas de órdenes: historial del cliente y listados de admin.
type QueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewQueryUseCase construye el caso de uso de consultas.
func NewQueryUseCase(orderRepo repository.OrderRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo}
}

// GetForUser obtiene una orden del propio usuario. La orden de otro usuario
// no se revela: mismo ErrOrderNotFound.
func (uc *QueryUseCase) GetForUser(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return toOrderResponse(o), nil
}

// Get obtiene una orden por ID (admin).
func (uc *QueryUseCase) Get(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return toOrderResponse(o), nil
}

// ListForUser historial paginado del usuario, con filtro opcional de estado.
func (uc *QueryUseCase) ListForUser(ctx context.Context, userID, status string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	if status != "" && !domorder.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	orders, err := uc.orderRepo.ListByUser(ctx, userID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.CountByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, page, total), nil
}

// List listado paginado de todas las órdenes (admin), con filtro de estado.
func (uc *QueryUseCase) List(ctx context.Context, status string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	if status != "" && !domorder.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	orders, err := uc.orderRepo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.orderRepo.Count(ctx, status)
	if err != nil {
		return nil, err
	}
	return toOrderListResponse(orders, page, total), nil
}

func toOrderListResponse(orders []*entity.Order, page dto.PageRequest, total int) *dto.OrderListResponse {
	resp := &dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Page:   dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, *toOrderResponse(o))
	}
	return resp
}
