package order

import (
	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain/entity"
)

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		OrderNumber: o.OrderNumber,
		Items:       make([]dto.OrderItemResponse, 0, len(o.Items)),
		Subtotal:    o.Subtotal,
		Shipping:    o.Shipping,
		Tax:         o.Tax,
		Total:       o.Total,
		Status:      o.Status,
		ShippingAddress: dto.ShippingAddressDTO{
			Name:    o.ShippingAddress.Name,
			Address: o.ShippingAddress.Address,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Phone:   o.ShippingAddress.Phone,
		},
		PaymentMethod:     o.PaymentMethod,
		PaymentStatus:     o.PaymentStatus,
		Notes:             o.Notes,
		EstimatedDelivery: o.EstimatedDelivery,
		CreatedAt:         o.CreatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Category:     item.Category,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Brand:        item.Brand,
			Price:        item.Price,
			Quantity:     item.Quantity,
			TotalPrice:   item.TotalPrice,
		})
	}
	return resp
}
