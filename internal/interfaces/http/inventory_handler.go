package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/application/inventory"
	"github.com/clohit/storefront-api/internal/domain/entity"
)

// InventoryHandler administración del inventario (solo admin).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar inventario (admin)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.InventoryResponse
// @Router       /api/admin/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	records, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponses(records))
}

// ListLowStock godoc
// @Summary      Listar registros con stock bajo (admin)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/admin/inventory/low-stock [get]
func (h *InventoryHandler) ListLowStock(c *fiber.Ctx) error {
	records, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponses(records))
}

// Adjust godoc
// @Summary      Ajustar stock (admin): add | subtract | set
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "Operación de ajuste"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.AdjustStock(c.Context(), in.ProductID, in.Category, in.Quantity, in.Operation)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponse(record))
}

// BulkAdjust godoc
// @Summary      Ajuste masivo de stock (admin), todo o nada
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkAdjustRequest  true  "Líneas de ajuste"
// @Success      200   {object}  dto.BulkAdjustResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/bulk [post]
func (h *InventoryHandler) BulkAdjust(c *fiber.Ctx) error {
	var in dto.BulkAdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]inventory.BulkAdjustItem, 0, len(in.Updates))
	for _, u := range in.Updates {
		items = append(items, inventory.BulkAdjustItem{
			ProductID: u.ProductID,
			Category:  u.Category,
			Amount:    u.Quantity,
			Operation: u.Operation,
		})
	}
	records, err := h.uc.BulkAdjust(c.Context(), items)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.BulkAdjustResponse{Updated: toInventoryResponses(records)})
}

// Update godoc
// @Summary      Actualizar stock y/o umbral de un producto (admin)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateInventoryRequest  true  "Campos a actualizar"
// @Success      200        {object}  dto.InventoryResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/admin/inventory/{productId} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.uc.UpdateSettings(c.Context(), productID, in.Category, in.StockQuantity, in.LowStockThreshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponse(record))
}

func toInventoryResponse(r *entity.InventoryRecord) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ProductID:         r.ProductID,
		Category:          r.Category,
		StockQuantity:     r.StockQuantity,
		ReservedQuantity:  r.ReservedQuantity,
		AvailableQuantity: r.AvailableQuantity,
		LowStockThreshold: r.LowStockThreshold,
		IsInStock:         r.IsInStock,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toInventoryResponses(records []*entity.InventoryRecord) []dto.InventoryResponse {
	list := make([]dto.InventoryResponse, 0, len(records))
	for _, r := range records {
		list = append(list, *toInventoryResponse(r))
	}
	return list
}
