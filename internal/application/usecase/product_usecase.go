package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clohit/storefront-api/internal/application/dto"
	"github.com/clohit/storefront-api/internal/domain"
	"github.com/clohit/storefront-api/internal/domain/entity"
	"github.com/clohit/storefront-api/internal/domain/repository"
)

// InventoryService operaciones de inventario que necesita el catálogo:
// inicializar el registro al crear un producto y eliminarlo al borrarlo.
type InventoryService interface {
	AdjustStock(ctx context.Context, productID, category string, amount int64, op string) (*entity.InventoryRecord, error)
	DeleteForProduct(ctx context.Context, productID, category string) error
}

// ProductUseCase CRUD del catálogo de productos (admin) y listados públicos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	inventoryUC InventoryService
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(productRepo repository.ProductRepository, inventoryUC InventoryService) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, inventoryUC: inventoryUC}
}

// Create crea el producto e inicializa su inventario en 0 unidades.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidCategory(in.Category) || in.Brand == "" || in.Name == "" || in.Image == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.MRP.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Category:  in.Category,
		Brand:     in.Brand,
		Name:      in.Name,
		Image:     in.Image,
		MRP:       in.MRP,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	// Inicializar inventario del producto (set 0)
	if _, err := uc.inventoryUC.AdjustStock(ctx, product.ID, product.Category, 0, entity.StockOpSet); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos presentes del producto. Las órdenes históricas
// no cambian: sus líneas guardan un snapshot.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.MRP != nil {
		if in.MRP.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MRP = *in.MRP
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto y su registro de inventario asociado.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.inventoryUC.DeleteForProduct(ctx, product.ID, product.Category)
}

// GetByID obtiene un producto del catálogo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos por categoría (vacía = todas), paginado.
func (uc *ProductUseCase) List(ctx context.Context, category string, page dto.PageRequest) ([]dto.ProductResponse, *dto.PageResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	products, err := uc.productRepo.ListByCategory(ctx, category, page.Limit, page.Offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.productRepo.CountByCategory(ctx, category)
	if err != nil {
		return nil, nil, err
	}
	list := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		list = append(list, *toProductResponse(p))
	}
	return list, &dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Search busca en el catálogo por texto (marca o nombre), marca, categoría y
// rango de precios, paginado.
func (uc *ProductUseCase) Search(ctx context.Context, filter repository.ProductFilter, page dto.PageRequest) ([]dto.ProductResponse, *dto.PageResponse, error) {
	if filter.Category != "" && !entity.ValidCategory(filter.Category) {
		return nil, nil, domain.ErrInvalidInput
	}
	if (filter.MinPrice != nil && filter.MinPrice.IsNegative()) ||
		(filter.MaxPrice != nil && filter.MaxPrice.IsNegative()) {
		return nil, nil, domain.ErrInvalidInput
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	products, err := uc.productRepo.Search(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.productRepo.CountSearch(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	list := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		list = append(list, *toProductResponse(p))
	}
	return list, &dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total}, nil
}

// Productos por categoría en la portada de destacados.
const featuredPerCategory = 6

// Featured devuelve los destacados de la portada: los más recientes de cada
// categoría.
func (uc *ProductUseCase) Featured(ctx context.Context) (*dto.FeaturedProductsResponse, error) {
	men, err := uc.productRepo.ListByCategory(ctx, entity.CategoryMen, featuredPerCategory, 0)
	if err != nil {
		return nil, err
	}
	women, err := uc.productRepo.ListByCategory(ctx, entity.CategoryWomen, featuredPerCategory, 0)
	if err != nil {
		return nil, err
	}
	out := &dto.FeaturedProductsResponse{
		MenProducts:   make([]dto.ProductResponse, 0, len(men)),
		WomenProducts: make([]dto.ProductResponse, 0, len(women)),
	}
	for _, p := range men {
		out.MenProducts = append(out.MenProducts, *toProductResponse(p))
	}
	for _, p := range women {
		out.WomenProducts = append(out.WomenProducts, *toProductResponse(p))
	}
	return out, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:       p.ID,
		Category: p.Category,
		Brand:    p.Brand,
		Name:     p.Name,
		Image:    p.Image,
		MRP:      p.MRP,
		Price:    p.Price,
	}
}
