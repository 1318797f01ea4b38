package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/admin/products.
type CreateProductRequest struct {
	Category string          `json:"category"` // men | women
	Brand    string          `json:"brand"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	MRP      decimal.Decimal `json:"mrp"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest body para PUT /api/admin/products/:id.
// Solo los campos presentes se actualizan.
type UpdateProductRequest struct {
	Brand *string          `json:"brand,omitempty"`
	Name  *string          `json:"name,omitempty"`
	Image *string          `json:"image,omitempty"`
	MRP   *decimal.Decimal `json:"mrp,omitempty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	MRP      decimal.Decimal `json:"mrp"`
	Price    decimal.Decimal `json:"price"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"pagination"`
}

// FeaturedProductsResponse destacados de la portada por categoría.
type FeaturedProductsResponse struct {
	MenProducts   []ProductResponse `json:"men_products"`
	WomenProducts []ProductResponse `json:"women_products"`
}
