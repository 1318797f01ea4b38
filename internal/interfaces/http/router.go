package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clohit/storefront-api/internal/application/auth"
	"github.com/clohit/storefront-api/internal/application/inventory"
	"github.com/clohit/storefront-api/internal/application/order"
	"github.com/clohit/storefront-api/internal/application/usecase"
	"github.com/clohit/storefront-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	InventoryUC *inventory.UseCase
	CheckoutUC  *order.CheckoutUseCase
	LifecycleUC *order.LifecycleUseCase
	OrderQuery  *order.QueryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (público, solo lectura). /search y /featured antes de /:id.
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/featured", productHandler.Featured)
	products.Get("/:id", productHandler.GetByID)

	orderHandler := NewOrderHandler(deps.CheckoutUC, deps.LifecycleUC, deps.OrderQuery)
	userHandler := NewUserHandler(deps.UserUC)

	// Rutas de cliente (requieren Bearer Token)
	customer := api.Group("/customer", AuthMiddleware(deps.JWTSecret))
	customer.Get("/profile", userHandler.Profile)
	customer.Put("/profile", userHandler.UpdateProfile)
	customerOrders := customer.Group("/orders")
	customerOrders.Post("/", orderHandler.Create)
	customerOrders.Get("/", orderHandler.ListMine)
	customerOrders.Get("/:id", orderHandler.GetMine)
	customerOrders.Put("/:id/cancel", orderHandler.Cancel)

	// Rutas de admin (Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	adminProducts := admin.Group("/products")
	adminProducts.Post("/", productHandler.Create)
	adminProducts.Put("/:id", productHandler.Update)
	adminProducts.Delete("/:id", productHandler.Delete)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", orderHandler.List)
	adminOrders.Get("/:id", orderHandler.GetByID)
	adminOrders.Put("/:id/status", orderHandler.UpdateStatus)
	adminOrders.Put("/:id/payment", orderHandler.UpdatePayment)

	adminUsers := admin.Group("/users")
	adminUsers.Get("/", userHandler.List)
	adminUsers.Get("/:id", userHandler.GetByID)
	adminUsers.Put("/:id", userHandler.Update)
	adminUsers.Delete("/:id", userHandler.Delete)

	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	adminInventory := admin.Group("/inventory")
	adminInventory.Get("/", inventoryHandler.List)
	adminInventory.Get("/low-stock", inventoryHandler.ListLowStock)
	adminInventory.Post("/adjust", inventoryHandler.Adjust)
	adminInventory.Post("/bulk", inventoryHandler.BulkAdjust)
	adminInventory.Put("/:productId", inventoryHandler.Update)
}
