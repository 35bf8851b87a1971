package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mrp-api/internal/application/auth"
	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/application/usecase"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanUC     *usecase.PlanUseCase
	RunPlan    *planning.RunPlanUseCase
	PlanReport *planning.PlanReportUseCase
	ForecastUC *usecase.ForecastUseCase
	OrderUC    *usecase.OrderUseCase
	ProductUC  *usecase.ProductUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Plans (protegido). Ejecutar la corrida requiere rol planner o admin.
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC, deps.RunPlan, deps.PlanReport)
	plans.Post("/", planHandler.Create)
	plans.Get("/", planHandler.List)
	plans.Get("/:id", planHandler.GetByID)
	plans.Post("/:id/run", RequireRole(entity.RoleAdmin, entity.RolePlanner), planHandler.Run)
	plans.Get("/:id/recommendations", planHandler.ListRecommendations)
	plans.Get("/:id/audit", planHandler.ListAudit)
	plans.Get("/:id/report.pdf", planHandler.Report)

	// Forecasts (protegido, demanda)
	forecasts := protected.Group("/forecasts")
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	forecasts.Post("/", forecastHandler.Create)
	forecasts.Get("/", forecastHandler.List)
	forecasts.Delete("/:id", forecastHandler.Delete)

	// Sales orders (protegido, demanda)
	orderHandler := NewOrderHandler(deps.OrderUC)
	salesOrders := protected.Group("/sales-orders")
	salesOrders.Post("/", orderHandler.CreateSalesOrder)
	salesOrders.Get("/", orderHandler.ListSalesOrders)

	// Production orders (protegido, suministro)
	prodOrders := protected.Group("/production-orders")
	prodOrders.Post("/", orderHandler.CreateProductionOrder)
	prodOrders.Get("/", orderHandler.ListProductionOrders)

	// Inventory snapshot (protegido, suministro)
	invGroup := protected.Group("/inventory")
	invGroup.Put("/:productId", orderHandler.UpsertStock)

	// Products + BOM (protegido, catálogo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Put("/:id/bom", productHandler.UpsertBOM)
	products.Delete("/:id/bom", productHandler.RemoveBOM)
}
