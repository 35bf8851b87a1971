package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalesOrderRequest body para POST /api/sales-orders.
type CreateSalesOrderRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	DueDate   string          `json:"due_date"`
}

// SalesOrderResponse representación HTTP de un pedido de venta.
type SalesOrderResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	DueDate   time.Time       `json:"due_date"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateProductionOrderRequest body para POST /api/production-orders.
// Status opcional; por defecto `planned`.
type CreateProductionOrderRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	DueDate   string          `json:"due_date"`
	Status    string          `json:"status,omitempty"`
}

// ProductionOrderResponse representación HTTP de una orden de producción.
type ProductionOrderResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	DueDate   time.Time       `json:"due_date"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// UpsertStockRequest body para PUT /api/inventory/:productId (snapshot on-hand).
type UpsertStockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// StockResponse existencia on-hand de un producto.
type StockResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UpdatedAt time.Time       `json:"updated_at"`
}
