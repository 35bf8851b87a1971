package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido de venta. Solo los confirmados cuentan como demanda.
const (
	SalesOrderStatusConfirmed = "confirmed"
	SalesOrderStatusDelivered = "delivered"
	SalesOrderStatusCancelled = "cancelled"
)

// SalesOrder es una línea de pedido de venta confirmada (demanda real).
type SalesOrder struct {
	ID        string
	CompanyID string
	ProductID string
	Quantity  decimal.Decimal
	DueDate   time.Time
	Status    string
	CreatedAt time.Time
}
