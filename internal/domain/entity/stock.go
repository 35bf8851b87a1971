package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la existencia disponible (on-hand) de un producto.
// Es un snapshot por empresa: la planificación es de sitio único.
type Stock struct {
	CompanyID string
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}
