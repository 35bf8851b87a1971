package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Forecast es una línea de demanda pronosticada para un producto en una fecha.
// Inmutable una vez capturada; el motor de netting solo la lee.
type Forecast struct {
	ID        string
	CompanyID string
	ProductID string
	Quantity  decimal.Decimal // no negativa
	DueDate   time.Time
	CreatedAt time.Time
	CreatedBy string
}
