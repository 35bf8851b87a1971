package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateForecastRequest body para POST /api/forecasts. DueDate en formato 2006-01-02.
type CreateForecastRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	DueDate   string          `json:"due_date"`
}

// ForecastResponse representación HTTP de un pronóstico.
type ForecastResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	DueDate   time.Time       `json:"due_date"`
	CreatedAt time.Time       `json:"created_at"`
}
