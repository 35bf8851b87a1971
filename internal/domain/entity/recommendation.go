package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden planificada sugerida por el motor.
const (
	RecommendationTypeWorkOrder     = "PLANNED_WORK_ORDER"     // fabricar (existe BOM activa)
	RecommendationTypePurchaseOrder = "PLANNED_PURCHASE_ORDER" // comprar (sin BOM)
)

// Estados de la recomendación. El motor solo crea en `pending`; convertir o
// descartar es responsabilidad de los sistemas aguas abajo.
const (
	RecommendationStatusPending = "pending"
)

// Recommendation es una orden planificada sugerida para cubrir un faltante.
// Cantidad siempre estrictamente positiva; una por (plan, producto) por corrida.
type Recommendation struct {
	ID            string
	PlanID        string
	RunID         string // distingue corridas sucesivas del mismo plan
	CompanyID     string
	ProductID     string
	Type          string
	Quantity      decimal.Decimal
	SuggestedDate time.Time
	Status        string
	CreatedAt     time.Time
}
