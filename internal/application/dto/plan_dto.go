package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePlanRequest body para POST /api/plans. Fechas en formato 2006-01-02.
type CreatePlanRequest struct {
	Name         string `json:"name"`
	HorizonStart string `json:"horizon_start"`
	HorizonEnd   string `json:"horizon_end"`
}

// PlanResponse representación HTTP de un plan.
type PlanResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	HorizonStart time.Time `json:"horizon_start"`
	HorizonEnd   time.Time `json:"horizon_end"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// RecommendationResponse una orden planificada sugerida.
type RecommendationResponse struct {
	ID            string          `json:"id"`
	PlanID        string          `json:"plan_id"`
	RunID         string          `json:"run_id"`
	ProductID     string          `json:"product_id"`
	Type          string          `json:"type"` // PLANNED_WORK_ORDER | PLANNED_PURCHASE_ORDER
	Quantity      decimal.Decimal `json:"quantity"`
	SuggestedDate time.Time       `json:"suggested_date"`
	Status        string          `json:"status"`
}

// RunPlanResponse respuesta de POST /api/plans/:id/run.
type RunPlanResponse struct {
	Success         bool                     `json:"success"`
	PlanID          string                   `json:"plan_id"`
	RunID           string                   `json:"run_id"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// RecommendationListResponse respuesta paginada de GET /api/plans/:id/recommendations.
type RecommendationListResponse struct {
	Items  []RecommendationResponse `json:"items"`
	Total  int                      `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// AuditEventResponse evento de auditoría de un plan.
type AuditEventResponse struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	EntityID  string    `json:"entity_id"`
	Payload   string    `json:"payload,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
