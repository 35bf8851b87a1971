package planning

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Todas las lecturas (horizonte, demanda,
// suministro, BOM) y escrituras (recomendaciones, estado del plan) de una
// corrida viajan por estos repos: la garantía todo-o-nada es estructural,
// no convencional.
type TxRunner interface {
	RunPlanning(ctx context.Context, fn func(
		planRepo repository.PlanRepository,
		forecastRepo repository.ForecastRepository,
		salesOrderRepo repository.SalesOrderRepository,
		stockRepo repository.StockRepository,
		productionOrderRepo repository.ProductionOrderRepository,
		bomRepo repository.BOMRepository,
		recRepo repository.RecommendationRepository,
	) error) error
}

// AuditRecorder recibe eventos de inicio/fin de corrida. Best-effort y fuera
// de la transacción: no devuelve error y un fallo al registrar jamás aborta
// ni bloquea la planificación.
type AuditRecorder interface {
	Record(ctx context.Context, companyID, eventType, entityID string, payload any)
}

// PlanReportGenerator genera la representación PDF de las recomendaciones de
// una corrida.
type PlanReportGenerator interface {
	GeneratePlanReport(
		ctx context.Context,
		plan *entity.Plan,
		recs []entity.Recommendation,
		products map[string]*entity.Product,
	) ([]byte, error)
}
