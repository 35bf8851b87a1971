package entity

import "time"

// Estados del plan de producción. `running` solo existe durante la transacción
// de ejecución: si esta aborta, el rollback devuelve el plan a su estado previo.
const (
	PlanStatusDraft     = "draft"
	PlanStatusRunning   = "running"
	PlanStatusCompleted = "completed"
)

// Plan representa una corrida de planificación MRP sobre un horizonte de fechas.
// Solo el coordinador de ejecución muta su estado; nunca se elimina mientras
// existan recomendaciones que lo referencien.
type Plan struct {
	ID           string
	CompanyID    string
	Name         string
	HorizonStart time.Time
	HorizonEnd   time.Time
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Runnable indica si el plan puede iniciar una nueva ejecución.
func (p *Plan) Runnable() bool {
	return p.Status == PlanStatusDraft || p.Status == PlanStatusCompleted
}

// ValidHorizon verifica el invariante horizon_start <= horizon_end.
func (p *Plan) ValidHorizon() bool {
	return !p.HorizonStart.After(p.HorizonEnd)
}
