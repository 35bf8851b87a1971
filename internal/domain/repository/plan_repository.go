package repository

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// PlanRepository define el puerto de persistencia para Plan (DIP).
// Las transiciones de estado y el lock de ejecución se usan dentro de la
// transacción de planificación para garantizar exclusión entre corridas.
type PlanRepository interface {
	Create(ctx context.Context, plan *entity.Plan) error
	GetByID(ctx context.Context, id string) (*entity.Plan, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Plan, error)
	// AcquireRunLock intenta tomar un advisory lock ligado a la transacción
	// para el plan. Devuelve false si otra corrida lo tiene tomado.
	AcquireRunLock(ctx context.Context, planID string) (bool, error)
	// TransitionStatus cambia el estado solo si el actual está en `from`.
	// Devuelve false si ninguna fila coincidió (transición rechazada).
	TransitionStatus(ctx context.Context, planID string, from []string, to string) (bool, error)
}
