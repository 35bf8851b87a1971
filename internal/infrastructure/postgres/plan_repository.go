package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository sobre PostgreSQL (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de planes. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Create persiste un plan nuevo (estado draft).
func (r *PlanRepo) Create(ctx context.Context, plan *entity.Plan) error {
	query := `
		INSERT INTO plans (id, company_id, name, horizon_start, horizon_end, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		plan.ID, plan.CompanyID, plan.Name, plan.HorizonStart, plan.HorizonEnd,
		plan.Status, plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID. Devuelve nil, nil si no existe.
func (r *PlanRepo) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	query := `
		SELECT id, company_id, name, horizon_start, horizon_end, status, created_at, updated_at
		FROM plans WHERE id = $1`
	var p entity.Plan
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.HorizonStart, &p.HorizonEnd, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// ListByCompany lista planes por empresa con paginación.
func (r *PlanRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Plan, error) {
	query := `
		SELECT id, company_id, name, horizon_start, horizon_end, status, created_at, updated_at
		FROM plans WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.HorizonStart, &p.HorizonEnd,
			&p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AcquireRunLock toma el advisory lock de corrida para el plan, ligado a la
// transacción actual (pg_try_advisory_xact_lock). Se libera solo en
// Commit/Rollback; devuelve false si otra corrida lo tiene.
func (r *PlanRepo) AcquireRunLock(ctx context.Context, planID string) (bool, error) {
	var locked bool
	err := r.q.QueryRow(ctx,
		`SELECT pg_try_advisory_xact_lock(hashtextextended($1, 0))`, planID,
	).Scan(&locked)
	if err != nil {
		return false, fmt.Errorf("acquire run lock: %w", err)
	}
	return locked, nil
}

// TransitionStatus cambia el estado del plan solo si el actual está en `from`
// (transición condicional, guardia optimista). Devuelve false si fue rechazada.
func (r *PlanRepo) TransitionStatus(ctx context.Context, planID string, from []string, to string) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE plans SET status = $2, updated_at = now() WHERE id = $1 AND status = ANY($3)`,
		planID, to, from,
	)
	if err != nil {
		return false, fmt.Errorf("transition plan status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
