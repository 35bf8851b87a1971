package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mrp-api/internal/domain"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.RecommendationRepository = (*RecommendationRepo)(nil)

// RecommendationRepo implementación de RecommendationRepository sobre PostgreSQL (usable con pool o tx).
type RecommendationRepo struct {
	q Querier
}

// NewRecommendationRepository construye el adaptador de recomendaciones. Pasar pool o tx (Querier).
func NewRecommendationRepository(q Querier) *RecommendationRepo {
	return &RecommendationRepo{q: q}
}

// Create persiste una recomendación. La constraint única (plan_id, run_id,
// product_id) respalda el invariante de una por producto por corrida.
func (r *RecommendationRepo) Create(ctx context.Context, rec *entity.Recommendation) error {
	query := `
		INSERT INTO recommendations (id, plan_id, run_id, company_id, product_id, type, quantity, suggested_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.PlanID, rec.RunID, rec.CompanyID, rec.ProductID,
		rec.Type, rec.Quantity, rec.SuggestedDate, rec.Status, rec.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recommendation: %w", err)
	}
	return nil
}

// ListByPlan pagina las recomendaciones de un plan y devuelve el total.
func (r *RecommendationRepo) ListByPlan(ctx context.Context, companyID, planID string, limit, offset int) ([]*entity.Recommendation, int, error) {
	var total int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM recommendations WHERE company_id = $1 AND plan_id = $2`,
		companyID, planID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count recommendations: %w", err)
	}

	query := `
		SELECT id, plan_id, run_id, company_id, product_id, type, quantity, suggested_date, status, created_at
		FROM recommendations
		WHERE company_id = $1 AND plan_id = $2
		ORDER BY created_at DESC, product_id
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, planID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Recommendation
	for rows.Next() {
		var rec entity.Recommendation
		if err := rows.Scan(&rec.ID, &rec.PlanID, &rec.RunID, &rec.CompanyID, &rec.ProductID,
			&rec.Type, &rec.Quantity, &rec.SuggestedDate, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan recommendation: %w", err)
		}
		list = append(list, &rec)
	}
	return list, total, rows.Err()
}

// ListLatestRun devuelve las recomendaciones de la corrida más reciente del plan.
func (r *RecommendationRepo) ListLatestRun(ctx context.Context, companyID, planID string) ([]entity.Recommendation, error) {
	query := `
		SELECT id, plan_id, run_id, company_id, product_id, type, quantity, suggested_date, status, created_at
		FROM recommendations
		WHERE company_id = $1 AND plan_id = $2
		  AND run_id = (
			SELECT run_id FROM recommendations
			WHERE company_id = $1 AND plan_id = $2
			ORDER BY created_at DESC LIMIT 1)
		ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, companyID, planID)
	if err != nil {
		return nil, fmt.Errorf("list latest run: %w", err)
	}
	defer rows.Close()
	var list []entity.Recommendation
	for rows.Next() {
		var rec entity.Recommendation
		if err := rows.Scan(&rec.ID, &rec.PlanID, &rec.RunID, &rec.CompanyID, &rec.ProductID,
			&rec.Type, &rec.Quantity, &rec.SuggestedDate, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
