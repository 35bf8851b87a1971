package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.ForecastRepository = (*ForecastRepo)(nil)

// ForecastRepo implementación de ForecastRepository sobre PostgreSQL (usable con pool o tx).
type ForecastRepo struct {
	q Querier
}

// NewForecastRepository construye el adaptador de pronósticos. Pasar pool o tx (Querier).
func NewForecastRepository(q Querier) *ForecastRepo {
	return &ForecastRepo{q: q}
}

// Create persiste una línea de pronóstico.
func (r *ForecastRepo) Create(ctx context.Context, f *entity.Forecast) error {
	query := `
		INSERT INTO forecasts (id, company_id, product_id, quantity, due_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.CompanyID, f.ProductID, f.Quantity, f.DueDate, f.CreatedAt, f.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert forecast: %w", err)
	}
	return nil
}

// Delete elimina un pronóstico de la empresa.
func (r *ForecastRepo) Delete(ctx context.Context, id, companyID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM forecasts WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("delete forecast: %w", err)
	}
	return nil
}

// ListByCompany lista pronósticos por empresa con paginación.
func (r *ForecastRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Forecast, error) {
	query := `
		SELECT id, company_id, product_id, quantity, due_date, created_at, created_by
		FROM forecasts WHERE company_id = $1 ORDER BY due_date, created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list forecasts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Forecast
	for rows.Next() {
		var f entity.Forecast
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.ProductID, &f.Quantity, &f.DueDate,
			&f.CreatedAt, &f.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// ListInHorizon devuelve los pronósticos con due_date dentro de [start, end].
func (r *ForecastRepo) ListInHorizon(ctx context.Context, companyID string, start, end time.Time) ([]entity.Forecast, error) {
	query := `
		SELECT id, company_id, product_id, quantity, due_date, created_at, created_by
		FROM forecasts
		WHERE company_id = $1 AND due_date >= $2 AND due_date <= $3`
	rows, err := r.q.Query(ctx, query, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list forecasts in horizon: %w", err)
	}
	defer rows.Close()
	var list []entity.Forecast
	for rows.Next() {
		var f entity.Forecast
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.ProductID, &f.Quantity, &f.DueDate,
			&f.CreatedAt, &f.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
