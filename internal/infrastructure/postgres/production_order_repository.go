package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)

// ProductionOrderRepo implementación de ProductionOrderRepository sobre PostgreSQL (usable con pool o tx).
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador de órdenes de producción. Pasar pool o tx (Querier).
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

// Create persiste una orden de producción.
func (r *ProductionOrderRepo) Create(ctx context.Context, o *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (id, company_id, product_id, quantity, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CompanyID, o.ProductID, o.Quantity, o.DueDate, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

// ListByCompany lista órdenes de producción por empresa con paginación.
func (r *ProductionOrderRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ProductionOrder, error) {
	query := `
		SELECT id, company_id, product_id, quantity, due_date, status, created_at
		FROM production_orders WHERE company_id = $1 ORDER BY due_date, created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ProductID, &o.Quantity, &o.DueDate,
			&o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListOpenInHorizon devuelve órdenes con estado en `statuses` y due_date en [start, end].
func (r *ProductionOrderRepo) ListOpenInHorizon(ctx context.Context, companyID string, start, end time.Time, statuses []string) ([]entity.ProductionOrder, error) {
	query := `
		SELECT id, company_id, product_id, quantity, due_date, status, created_at
		FROM production_orders
		WHERE company_id = $1 AND status = ANY($2) AND due_date >= $3 AND due_date <= $4`
	rows, err := r.q.Query(ctx, query, companyID, statuses, start, end)
	if err != nil {
		return nil, fmt.Errorf("list production orders in horizon: %w", err)
	}
	defer rows.Close()
	var list []entity.ProductionOrder
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ProductID, &o.Quantity, &o.DueDate,
			&o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
