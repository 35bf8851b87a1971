package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación de SalesOrderRepository sobre PostgreSQL (usable con pool o tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador de pedidos de venta. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create persiste un pedido de venta.
func (r *SalesOrderRepo) Create(ctx context.Context, o *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, company_id, product_id, quantity, due_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.CompanyID, o.ProductID, o.Quantity, o.DueDate, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// ListByCompany lista pedidos de venta por empresa con paginación.
func (r *SalesOrderRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.SalesOrder, error) {
	query := `
		SELECT id, company_id, product_id, quantity, due_date, status, created_at
		FROM sales_orders WHERE company_id = $1 ORDER BY due_date, created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ProductID, &o.Quantity, &o.DueDate,
			&o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ListConfirmedInHorizon devuelve pedidos confirmados con due_date en [start, end].
func (r *SalesOrderRepo) ListConfirmedInHorizon(ctx context.Context, companyID string, start, end time.Time) ([]entity.SalesOrder, error) {
	query := `
		SELECT id, company_id, product_id, quantity, due_date, status, created_at
		FROM sales_orders
		WHERE company_id = $1 AND status = $2 AND due_date >= $3 AND due_date <= $4`
	rows, err := r.q.Query(ctx, query, companyID, entity.SalesOrderStatusConfirmed, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sales orders in horizon: %w", err)
	}
	defer rows.Close()
	var list []entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.ProductID, &o.Quantity, &o.DueDate,
			&o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
