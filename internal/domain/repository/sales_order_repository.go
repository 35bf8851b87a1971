package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// SalesOrderRepository define el puerto de persistencia para SalesOrder.
type SalesOrderRepository interface {
	Create(ctx context.Context, order *entity.SalesOrder) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.SalesOrder, error)
	// ListConfirmedInHorizon devuelve pedidos confirmados con due_date en [start, end].
	ListConfirmedInHorizon(ctx context.Context, companyID string, start, end time.Time) ([]entity.SalesOrder, error)
}
