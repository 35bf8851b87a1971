package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// ProductionOrderRepository define el puerto de persistencia para ProductionOrder.
type ProductionOrderRepository interface {
	Create(ctx context.Context, order *entity.ProductionOrder) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.ProductionOrder, error)
	// ListOpenInHorizon devuelve órdenes con estado en `statuses` y due_date en [start, end].
	ListOpenInHorizon(ctx context.Context, companyID string, start, end time.Time, statuses []string) ([]entity.ProductionOrder, error)
}
