package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// ForecastRepository define el puerto de persistencia para Forecast.
type ForecastRepository interface {
	Create(ctx context.Context, forecast *entity.Forecast) error
	Delete(ctx context.Context, id, companyID string) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Forecast, error)
	// ListInHorizon devuelve los pronósticos con due_date dentro de [start, end].
	ListInHorizon(ctx context.Context, companyID string, start, end time.Time) ([]entity.Forecast, error)
}
