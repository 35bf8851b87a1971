package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

// Ensure TxRunner implements planning.TxRunner.
var _ planning.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunPlanning inicia una transacción, ejecuta fn con los repos del motor de
// planificación atados a la tx y hace Commit o Rollback. El advisory lock de
// corrida (AcquireRunLock) vive en esta misma transacción, así que se libera
// solo en ambos desenlaces.
func (r *TxRunner) RunPlanning(ctx context.Context, fn func(
	planRepo repository.PlanRepository,
	forecastRepo repository.ForecastRepository,
	salesOrderRepo repository.SalesOrderRepository,
	stockRepo repository.StockRepository,
	productionOrderRepo repository.ProductionOrderRepository,
	bomRepo repository.BOMRepository,
	recRepo repository.RecommendationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	planRepo := NewPlanRepository(tx)
	forecastRepo := NewForecastRepository(tx)
	salesOrderRepo := NewSalesOrderRepository(tx)
	stockRepo := NewStockRepository(tx)
	productionOrderRepo := NewProductionOrderRepository(tx)
	bomRepo := NewBOMRepository(tx)
	recRepo := NewRecommendationRepository(tx)

	if err := fn(planRepo, forecastRepo, salesOrderRepo, stockRepo, productionOrderRepo, bomRepo, recRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
