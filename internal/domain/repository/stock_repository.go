package repository

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar existencias on-hand.
// El motor de planificación solo lo lee; la escritura llega por el endpoint de
// inventario del colaborador externo.
type StockRepository interface {
	Get(ctx context.Context, companyID, productID string) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
	ListByCompany(ctx context.Context, companyID string) ([]entity.Stock, error)
}
