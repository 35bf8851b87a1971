package repository

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// BOMRepository define el puerto de consulta de listas de materiales.
// El motor solo necesita el marcador de existencia (fabricar-vs-comprar);
// nunca recorre los componentes.
type BOMRepository interface {
	Upsert(ctx context.Context, bom *entity.BOM) error
	Deactivate(ctx context.Context, companyID, productID string) error
	ExistsActiveByProduct(ctx context.Context, companyID, productID string) (bool, error)
	// ListActiveProductIDs devuelve, de los productos dados, cuáles tienen BOM activa.
	ListActiveProductIDs(ctx context.Context, companyID string, productIDs []string) ([]string, error)
}
