package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación de BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador de BOM. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Upsert inserta o reemplaza la BOM del producto y la deja activa.
// Única por (company_id, product_id).
func (r *BOMRepo) Upsert(ctx context.Context, bom *entity.BOM) error {
	query := `
		INSERT INTO boms (id, company_id, product_id, components, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, true, $5, $6)
		ON CONFLICT (company_id, product_id)
		DO UPDATE SET components = EXCLUDED.components, active = true, updated_at = now()`
	_, err := r.q.Exec(ctx, query,
		bom.ID, bom.CompanyID, bom.ProductID, bom.Components, bom.CreatedAt, bom.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert bom: %w", err)
	}
	return nil
}

// Deactivate marca la BOM del producto como inactiva.
func (r *BOMRepo) Deactivate(ctx context.Context, companyID, productID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE boms SET active = false, updated_at = now() WHERE company_id = $1 AND product_id = $2`,
		companyID, productID,
	)
	if err != nil {
		return fmt.Errorf("deactivate bom: %w", err)
	}
	return nil
}

// ExistsActiveByProduct indica si el producto tiene BOM activa (marcador fabricar-vs-comprar).
func (r *BOMRepo) ExistsActiveByProduct(ctx context.Context, companyID, productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM boms WHERE company_id = $1 AND product_id = $2 AND active)`,
		companyID, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists bom: %w", err)
	}
	return exists, nil
}

// ListActiveProductIDs devuelve, de los productos dados, cuáles tienen BOM activa (una sola consulta).
func (r *BOMRepo) ListActiveProductIDs(ctx context.Context, companyID string, productIDs []string) ([]string, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT product_id FROM boms WHERE company_id = $1 AND product_id = ANY($2) AND active`,
		companyID, productIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list active boms: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan bom product: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
