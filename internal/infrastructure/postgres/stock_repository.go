package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de existencias. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el snapshot on-hand de un producto. Sin fila = cantidad cero.
func (r *StockRepo) Get(ctx context.Context, companyID, productID string) (*entity.Stock, error) {
	query := `
		SELECT company_id, product_id, quantity, updated_at
		FROM stock WHERE company_id = $1 AND product_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, companyID, productID).Scan(
		&s.CompanyID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{CompanyID: companyID, ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el snapshot on-hand (por empresa y producto).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (company_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (company_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(ctx, query, stock.CompanyID, stock.ProductID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByCompany devuelve todos los snapshots on-hand de la empresa.
func (r *StockRepo) ListByCompany(ctx context.Context, companyID string) ([]entity.Stock, error) {
	query := `
		SELECT company_id, product_id, quantity, updated_at
		FROM stock WHERE company_id = $1`
	rows, err := r.q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.CompanyID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
