package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación de AuditRepository sobre PostgreSQL.
// Se usa siempre atado al pool, nunca a la transacción de planificación:
// el registro de auditoría es best-effort y no participa del rollback.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador de auditoría. Pasar el pool (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste un evento de auditoría.
func (r *AuditRepo) Create(ctx context.Context, event *entity.AuditEvent) error {
	query := `
		INSERT INTO audit_log (id, company_id, event_type, entity_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		event.ID, event.CompanyID, event.EventType, event.EntityID, event.Payload, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// ListByEntity lista los eventos de una entidad (ej. un plan) más recientes primero.
func (r *AuditRepo) ListByEntity(ctx context.Context, companyID, entityID string, limit, offset int) ([]*entity.AuditEvent, error) {
	query := `
		SELECT id, company_id, event_type, entity_id, payload, created_at
		FROM audit_log
		WHERE company_id = $1 AND entity_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, companyID, entityID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEvent
	for rows.Next() {
		var e entity.AuditEvent
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.EventType, &e.EntityID, &e.Payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
