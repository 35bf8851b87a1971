package repository

import (
	"context"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// AuditRepository define el puerto de persistencia para eventos de auditoría.
type AuditRepository interface {
	Create(ctx context.Context, event *entity.AuditEvent) error
	ListByEntity(ctx context.Context, companyID, entityID string, limit, offset int) ([]*entity.AuditEvent, error)
}
