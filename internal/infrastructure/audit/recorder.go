// Package audit implementa el registro best-effort de eventos de corrida.
package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/repository"
	"github.com/jhoicas/Mrp-api/pkg/logger"
)

var _ planning.AuditRecorder = (*Recorder)(nil)

// Recorder persiste eventos de auditoría fuera de la transacción de
// planificación. Los fallos se registran en el log y se descartan: la
// auditoría nunca aborta una corrida.
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder sobre un repositorio atado al pool.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record serializa el payload y persiste el evento. Best-effort.
func (r *Recorder) Record(ctx context.Context, companyID, eventType, entityID string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.log.Warn().Err(err).Str("event_type", eventType).Msg("audit: payload no serializable")
		data = []byte("{}")
	}
	event := &entity.AuditEvent{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		EventType: eventType,
		EntityID:  entityID,
		Payload:   data,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.repo.Create(ctx, event); err != nil {
		r.log.Warn().Err(err).
			Str("event_type", eventType).
			Str("entity_id", entityID).
			Msg("audit: no se pudo registrar el evento")
	}
}
