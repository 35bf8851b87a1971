package entity

import (
	"encoding/json"
	"time"
)

// Tipos de evento de auditoría que emite el motor de planificación.
const (
	AuditEventRunStarted   = "mrp_run_started"
	AuditEventRunCompleted = "mrp_run_completed"
)

// AuditEvent registro de auditoría best-effort. Se escribe fuera de la
// transacción de planificación: un fallo al auditar nunca aborta la corrida.
type AuditEvent struct {
	ID        string
	CompanyID string
	EventType string
	EntityID  string // plan al que refiere el evento
	Payload   json.RawMessage
	CreatedAt time.Time
}
