package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden de producción. Los tres primeros son órdenes abiertas y
// cuentan como suministro futuro en el netting.
const (
	ProductionOrderStatusPlanned    = "planned"
	ProductionOrderStatusReleased   = "released"
	ProductionOrderStatusInProgress = "in_progress"
	ProductionOrderStatusCompleted  = "completed"
	ProductionOrderStatusCancelled  = "cancelled"
)

// OpenProductionOrderStatuses estados que el agregador de suministro considera.
var OpenProductionOrderStatuses = []string{
	ProductionOrderStatusPlanned,
	ProductionOrderStatusReleased,
	ProductionOrderStatusInProgress,
}

// ProductionOrder es una orden de fabricación existente (suministro en camino).
type ProductionOrder struct {
	ID        string
	CompanyID string
	ProductID string
	Quantity  decimal.Decimal
	DueDate   time.Time
	Status    string
	CreatedAt time.Time
}

// Open indica si la orden aporta suministro al netting.
func (o *ProductionOrder) Open() bool {
	switch o.Status {
	case ProductionOrderStatusPlanned, ProductionOrderStatusReleased, ProductionOrderStatusInProgress:
		return true
	}
	return false
}
