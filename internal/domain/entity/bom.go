package entity

import (
	"encoding/json"
	"time"
)

// BOM lista de materiales de un producto. El motor de planificación solo usa
// su existencia (activa) como señal fabricar-vs-comprar; nunca recorre el árbol
// de componentes.
type BOM struct {
	ID         string
	CompanyID  string
	ProductID  string
	Components json.RawMessage // [{"product_id": "...", "quantity": "..."}]
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
