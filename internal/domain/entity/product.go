package entity

import "time"

// Product representa un producto o SKU del catálogo de la empresa.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	UnitMeasure string
	SearchText  string // sku + nombre en minúsculas y sin acentos; se recalcula al crear/actualizar
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
