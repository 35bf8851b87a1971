// Package planning contiene la lógica pura de netting MRP (servicio de dominio):
// agregación de demanda y suministro, requerimiento neto y clasificación
// fabricar-vs-comprar. Sin acceso a datos ni efectos: todo opera sobre mapas
// producto → cantidad con aritmética decimal exacta.
package planning

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// AggregateDemand suma pronósticos y pedidos de venta por producto.
// Las líneas duplicadas se suman, no se deduplican: cada línea cuenta una vez.
func AggregateDemand(forecasts []entity.Forecast, orders []entity.SalesOrder) map[string]decimal.Decimal {
	demand := make(map[string]decimal.Decimal, len(forecasts)+len(orders))
	for _, f := range forecasts {
		demand[f.ProductID] = demand[f.ProductID].Add(f.Quantity)
	}
	for _, o := range orders {
		demand[o.ProductID] = demand[o.ProductID].Add(o.Quantity)
	}
	return demand
}

// AggregateSupply suma existencias on-hand y órdenes de producción abiertas
// por producto. Órdenes en estado distinto de planned/released/in_progress
// se ignoran aunque el repositorio las haya entregado.
func AggregateSupply(stocks []entity.Stock, orders []entity.ProductionOrder) map[string]decimal.Decimal {
	supply := make(map[string]decimal.Decimal, len(stocks)+len(orders))
	for _, s := range stocks {
		supply[s.ProductID] = supply[s.ProductID].Add(s.Quantity)
	}
	for _, o := range orders {
		if !o.Open() {
			continue
		}
		supply[o.ProductID] = supply[o.ProductID].Add(o.Quantity)
	}
	return supply
}

// NetRequirements calcula demanda − suministro sobre la unión de productos.
// El resultado puede ser cero o negativo; aquí no se filtra ni se redondea:
// el neto conserva la precisión decimal de las cantidades de entrada.
func NetRequirements(demand, supply map[string]decimal.Decimal) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal, len(demand))
	for productID, d := range demand {
		net[productID] = d.Sub(supply[productID])
	}
	for productID, s := range supply {
		if _, ok := demand[productID]; !ok {
			net[productID] = s.Neg()
		}
	}
	return net
}

// Shortages filtra los productos con requerimiento neto estrictamente positivo.
// Neto cero o negativo significa que el suministro existente cubre la demanda.
func Shortages(net map[string]decimal.Decimal) map[string]decimal.Decimal {
	short := make(map[string]decimal.Decimal)
	for productID, qty := range net {
		if qty.GreaterThan(decimal.Zero) {
			short[productID] = qty
		}
	}
	return short
}

// Classify decide el tipo de orden planificada: con BOM activa se fabrica,
// sin BOM se compra. Tabla de decisión de dos salidas, no jerarquía.
func Classify(hasActiveBOM bool) string {
	if hasActiveBOM {
		return entity.RecommendationTypeWorkOrder
	}
	return entity.RecommendationTypePurchaseOrder
}
