package planning_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mrp-api/internal/domain/entity"
	"github.com/jhoicas/Mrp-api/internal/domain/planning"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación de demanda
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateDemand_SumaPronosticosYPedidos(t *testing.T) {
	forecasts := []entity.Forecast{
		{ProductID: "WIDGET-A", Quantity: d("100")},
		{ProductID: "WIDGET-B", Quantity: d("10")},
	}
	orders := []entity.SalesOrder{
		{ProductID: "WIDGET-A", Quantity: d("20"), Status: entity.SalesOrderStatusConfirmed},
	}

	demand := planning.AggregateDemand(forecasts, orders)

	assert.True(t, demand["WIDGET-A"].Equal(d("120")),
		"la demanda de WIDGET-A debe ser pronóstico + pedido (100+20)")
	assert.True(t, demand["WIDGET-B"].Equal(d("10")))
}

func TestAggregateDemand_LineasDuplicadasSeSuman(t *testing.T) {
	// Dos líneas del mismo producto con igual cantidad y fecha: cuentan ambas.
	forecasts := []entity.Forecast{
		{ProductID: "WIDGET-A", Quantity: d("50")},
		{ProductID: "WIDGET-A", Quantity: d("50")},
	}

	demand := planning.AggregateDemand(forecasts, nil)

	assert.True(t, demand["WIDGET-A"].Equal(d("100")),
		"líneas duplicadas deben sumarse, no deduplicarse")
}

func TestAggregateDemand_Vacia(t *testing.T) {
	demand := planning.AggregateDemand(nil, nil)
	assert.Empty(t, demand)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregación de suministro
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregateSupply_SumaStockYOrdenesAbiertas(t *testing.T) {
	stocks := []entity.Stock{
		{ProductID: "WIDGET-A", Quantity: d("40")},
	}
	orders := []entity.ProductionOrder{
		{ProductID: "WIDGET-A", Quantity: d("30"), Status: entity.ProductionOrderStatusPlanned},
		{ProductID: "WIDGET-A", Quantity: d("15"), Status: entity.ProductionOrderStatusInProgress},
	}

	supply := planning.AggregateSupply(stocks, orders)

	assert.True(t, supply["WIDGET-A"].Equal(d("85")),
		"el suministro debe sumar stock + órdenes planned/released/in_progress")
}

func TestAggregateSupply_IgnoraOrdenesCerradas(t *testing.T) {
	orders := []entity.ProductionOrder{
		{ProductID: "WIDGET-A", Quantity: d("30"), Status: entity.ProductionOrderStatusCompleted},
		{ProductID: "WIDGET-A", Quantity: d("25"), Status: entity.ProductionOrderStatusCancelled},
		{ProductID: "WIDGET-A", Quantity: d("5"), Status: entity.ProductionOrderStatusReleased},
	}

	supply := planning.AggregateSupply(nil, orders)

	assert.True(t, supply["WIDGET-A"].Equal(d("5")),
		"completed y cancelled no aportan suministro")
}

// ──────────────────────────────────────────────────────────────────────────────
// Requerimiento neto y faltantes
// ──────────────────────────────────────────────────────────────────────────────

func TestNetRequirements_EscenarioClasico(t *testing.T) {
	// WIDGET-A: demanda 120, suministro 70 → neto 50 (faltante).
	// WIDGET-B: demanda 10, suministro 15 → neto -5 (sin faltante).
	demand := map[string]decimal.Decimal{
		"WIDGET-A": d("120"),
		"WIDGET-B": d("10"),
	}
	supply := map[string]decimal.Decimal{
		"WIDGET-A": d("70"),
		"WIDGET-B": d("15"),
	}

	net := planning.NetRequirements(demand, supply)

	assert.True(t, net["WIDGET-A"].Equal(d("50")))
	assert.True(t, net["WIDGET-B"].Equal(d("-5")))

	shortages := planning.Shortages(net)
	require.Len(t, shortages, 1, "solo WIDGET-A tiene faltante")
	assert.True(t, shortages["WIDGET-A"].Equal(d("50")),
		"la cantidad recomendada debe ser exactamente el neto, sin lotes mínimos ni redondeo")
}

func TestNetRequirements_ProductoSoloConSuministro(t *testing.T) {
	// Producto con suministro y sin demanda: neto negativo, nunca faltante.
	supply := map[string]decimal.Decimal{"WIDGET-C": d("8")}

	net := planning.NetRequirements(map[string]decimal.Decimal{}, supply)

	assert.True(t, net["WIDGET-C"].Equal(d("-8")))
	assert.Empty(t, planning.Shortages(net))
}

func TestNetRequirements_DemandaIgualASuministro(t *testing.T) {
	demand := map[string]decimal.Decimal{"WIDGET-A": d("30")}
	supply := map[string]decimal.Decimal{"WIDGET-A": d("30")}

	net := planning.NetRequirements(demand, supply)

	assert.True(t, net["WIDGET-A"].IsZero())
	assert.Empty(t, planning.Shortages(net), "neto cero no genera recomendación")
}

func TestNetRequirements_PrecisionDecimal(t *testing.T) {
	demand := map[string]decimal.Decimal{"RESINA": d("10.75")}
	supply := map[string]decimal.Decimal{"RESINA": d("3.5")}

	net := planning.NetRequirements(demand, supply)

	assert.True(t, net["RESINA"].Equal(d("7.25")),
		"el netting debe conservar la precisión decimal exacta")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación fabricar-vs-comprar
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_ConBOMActivaFabricar(t *testing.T) {
	assert.Equal(t, entity.RecommendationTypeWorkOrder, planning.Classify(true))
}

func TestClassify_SinBOMComprar(t *testing.T) {
	assert.Equal(t, entity.RecommendationTypePurchaseOrder, planning.Classify(false))
}
