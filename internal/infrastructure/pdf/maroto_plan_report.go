// Package pdf implementa la generación del reporte PDF de una corrida MRP.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del plan  │  Corrida + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HORIZONTE: inicio — fin  │  Estado del plan                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Tipo | Cantidad | Fecha sugerida   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total recomendaciones / fabricar / comprar        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Mrp-api/internal/application/planning"
	"github.com/jhoicas/Mrp-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPlanReport implementa planning.PlanReportGenerator usando Maroto v2.
type MarotoPlanReport struct{}

var _ planning.PlanReportGenerator = (*MarotoPlanReport)(nil)

// NewMarotoPlanReport construye el generador.
func NewMarotoPlanReport() *MarotoPlanReport { return &MarotoPlanReport{} }

// GeneratePlanReport genera el PDF de la corrida más reciente y devuelve sus bytes.
func (g *MarotoPlanReport) GeneratePlanReport(
	_ context.Context,
	plan *entity.Plan,
	recs []entity.Recommendation,
	products map[string]*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de planificación MRP", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plan, recs))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(horizonRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de recomendaciones
	m.AddRows(tableHeaderRow())
	for _, r := range tableRecRows(recs, products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(recs))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del plan (izq) e identificador de corrida + fecha (der).
func headerRow(plan *entity.Plan, recs []entity.Recommendation) core.Row {
	runID := "—"
	fecha := "—"
	if len(recs) > 0 {
		runID = recs[0].RunID
		fecha = recs[0].CreatedAt.Format("02/01/2006 15:04")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(plan.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Plan: "+plan.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE PLANIFICACIÓN MRP", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corrida: "+runID, props.Text{
				Size: 7, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// horizonRow: horizonte de planificación y estado del plan.
func horizonRow(plan *entity.Plan) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("HORIZONTE DE PLANIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Del %s al %s   |   Estado: %s",
				plan.HorizonStart.Format("02/01/2006"),
				plan.HorizonEnd.Format("02/01/2006"),
				plan.Status,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de recomendaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Tipo", 3, align.Center),
		h("Cantidad", 2, align.Right),
		h("Fecha sug.", 1, align.Right),
	)
}

// tableRecRows: una fila por recomendación.
func tableRecRows(recs []entity.Recommendation, products map[string]*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(recs))
	for _, rec := range recs {
		sku, name := rec.ProductID, "—"
		if p, ok := products[rec.ProductID]; ok && p != nil {
			sku, name = p.SKU, p.Name
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				sku,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				typeLabel(rec.Type),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				rec.Quantity.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				rec.SuggestedDate.Format("02/01"),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(10).Add(col.New(12).Add(
			text.New("Sin faltantes: la oferta cubre toda la demanda del horizonte.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	return result
}

// summaryRow: conteo total y por tipo de recomendación.
func summaryRow(recs []entity.Recommendation) core.Row {
	var work, purchase int
	for _, rec := range recs {
		if rec.Type == entity.RecommendationTypeWorkOrder {
			work++
		} else {
			purchase++
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total recomendaciones: %d   |   Órdenes de fabricación: %d   |   Órdenes de compra: %d",
				len(recs), work, purchase,
			), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 3, Right: 1,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func typeLabel(t string) string {
	switch t {
	case entity.RecommendationTypeWorkOrder:
		return "Fabricar"
	case entity.RecommendationTypePurchaseOrder:
		return "Comprar"
	default:
		return t
	}
}
