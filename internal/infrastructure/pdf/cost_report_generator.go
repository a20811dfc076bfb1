// Package pdf implementa la generación del reporte de costos de TI de una
// empresa usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + RUC/Cédula  │  Título + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVENTARIO: conteos por tipo de entidad                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fuente | Costo mensual                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Mensual / Anual proyectado                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CostReportGenerator genera el reporte PDF del resumen de costos del dashboard.
type CostReportGenerator struct{}

// NewCostReportGenerator construye el generador.
func NewCostReportGenerator() *CostReportGenerator { return &CostReportGenerator{} }

// GenerateCostReport genera el PDF y devuelve sus bytes.
func (g *CostReportGenerator) GenerateCostReport(
	_ context.Context,
	company *entity.Company,
	summary *dto.DashboardSummaryDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Costos de TI", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(inventoryRow(summary.Counts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range costRows(summary.Costs) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(summary.Costs))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + identificación tributaria (izq) y título + fecha (der).
func headerRow(company *entity.Company, generatedAt time.Time) core.Row {
	taxLabel := "RUC"
	if company.Plan == entity.PlanProfessional {
		taxLabel = "Cédula"
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(taxLabel+": "+nonEmpty(company.TaxID(), "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE COSTOS DE TI", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// inventoryRow: conteos de entidades del dashboard.
func inventoryRow(counts dto.EntityCountsDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf(
				"Equipos físicos: %d   |   Aplicaciones: %d   |   Licencias: %d   |   Contratos: %d",
				counts.PhysicalAssets, counts.ApplicationAssets, counts.Licenses, counts.Contracts,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de fuentes de costo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fuente de costo", 8, align.Left),
		h("Costo mensual", 4, align.Right),
	)
}

// costRows: una fila por fuente de costo.
func costRows(costs dto.CostSummaryDTO) []core.Row {
	sources := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Activos (equipos y aplicaciones)", costs.HardwareCosts},
		{"Licencias de software", costs.LicenseCosts},
		{"Contratos con proveedores", costs.ContractCosts},
		{"Mantenimiento (total histórico / 12)", costs.MaintenanceCosts},
	}
	result := make([]core.Row, 0, len(sources))
	for _, s := range sources {
		result = append(result, row.New(7).Add(
			col.New(8).Add(text.New(
				s.label,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				"$"+formatMoney(s.amount.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(costs dto.CostSummaryDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(20).Add(
		col.New(3),
		col.New(4).Add(
			label("Total mensual:"),
			grandLabel("Anual proyectado:"),
		),
		col.New(4).Add(
			value("$"+formatMoney(costs.MonthlyTotal.StringFixed(2))),
			grandValue("$"+formatMoney(costs.AnnualTotal.StringFixed(2))),
		),
		col.New(1),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta puntos de miles en la parte entera de un string numérico
// con punto decimal. Ej: "25000.00" → "25.000.00"
func formatMoney(s string) string {
	intPart := s
	frac := ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	n := len(intPart)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	return string(buf) + frac
}
