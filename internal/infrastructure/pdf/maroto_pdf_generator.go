// Package pdf genera los reportes del negocio en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BANDA: Reporte del Negocio + subtítulo                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: tabla de registros o bloques de estadísticas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES                                                    │
//	│                                                             │
//	│  FOOTER: Generado: dd/mm/aaaa hh:mm        Página X de Y     │
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

	"github.com/frascos-bo/frascos/internal/application/report"
	"github.com/frascos-bo/frascos/internal/domain/stats"
	"github.com/frascos-bo/frascos/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary   = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorPurchases = &props.Color{Red: 59, Green: 130, Blue: 246}
	colorSales     = &props.Color{Red: 16, Green: 185, Blue: 129}
	colorGray      = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorDanger    = &props.Color{Red: 220, Green: 38, Blue: 38}
)

const reportTitle = "Reporte del Negocio"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.Generator usando Maroto v2.
type MarotoReportGenerator struct {
	money  *money.Formatter
	author string
}

// NewMarotoReportGenerator construye el generador. author va en los metadatos del PDF.
func NewMarotoReportGenerator(m *money.Formatter, author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{money: m, author: author}
}

var _ report.Generator = (*MarotoReportGenerator)(nil)

// PurchasesReport tabla Fecha | Cantidad | Total | Costo Unit. con fila de totales.
func (g *MarotoReportGenerator) PurchasesReport(_ context.Context, data report.PurchasesData) ([]byte, error) {
	m, err := g.newDocument(data.Header)
	if err != nil {
		return nil, err
	}
	loc := data.GeneratedAt.Location()

	m.AddRows(tableHeaderRow(colorPurchases,
		"Fecha", "Cantidad", "Total ("+g.money.Symbol()+")", "Costo Unit."))
	for _, p := range data.Purchases {
		m.AddRows(tableRow(
			formatDate(p.CreatedAt, loc),
			fmt.Sprintf("%d", p.Quantity),
			g.money.Number(p.TotalPrice),
			g.money.Number(p.UnitCost()),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPurchases, Thickness: 0.3}))
	m.AddRows(totalRow(data.TotalQuantity, g.money.Format(data.TotalAmount)))

	return generate(m)
}

// SalesReport tabla Fecha | Cantidad | Precio Unit. | Total con fila de totales.
func (g *MarotoReportGenerator) SalesReport(_ context.Context, data report.SalesData) ([]byte, error) {
	m, err := g.newDocument(data.Header)
	if err != nil {
		return nil, err
	}
	loc := data.GeneratedAt.Location()

	m.AddRows(tableHeaderRow(colorSales,
		"Fecha", "Cantidad", "Precio Unit.", "Total ("+g.money.Symbol()+")"))
	for _, s := range data.Sales {
		m.AddRows(tableRow(
			formatDate(s.CreatedAt, loc),
			fmt.Sprintf("%d", s.Quantity),
			g.money.Number(s.UnitPrice),
			g.money.Number(s.TotalAmount()),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorSales, Thickness: 0.3}))
	m.AddRows(totalRow(data.TotalQuantity, g.money.Format(data.TotalAmount)))

	return generate(m)
}

// StatsReport bloques INVENTARIO y FINANCIERO.
func (g *MarotoReportGenerator) StatsReport(_ context.Context, data report.StatsData) ([]byte, error) {
	m, err := g.newDocument(data.Header)
	if err != nil {
		return nil, err
	}
	bs := data.Stats

	m.AddRows(sectionRow("INVENTARIO", colorPurchases))
	m.AddRows(
		labelValueRow("Stock Actual", fmt.Sprintf("%d frascos", bs.CurrentStock), stockColor(bs.CurrentStock)),
		labelValueRow("Total Comprado", fmt.Sprintf("%d frascos", bs.TotalPurchasedQuantity), nil),
		labelValueRow("Total Vendido", fmt.Sprintf("%d frascos", bs.TotalSoldQuantity), nil),
	)
	m.AddRows(row.New(4))

	m.AddRows(sectionRow("FINANCIERO", colorSales))
	m.AddRows(
		labelValueRow("Total Invertido", g.money.Format(bs.TotalPurchasesCost), nil),
		labelValueRow("Total Ventas", g.money.Format(bs.TotalSalesRevenue), nil),
		labelValueRow("Ganancia Neta", g.money.Format(bs.NetProfit), moneyColor(bs.NetProfit)),
	)

	return generate(m)
}

// PeriodReport una tarjeta: ventas y compras de la ventana.
func (g *MarotoReportGenerator) PeriodReport(_ context.Context, data report.PeriodData) ([]byte, error) {
	m, err := g.newDocument(data.Header)
	if err != nil {
		return nil, err
	}
	ps := data.Period

	m.AddRows(sectionRow("VENTAS", colorSales))
	m.AddRows(
		labelValueRow("Frascos vendidos", fmt.Sprintf("%d", ps.SalesQuantity), nil),
		labelValueRow("Monto", g.money.Format(ps.SalesAmount), nil),
	)
	m.AddRows(row.New(4))
	m.AddRows(sectionRow("COMPRAS", colorPurchases))
	m.AddRows(
		labelValueRow("Frascos comprados", fmt.Sprintf("%d", ps.PurchasesQuantity), nil),
		labelValueRow("Monto", g.money.Format(ps.PurchasesAmount), nil),
	)

	return generate(m)
}

// DailySalesReport un renglón por día y la fila de totales con promedio ponderado.
func (g *MarotoReportGenerator) DailySalesReport(_ context.Context, data report.DailyData) ([]byte, error) {
	m, err := g.newDocument(data.Header)
	if err != nil {
		return nil, err
	}

	m.AddRows(tableHeaderRow(colorSales, "Fecha", "Ventas", "Frascos", "Monto", "Prom. Unit."))
	for _, b := range data.Sales.Days {
		m.AddRows(tableRow(
			b.Weekday+" "+stats.DayLabel(b.Day),
			fmt.Sprintf("%d", b.Count),
			fmt.Sprintf("%d", b.Quantity),
			g.money.Number(b.Amount),
			g.money.Number(b.AverageUnitValue),
		))
	}
	t := data.Sales.Totals
	m.AddRows(line.NewRow(1, props.Line{Color: colorSales, Thickness: 0.3}))
	m.AddRows(tableRow(
		"TOTAL",
		fmt.Sprintf("%d", t.Count),
		fmt.Sprintf("%d", t.Quantity),
		g.money.Number(t.Amount),
		g.money.Number(t.AverageUnitValue),
	).WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 243, Green: 244, Blue: 246}}))

	return generate(m)
}

// ── Documento ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) newDocument(h report.Header) (core.Maroto, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(14).WithRightMargin(14).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   colorGray,
		}).
		WithTitle(reportTitle+" - "+h.Subtitle, true).
		WithAuthor(nonEmpty(g.author, "frascos"), true).
		WithCreationDate(h.GeneratedAt).
		Build()

	m := maroto.New(cfg)
	if err := m.RegisterFooter(footerRow(h.GeneratedAt)); err != nil {
		return nil, fmt.Errorf("pdf: registrar footer: %w", err)
	}
	m.AddRows(headerRow(h))
	m.AddRows(row.New(6))
	return m, nil
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: banda oscura con título y subtítulo.
func headerRow(h report.Header) core.Row {
	return row.New(24).Add(
		col.New(12).Add(
			text.New(reportTitle, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center,
				Color: colorWhite, Top: 5,
			}),
			text.New(h.Subtitle, props.Text{
				Size: 10, Align: align.Center, Color: colorWhite, Top: 15,
			}),
		),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func footerRow(generatedAt time.Time) core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Color: colorGray, Top: 2,
		})),
		col.New(4),
	)
}

// tableHeaderRow: cabecera de tabla con fondo del color del reporte.
func tableHeaderRow(bg *props.Color, labels ...string) core.Row {
	size := 12 / len(labels)
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(size).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorWhite, Top: 2, Left: 2, Right: 2,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: bg})
}

// tableRow: primera columna a la izquierda, el resto numérico a la derecha.
func tableRow(values ...string) core.Row {
	size := 12 / len(values)
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(size).Add(text.New(v, props.Text{
			Size: 8, Align: a, Top: 1.5, Left: 2, Right: 2,
		})))
	}
	return row.New(7).Add(cols...)
}

// totalRow: "TOTAL:  N frascos  Bs. X".
func totalRow(quantity int, amount string) core.Row {
	bold := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: a, Top: 2, Left: 2, Right: 2})
	}
	return row.New(10).Add(
		col.New(4).Add(bold("TOTAL:", align.Left)),
		col.New(4).Add(bold(fmt.Sprintf("%d frascos", quantity), align.Right)),
		col.New(4).Add(bold(amount, align.Right)),
	)
}

func sectionRow(title string, c *props.Color) core.Row {
	return row.New(9).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 11, Color: c, Top: 2,
	})))
}

// labelValueRow: etiqueta gris a la izquierda, valor en negrita a la derecha.
// c == nil usa el color por defecto.
func labelValueRow(label, value string, c *props.Color) core.Row {
	return row.New(8).Add(
		col.New(6).Add(text.New(label+":", props.Text{Size: 10, Color: colorGray, Top: 1.5, Left: 4})),
		col.New(6).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: c, Top: 1.5, Right: 4,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDate fecha local dd/mm/aaaa; guion largo si el registro no tiene fecha válida.
func formatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "—"
	}
	return t.In(loc).Format("02/01/2006")
}

func stockColor(stock int) *props.Color {
	if stock < 0 {
		return colorDanger
	}
	return nil
}

func moneyColor(d decimal.Decimal) *props.Color {
	if d.IsNegative() {
		return colorDanger
	}
	return colorSales
}
