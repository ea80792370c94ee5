// Package pdf implementa la generación del reporte de salvamentos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Rango de fechas             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Galpón | Tipo de gallina | Cantidad          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: registros / gallinas rescatadas                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/adso2925889/Avicola-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSalvamentoGenerator implementa reportes.GeneradorPDFSalvamentos
// usando Maroto v2.
type MarotoSalvamentoGenerator struct{}

// NewMarotoSalvamentoGenerator construye el generador.
func NewMarotoSalvamentoGenerator() *MarotoSalvamentoGenerator { return &MarotoSalvamentoGenerator{} }

// GenerarReporteSalvamentos genera el PDF y devuelve sus bytes.
func (g *MarotoSalvamentoGenerator) GenerarReporteSalvamentos(
	_ context.Context,
	desde, hasta time.Time,
	registros []entity.SalvamentoDetalle,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Salvamentos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(desde, hasta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(registros) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(registros))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas (der).
func headerRow(desde, hasta time.Time) core.Row {
	rango := fmt.Sprintf("Del %s al %s", desde.Format("02/01/2006"), hasta.Format("02/01/2006"))
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE SALVAMENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Gallinas rescatadas por galpón y tipo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RANGO DE FECHAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de salvamentos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Galpón", 4, align.Left),
		h("Tipo de gallina", 4, align.Left),
		h("Cantidad", 2, align.Right),
	)
}

// tableDetailRows: una fila por salvamento.
func tableDetailRows(registros []entity.SalvamentoDetalle) []core.Row {
	result := make([]core.Row, 0, len(registros))
	for _, s := range registros {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				s.Fecha.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				s.NombreGalpon,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				s.NombreTipoGallina,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(s.CantidadGallinas),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: cantidad de registros y total de gallinas del rango.
func totalsRow(registros []entity.SalvamentoDetalle) core.Row {
	total := 0
	for _, s := range registros {
		total += s.CantidadGallinas
	}
	return row.New(10).Add(
		col.New(6),
		col.New(4).Add(
			text.New("Registros:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 1,
			}),
			text.New("TOTAL GALLINAS:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 6,
			}),
		),
		col.New(2).Add(
			text.New(strconv.Itoa(len(registros)), props.Text{
				Size: 9, Align: align.Right, Right: 1, Top: 1,
			}),
			text.New(strconv.Itoa(total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 6,
			}),
		),
	)
}
