// Package pdf exporta listados del panel a PDF con Maroto v2.
//
// Layout de la página A4 apaisada:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del listado        │  Fecha de generación   │
//	│  Subtítulo (filtros aplicados)                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una columna por encabezado, filas alternadas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// maxColumns ancho de la grilla de Maroto.
const maxColumns = 12

// ErrSinColumnas el listado no tiene encabezados.
var ErrSinColumnas = errors.New("pdf: listado sin columnas")

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// Listing contenido de un listado exportable. Rows ya trae los textos formateados
// (fechas, montos) tal como se muestran en pantalla.
type Listing struct {
	Title       string
	Subtitle    string
	Author      string
	Headers     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// ── Generator ─────────────────────────────────────────────────────────────────

// ListingGenerator genera PDFs de listados usando Maroto v2.
type ListingGenerator struct{}

// NewListingGenerator construye el generador.
func NewListingGenerator() *ListingGenerator { return &ListingGenerator{} }

// Generate genera el PDF y devuelve sus bytes. Con más de 12 columnas se exportan solo
// las primeras 12.
func (g *ListingGenerator) Generate(_ context.Context, l Listing) ([]byte, error) {
	if len(l.Headers) == 0 {
		return nil, ErrSinColumnas
	}
	headers := l.Headers
	if len(headers) > maxColumns {
		headers = headers[:maxColumns]
	}
	if l.GeneratedAt.IsZero() {
		l.GeneratedAt = time.Now()
	}
	widths := columnWidths(len(headers))

	builder := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(l.Title, true)
	if l.Author != "" {
		builder = builder.WithAuthor(l.Author, true)
	}
	m := maroto.New(builder.Build())

	m.AddRows(headerRow(l))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(headers, widths))
	for _, r := range tableRows(l.Rows, widths) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(l.Rows)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título y subtítulo (izq) y fecha de generación (der).
func headerRow(l Listing) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(l.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(l.Subtitle, " "), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+l.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezados en blanco sobre el color primario.
func tableHeaderRow(headers []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(headers))
	for i, h := range headers {
		cols = append(cols, col.New(widths[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Left,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por registro, con fondo alternado.
func tableRows(rows [][]string, widths []int) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, cells := range rows {
		cols := make([]core.Col, 0, len(widths))
		for j, w := range widths {
			v := ""
			if j < len(cells) {
				v = cells[j]
			}
			cols = append(cols, col.New(w).Add(text.New(nonEmpty(v, "—"), props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Right: 1,
			})))
		}
		r := row.New(7).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// footerRow: total de registros exportados.
func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de registros: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorGray,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// columnWidths reparte las 12 columnas de la grilla; el resto va a las primeras.
// Ej: 5 columnas → [3 3 2 2 2]
func columnWidths(n int) []int {
	widths := make([]int, n)
	base, rest := maxColumns/n, maxColumns%n
	for i := range widths {
		widths[i] = base
		if i < rest {
			widths[i]++
		}
	}
	return widths
}
