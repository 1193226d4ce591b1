// Package pdf implementa la representación impresa del listado de CFDIs generados.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación │ N° de CFDIs          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Serie-Folio | Receptor | Fecha | UUID | Total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL FACTURADO                                             │
//	│  FOOTER: leyenda de documento sin validez fiscal             │
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

	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa cfdi.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	author string
}

// NewMarotoReportGenerator construye el generador; author aparece en los metadatos del PDF.
func NewMarotoReportGenerator(author string) *MarotoReportGenerator {
	return &MarotoReportGenerator{author: author}
}

// GenerateCFDIReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateCFDIReport(
	_ context.Context,
	records []entity.Record,
	totalAmount string,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("CFDIs generados", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(records), generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRecordRows(records)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(totalAmount))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(count int, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CFDIs GENERADOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d CFDIs", count), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 3,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Serie-Folio", 2, align.Left),
		h("Receptor", 3, align.Left),
		h("Fecha", 2, align.Center),
		h("UUID", 3, align.Left),
		h("Total", 2, align.Right),
	)
}

func tableRecordRows(records []entity.Record) []core.Row {
	result := make([]core.Row, 0, len(records))
	for _, r := range records {
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{
				Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1,
			}))
		}
		result = append(result, row.New(7).Add(
			cell(serieFolio(r), 2, align.Left),
			cell(r.Str("receptor_nombre", entity.DefaultField), 3, align.Left),
			cell(r.Str("fecha", entity.DefaultField), 2, align.Center),
			cell(r.Str("uuid", entity.DefaultField), 3, align.Left),
			cell(r.Total(), 2, align.Right),
		))
	}
	return result
}

func totalRow(totalAmount string) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New("TOTAL FACTURADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(totalAmount, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Documento de demostración generado a partir de datos de prueba. "+
				"No es una representación impresa válida ante el SAT.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// serieFolio "A-123"; campos ausentes quedan vacíos ("-123", "A-", "-").
func serieFolio(r entity.Record) string {
	return r.Str("serie", "") + "-" + r.Str("folio", "")
}
