// Package pdf implementa la stampa dei documenti di magazzino con Maroto v2.
//
// Layout della pagina A4:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: Tipo documento │ Numero + Data              │
//	│  ──────────────────────────────────────────────────  │
//	│  RIFERIMENTI: magazzini / cliente / fornitore        │
//	│  ──────────────────────────────────────────────────  │
//	│  TABELLA: Articolo | Quantità | Prezzo | Totale      │
//	│  ──────────────────────────────────────────────────  │
//	│  TOTALE DOCUMENTO                                    │
//	└──────────────────────────────────────────────────────┘
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
	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/internal/domain/entity"
)

var _ ports.DocumentPDFGenerator = (*Generator)(nil)

// ── Palette ───────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// docTitles intestazione leggibile per tipo di documento.
var docTitles = map[entity.DocumentType]string{
	entity.DocTypeBollaInterna: "Bolla di Trasferimento Interno",
	entity.DocTypeDDTEmesso:    "Documento di Trasporto",
	entity.DocTypeCaricoMerce:  "Carico Merce",
}

// ── Generator ─────────────────────────────────────────────────────────────

// Generator implementa ports.DocumentPDFGenerator usando Maroto v2.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// GenerateDocumentPDF genera la stampa e ritorna i byte del PDF.
func (g *Generator) GenerateDocumentPDF(_ context.Context, doc *entity.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(docTitles[doc.Type], true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(referencesRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generazione documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Sezioni ───────────────────────────────────────────────────────────────

// headerRow: tipo documento (sx), numero e data (dx).
func headerRow(doc *entity.Document) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(docTitles[doc.Type], props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("N° "+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New(doc.Date.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// referencesRow: i riferimenti variano con il tipo di documento.
func referencesRow(doc *entity.Document) core.Row {
	var refs string
	switch doc.Type {
	case entity.DocTypeBollaInterna:
		refs = fmt.Sprintf("Magazzino partenza: %d   Magazzino destinazione: %d",
			doc.WarehouseFrom, doc.WarehouseTo)
	case entity.DocTypeDDTEmesso:
		refs = fmt.Sprintf("Tipologia cliente: %s   Cliente: %d", doc.ClientType, doc.ClientID)
	default:
		refs = fmt.Sprintf("Magazzino destinazione: %d", doc.WarehouseTo)
		if doc.SupplierID != 0 {
			refs += fmt.Sprintf("   Fornitore: %d", doc.SupplierID)
		}
		if doc.OrderID != 0 {
			refs += fmt.Sprintf("   Ordine: %d", doc.OrderID)
		}
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(refs, props.Text{Size: 9, Top: 2})),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(6).Add(text.New("Articolo", header)),
		col.New(2).Add(text.New("Quantità", propsRight(header))),
		col.New(2).Add(text.New("Prezzo", propsRight(header))),
		col.New(2).Add(text.New("Totale", propsRight(header))),
	)
}

func tableItemRows(items []entity.DraftItem) []core.Row {
	cell := props.Text{Size: 9, Top: 1}
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(item.Name, cell)),
			col.New(2).Add(text.New(item.Quantity.String(), propsRight(cell))),
			col.New(2).Add(text.New("€ "+item.Price.StringFixed(2), propsRight(cell))),
			col.New(2).Add(text.New("€ "+item.Quantity.Mul(item.Price).StringFixed(2), propsRight(cell))),
		))
	}
	return rows
}

func totalRow(doc *entity.Document) core.Row {
	total := decimal.Zero
	for _, item := range doc.Items {
		total = total.Add(item.Quantity.Mul(item.Price))
	}
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTALE: € "+total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
			}),
		),
	)
}

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
