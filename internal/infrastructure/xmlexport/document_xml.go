// Package xmlexport serializza i documenti di magazzino in XML per lo
// scambio con i sistemi gestionali a valle.
package xmlexport

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Render produce la rappresentazione XML indentata del documento.
func Render(doc *entity.Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := x.CreateElement("Documento")
	root.CreateAttr("id", doc.ID)
	root.CreateAttr("tipo", string(doc.Type))

	root.CreateElement("Numero").SetText(doc.Number)
	root.CreateElement("Data").SetText(doc.Date.Format("2006-01-02"))
	root.CreateElement("Stato").SetText(doc.Status)

	refs := root.CreateElement("Riferimenti")
	switch doc.Type {
	case entity.DocTypeBollaInterna:
		refs.CreateElement("MagazzinoPartenza").SetText(formatID(doc.WarehouseFrom))
		refs.CreateElement("MagazzinoDestinazione").SetText(formatID(doc.WarehouseTo))
	case entity.DocTypeDDTEmesso:
		refs.CreateElement("TipologiaCliente").SetText(doc.ClientType)
		refs.CreateElement("Cliente").SetText(formatID(doc.ClientID))
	default:
		refs.CreateElement("MagazzinoDestinazione").SetText(formatID(doc.WarehouseTo))
		if doc.SupplierID != 0 {
			refs.CreateElement("Fornitore").SetText(formatID(doc.SupplierID))
		}
		if doc.OrderID != 0 {
			refs.CreateElement("Ordine").SetText(formatID(doc.OrderID))
		}
	}

	righe := root.CreateElement("Righe")
	for i, item := range doc.Items {
		riga := righe.CreateElement("Riga")
		riga.CreateAttr("numero", fmt.Sprintf("%d", i+1))
		riga.CreateElement("Articolo").SetText(formatID(item.ArticleID))
		riga.CreateElement("Descrizione").SetText(item.Name)
		riga.CreateElement("Quantita").SetText(item.Quantity.String())
		riga.CreateElement("Prezzo").SetText(item.Price.StringFixed(2))
		riga.CreateElement("Totale").SetText(item.Quantity.Mul(item.Price).StringFixed(2))
	}

	x.Indent(2)
	out, err := x.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializzazione documento: %w", err)
	}
	return out, nil
}

func formatID(id int64) string {
	return fmt.Sprintf("%d", id)
}
