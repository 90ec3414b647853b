// Package excel esporta il registro dei movimenti di giacenza in XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// ExportMovements produce il file XLSX con un movimento per riga.
func ExportMovements(movements []entity.AppliedMovement) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"Articolo", "Quantità", "Tipo", "Magazzino partenza", "Magazzino destinazione", "Applicato il",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: intestazione: %w", err)
	}

	for i, m := range movements {
		qty, _ := m.Quantity.Float64()
		row := []interface{}{
			m.ArticleID,
			qty,
			m.Type,
			cellID(m.WarehouseFrom),
			cellID(m.WarehouseTo),
			m.AppliedAt.Format("02/01/2006 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: coordinate riga %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: riga %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: scrittura file: %w", err)
	}
	return buf.Bytes(), nil
}

// Gli id zero rappresentano "non impostato": cella vuota.
func cellID(id int64) interface{} {
	if id == 0 {
		return ""
	}
	return id
}
