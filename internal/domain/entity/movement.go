package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItem riga di una movimentazione esterna: quantità e prezzo sono definitivi.
type MovementItem struct {
	ArticleID   int64
	ArticleName string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// ExternalMovement spedizione già emessa verso un cliente, caricabile a magazzino.
type ExternalMovement struct {
	ID         int64
	Number     string
	Date       time.Time
	ClientType string
	ClientName string
	Status     string
	Items      []MovementItem
}

// StockMovement singolo movimento di giacenza da applicare alla chiusura di un documento.
type StockMovement struct {
	ArticleID     int64
	Quantity      decimal.Decimal
	Type          string // tipo del flusso che lo ha generato
	WarehouseFrom int64
	WarehouseTo   int64
}

// StockUpdateResult esito dell'applicazione dei movimenti di giacenza.
type StockUpdateResult struct {
	Success      bool
	UpdatedItems int
	Timestamp    time.Time
}

// AppliedMovement movimento di giacenza già applicato (registro per report/export).
type AppliedMovement struct {
	StockMovement
	AppliedAt time.Time
}
