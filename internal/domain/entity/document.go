package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType tipo del documento creato alla conferma di un flusso.
type DocumentType string

const (
	DocTypeBollaInterna DocumentType = "bolla_interna" // trasferimento interno
	DocTypeDDTEmesso    DocumentType = "ddt_emesso"    // movimentazione esterna
	DocTypeCaricoMerce  DocumentType = "carico_merce"  // carico da fornitore o da movimentazione
)

// DraftItem riga del documento in bozza.
type DraftItem struct {
	ArticleID int64
	Name      string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}

// DocumentDraft proiezione del flusso attivo costruita subito prima dell'invio.
// Non viene mai persistita: è l'input di validate/create.
type DocumentDraft struct {
	Type          DocumentType
	Items         []DraftItem
	WarehouseFrom int64
	WarehouseTo   int64
	ClientType    string
	ClientID      int64
	SupplierID    int64
	OrderID       int64
}

// Document documento creato dal gateway, con numero generato e campi della bozza riportati.
type Document struct {
	ID            string
	Type          DocumentType
	Number        string
	Date          time.Time
	Items         []DraftItem
	WarehouseFrom int64
	WarehouseTo   int64
	ClientType    string
	ClientID      int64
	SupplierID    int64
	OrderID       int64
	Status        string
}

// ValidationResult esito della validazione di una bozza: gli errori bloccano, i warning no.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}
