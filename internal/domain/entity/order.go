package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stati di un ordine fornitore.
const (
	OrderStatusPending = "pending"
	OrderStatusPartial = "partial"
	OrderStatusClosed  = "closed"
)

// OrderItem riga di un ordine fornitore: quantità ordinata e già ricevuta.
type OrderItem struct {
	ArticleID   int64
	ArticleName string
	OrderedQty  decimal.Decimal
	ReceivedQty decimal.Decimal
}

// SupplierOrder ordine fornitore aperto, selezionabile nel flusso carico-fornitore.
type SupplierOrder struct {
	ID           int64
	Number       string
	SupplierID   int64
	SupplierName string
	Date         time.Time
	Status       string
	Items        []OrderItem
}
