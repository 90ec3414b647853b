package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// OrderItemResponse riga di un ordine fornitore.
type OrderItemResponse struct {
	ArticleID   int64           `json:"articolo_id"`
	ArticleName string          `json:"articolo_nome"`
	OrderedQty  decimal.Decimal `json:"qta_ordinata"`
	ReceivedQty decimal.Decimal `json:"qta_ricevuta"`
}

// SupplierOrderResponse ordine fornitore in uscita.
type SupplierOrderResponse struct {
	ID           int64               `json:"id"`
	Number       string              `json:"numero"`
	SupplierID   int64               `json:"fornitore_id"`
	SupplierName string              `json:"fornitore_nome"`
	Date         time.Time           `json:"data"`
	Status       string              `json:"stato"`
	Items        []OrderItemResponse `json:"righe"`
}

func FromSupplierOrders(list []entity.SupplierOrder) []SupplierOrderResponse {
	out := make([]SupplierOrderResponse, 0, len(list))
	for _, o := range list {
		items := make([]OrderItemResponse, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, OrderItemResponse{
				ArticleID:   it.ArticleID,
				ArticleName: it.ArticleName,
				OrderedQty:  it.OrderedQty,
				ReceivedQty: it.ReceivedQty,
			})
		}
		out = append(out, SupplierOrderResponse{
			ID:           o.ID,
			Number:       o.Number,
			SupplierID:   o.SupplierID,
			SupplierName: o.SupplierName,
			Date:         o.Date,
			Status:       o.Status,
			Items:        items,
		})
	}
	return out
}
