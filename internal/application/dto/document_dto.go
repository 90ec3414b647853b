package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// DraftItemRequest riga della bozza in ingresso.
type DraftItemRequest struct {
	ArticleID int64           `json:"articolo_id"`
	Name      string          `json:"nome"`
	Quantity  decimal.Decimal `json:"quantita"`
	Price     decimal.Decimal `json:"prezzo"`
}

// DocumentDraftRequest corpo di POST /api/documenti e /api/documenti/valida.
type DocumentDraftRequest struct {
	Type          string             `json:"tipo"`
	Items         []DraftItemRequest `json:"righe"`
	WarehouseFrom int64              `json:"magazzino_partenza"`
	WarehouseTo   int64              `json:"magazzino_destinazione"`
	ClientType    string             `json:"cliente_tipologia"`
	ClientID      int64              `json:"cliente_id"`
	SupplierID    int64              `json:"fornitore_id"`
	OrderID       int64              `json:"ordine_id"`
}

// ToDraft converte la richiesta nella bozza del dominio.
func (r DocumentDraftRequest) ToDraft() entity.DocumentDraft {
	items := make([]entity.DraftItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entity.DraftItem{
			ArticleID: it.ArticleID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return entity.DocumentDraft{
		Type:          entity.DocumentType(r.Type),
		Items:         items,
		WarehouseFrom: r.WarehouseFrom,
		WarehouseTo:   r.WarehouseTo,
		ClientType:    r.ClientType,
		ClientID:      r.ClientID,
		SupplierID:    r.SupplierID,
		OrderID:       r.OrderID,
	}
}

// DocumentItemResponse riga del documento in uscita.
type DocumentItemResponse struct {
	ArticleID int64           `json:"articolo_id"`
	Name      string          `json:"nome"`
	Quantity  decimal.Decimal `json:"quantita"`
	Price     decimal.Decimal `json:"prezzo"`
}

// DocumentResponse documento creato.
type DocumentResponse struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"tipo"`
	Number        string                 `json:"numero"`
	Date          time.Time              `json:"data"`
	Items         []DocumentItemResponse `json:"righe"`
	WarehouseFrom int64                  `json:"magazzino_partenza,omitempty"`
	WarehouseTo   int64                  `json:"magazzino_destinazione,omitempty"`
	ClientType    string                 `json:"cliente_tipologia,omitempty"`
	ClientID      int64                  `json:"cliente_id,omitempty"`
	SupplierID    int64                  `json:"fornitore_id,omitempty"`
	OrderID       int64                  `json:"ordine_id,omitempty"`
	Status        string                 `json:"stato"`
}

func FromDocument(doc *entity.Document) DocumentResponse {
	items := make([]DocumentItemResponse, 0, len(doc.Items))
	for _, it := range doc.Items {
		items = append(items, DocumentItemResponse{
			ArticleID: it.ArticleID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return DocumentResponse{
		ID:            doc.ID,
		Type:          string(doc.Type),
		Number:        doc.Number,
		Date:          doc.Date,
		Items:         items,
		WarehouseFrom: doc.WarehouseFrom,
		WarehouseTo:   doc.WarehouseTo,
		ClientType:    doc.ClientType,
		ClientID:      doc.ClientID,
		SupplierID:    doc.SupplierID,
		OrderID:       doc.OrderID,
		Status:        doc.Status,
	}
}

// ValidationResponse esito della validazione di una bozza.
type ValidationResponse struct {
	Valid    bool     `json:"valido"`
	Errors   []string `json:"errori"`
	Warnings []string `json:"avvisi"`
}

func FromValidation(v *entity.ValidationResult) ValidationResponse {
	return ValidationResponse{Valid: v.Valid, Errors: v.Errors, Warnings: v.Warnings}
}
