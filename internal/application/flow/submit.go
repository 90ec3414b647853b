package flow

import (
	"context"
	"fmt"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// ConfirmOutcome esito della conferma: la validazione è presente appena
// il gateway la produce, il documento solo a creazione avvenuta.
type ConfirmOutcome struct {
	Validation *entity.ValidationResult
	Document   *entity.Document
}

// DocumentType mappa il tipo di flusso sul tipo di documento da creare.
func (m *Machine) DocumentType() entity.DocumentType {
	switch m.kind {
	case KindTrasferimento:
		return entity.DocTypeBollaInterna
	case KindMovimentazione:
		return entity.DocTypeDDTEmesso
	default:
		return entity.DocTypeCaricoMerce
	}
}

// BuildDraft proietta il flusso attivo nella bozza di documento, subito
// prima dell'invio. La bozza non viene mai memorizzata.
func (m *Machine) BuildDraft() entity.DocumentDraft {
	draft := entity.DocumentDraft{
		Type:  m.DocumentType(),
		Items: make([]entity.DraftItem, 0, len(m.items)),
	}
	for _, item := range m.items {
		draft.Items = append(draft.Items, entity.DraftItem{
			ArticleID: item.ArticleID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	switch m.kind {
	case KindTrasferimento:
		draft.WarehouseFrom = m.warehouseFrom
		draft.WarehouseTo = m.warehouseTo
	case KindMovimentazione:
		draft.ClientType = m.clientType
		draft.ClientID = m.clientID
	default:
		draft.WarehouseTo = m.warehouseTo
		draft.SupplierID = m.supplierID
		draft.OrderID = m.orderID
	}
	return draft
}

// StockMovements costruisce i movimenti di giacenza del flusso, uno per riga.
func (m *Machine) StockMovements() []entity.StockMovement {
	movements := make([]entity.StockMovement, 0, len(m.items))
	for _, item := range m.items {
		movements = append(movements, entity.StockMovement{
			ArticleID:     item.ArticleID,
			Quantity:      item.Quantity,
			Type:          string(m.kind),
			WarehouseFrom: m.warehouseFrom,
			WarehouseTo:   m.warehouseTo,
		})
	}
	return movements
}

// Confirm invia il documento: verifica locale di collezione non vuota
// (nessuna chiamata al gateway altrimenti), poi validazione, creazione del
// documento del tipo appropriato e applicazione dei movimenti di giacenza.
// A successo il flusso passa allo stato confermato/sola lettura. Su
// qualunque fallimento del gateway il flusso resta modificabile: le
// operazioni del gateway sono atomiche dal punto di vista del client e
// nessuno stato parziale viene committato.
func (m *Machine) Confirm(ctx context.Context) (*ConfirmOutcome, error) {
	if m.phase == PhaseConfirmed {
		return nil, ErrAlreadyConfirmed
	}
	if len(m.items) == 0 {
		return nil, ErrNoItems
	}

	m.phase = PhaseSubmitting
	outcome := &ConfirmOutcome{}

	draft := m.BuildDraft()
	validation, err := m.gw.ValidateDocument(ctx, draft)
	if err != nil {
		m.phase = PhaseItems
		return outcome, fmt.Errorf("validazione documento: %w", err)
	}
	outcome.Validation = validation
	if !validation.Valid {
		m.phase = PhaseItems
		return outcome, ErrDocumentInvalid
	}

	var doc *entity.Document
	switch m.kind {
	case KindTrasferimento:
		doc, err = m.gw.CreateInternalTransfer(ctx, draft)
	case KindMovimentazione:
		doc, err = m.gw.CreateDeliveryNote(ctx, draft)
	default:
		doc, err = m.gw.CreateGoodsReceipt(ctx, draft)
	}
	if err != nil {
		m.phase = PhaseItems
		return outcome, fmt.Errorf("creazione documento: %w", err)
	}
	outcome.Document = doc

	if _, err := m.gw.ApplyStockMovements(ctx, m.StockMovements()); err != nil {
		m.phase = PhaseItems
		return outcome, fmt.Errorf("aggiornamento giacenze: %w", err)
	}

	m.document = doc
	m.phase = PhaseConfirmed
	m.log.Info().
		Str("tipo", string(doc.Type)).
		Str("numero", doc.Number).
		Int("righe", len(m.items)).
		Msg("documento confermato")
	return outcome, nil
}
