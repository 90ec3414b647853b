package flow

import (
	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// ViewState stato derivato del flusso per il livello di presentazione:
// flag di abilitazione, righe e modulo, senza alcun riferimento alla
// tecnologia di rendering. Chi disegna si limita a sottoscrivere.
type ViewState struct {
	Kind  Kind
	Phase Phase

	ItemsUnlocked bool
	EntryEnabled  bool
	CanSubmit     bool
	Confirmed     bool

	MovementPickerEnabled bool
	SupplierPickerEnabled bool
	OrderPickerEnabled    bool
	FreeEntry             bool

	WarehouseFrom int64
	WarehouseTo   int64
	ClientType    string
	ClientID      int64
	SupplierID    int64
	OrderID       int64

	Items         []Item
	Entry         Entry
	SearchResults []entity.Article
	Total         decimal.Decimal

	Document *entity.Document
}

// View proietta lo stato corrente della macchina.
func (m *Machine) View() ViewState {
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(item.Total())
	}
	return ViewState{
		Kind:  m.kind,
		Phase: m.phase,

		ItemsUnlocked: m.phase == PhaseItems || m.phase == PhaseSubmitting || m.phase == PhaseConfirmed,
		EntryEnabled:  m.phase == PhaseItems,
		CanSubmit:     m.CanSubmit(),
		Confirmed:     m.phase == PhaseConfirmed,

		MovementPickerEnabled: m.MovementPickerEnabled(),
		SupplierPickerEnabled: m.SupplierPickerEnabled(),
		OrderPickerEnabled:    m.SupplierPickerEnabled() && m.supplierID != 0 && !m.freeEntry,
		FreeEntry:             m.freeEntry,

		WarehouseFrom: m.warehouseFrom,
		WarehouseTo:   m.warehouseTo,
		ClientType:    m.clientType,
		ClientID:      m.clientID,
		SupplierID:    m.supplierID,
		OrderID:       m.orderID,

		Items:         m.Items(),
		Entry:         m.entry,
		SearchResults: m.SearchResults(),
		Total:         total,

		Document: m.document,
	}
}
