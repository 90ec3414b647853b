package flow

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Selezioni preliminari per tipo di flusso. Ogni metodo fa rispettare il
// gating: la sezione articoli si sblocca solo quando le selezioni del
// flusso sono complete e coerenti.

// SelectWarehouses imposta magazzino di partenza e destinazione del
// trasferimento interno. Con una delle due selezioni mancanti la sezione
// articoli resta chiusa senza errore; magazzini identici vengono rifiutati
// e la sezione resta chiusa.
func (m *Machine) SelectWarehouses(from, to int64) error {
	if m.kind != KindTrasferimento {
		return ErrWrongKind
	}
	m.warehouseFrom = from
	m.warehouseTo = to
	if from == 0 || to == 0 {
		m.phase = PhaseSelecting
		return nil
	}
	if from == to {
		m.phase = PhaseSelecting
		return ErrSameWarehouses
	}
	m.phase = PhaseItems
	return nil
}

// SelectClientType imposta la categoria cliente della movimentazione
// esterna e carica la lista clienti della categoria. Categoria vuota
// azzera la selezione cliente.
func (m *Machine) SelectClientType(ctx context.Context, tipo string) ([]entity.Client, error) {
	if m.kind != KindMovimentazione {
		return nil, ErrWrongKind
	}
	m.clientType = tipo
	m.clientID = 0
	m.phase = PhaseSelecting
	if tipo == "" {
		return nil, nil
	}
	clients, err := m.gw.ClientsByType(ctx, tipo)
	if err != nil {
		return nil, fmt.Errorf("caricamento clienti %s: %w", tipo, err)
	}
	return clients, nil
}

// SelectClient imposta il cliente; con categoria e cliente selezionati la
// sezione articoli si sblocca.
func (m *Machine) SelectClient(id int64) error {
	if m.kind != KindMovimentazione {
		return ErrWrongKind
	}
	m.clientID = id
	if m.clientType != "" && id != 0 {
		m.phase = PhaseItems
	} else {
		m.phase = PhaseSelecting
	}
	return nil
}

// SelectDestination imposta il magazzino di destinazione dei flussi di
// carico e abilita il selettore dipendente (movimentazioni o fornitori).
func (m *Machine) SelectDestination(warehouseID int64) error {
	if m.kind != KindCaricoEsterno && m.kind != KindCaricoFornitore {
		return ErrWrongKind
	}
	m.warehouseTo = warehouseID
	return nil
}

// MovementPickerEnabled riporta se il selettore di movimentazione è attivo.
func (m *Machine) MovementPickerEnabled() bool {
	return m.kind == KindCaricoEsterno && m.warehouseTo != 0
}

// SupplierPickerEnabled riporta se il selettore fornitore è attivo.
func (m *Machine) SupplierPickerEnabled() bool {
	return m.kind == KindCaricoFornitore && m.warehouseTo != 0
}

// SelectMovement sostituisce l'intera collezione con le righe della
// movimentazione scelta, marcate come provenienti dall'esterno (quantità e
// prezzo bloccati); l'invio è immediatamente permesso perché la collezione
// è non vuota per costruzione. id zero richiude la sezione articoli.
func (m *Machine) SelectMovement(ctx context.Context, id int64) error {
	if m.kind != KindCaricoEsterno {
		return ErrWrongKind
	}
	if m.warehouseTo == 0 {
		return ErrNoDestination
	}
	if id == 0 {
		m.phase = PhaseSelecting
		return nil
	}
	movements, err := m.gw.ExternalMovements(ctx)
	if err != nil {
		return fmt.Errorf("caricamento articoli della movimentazione: %w", err)
	}
	var movement *entity.ExternalMovement
	for i := range movements {
		if movements[i].ID == id {
			movement = &movements[i]
			break
		}
	}
	if movement == nil {
		return domain.ErrNotFound
	}

	m.items = m.items[:0]
	for _, row := range movement.Items {
		m.items = append(m.items, Item{
			ArticleID:    row.ArticleID,
			Code:         articleCode(row.ArticleID),
			Name:         row.ArticleName,
			Quantity:     row.Quantity,
			Price:        row.Price,
			FromMovement: true,
		})
	}
	m.phase = PhaseItems
	return nil
}

// SelectSupplier imposta il fornitore e carica i suoi ordini aperti.
// Fornitore azzerato riporta il flusso alla selezione.
func (m *Machine) SelectSupplier(ctx context.Context, id int64) ([]entity.SupplierOrder, error) {
	if m.kind != KindCaricoFornitore {
		return nil, ErrWrongKind
	}
	if m.warehouseTo == 0 {
		return nil, ErrNoDestination
	}
	m.supplierID = id
	m.orderID = 0
	m.freeEntry = false
	m.phase = PhaseSelecting
	if id == 0 {
		return nil, nil
	}
	orders, err := m.gw.SupplierOrders(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("caricamento ordini del fornitore: %w", err)
	}
	return orders, nil
}

// SelectOrder sostituisce la collezione con le righe dell'ordine scelto:
// quantità inizializzata al già ricevuto e limitata dall'ordinato, prezzo
// zero, righe marcate da ordine. id zero richiude la sezione articoli.
func (m *Machine) SelectOrder(ctx context.Context, id int64) error {
	if m.kind != KindCaricoFornitore {
		return ErrWrongKind
	}
	if id == 0 {
		m.orderID = 0
		m.phase = PhaseSelecting
		return nil
	}
	orders, err := m.gw.SupplierOrders(ctx, 0)
	if err != nil {
		return fmt.Errorf("caricamento articoli dell'ordine: %w", err)
	}
	var order *entity.SupplierOrder
	for i := range orders {
		if orders[i].ID == id {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		return domain.ErrNotFound
	}

	m.orderID = id
	m.freeEntry = false
	m.items = m.items[:0]
	for _, row := range order.Items {
		m.items = append(m.items, Item{
			ArticleID:  row.ArticleID,
			Code:       articleCode(row.ArticleID),
			Name:       row.ArticleName,
			Quantity:   row.ReceivedQty,
			Price:      decimal.Zero,
			OrderedQty: row.OrderedQty,
			FromOrder:  true,
		})
	}
	m.phase = PhaseItems
	return nil
}

// FreeEntry passa all'inserimento libero: svuota la collezione, disattiva
// il selettore ordine e permette l'inserimento manuale da zero (invio
// disabilitato finché non c'è almeno una riga).
func (m *Machine) FreeEntry() error {
	if m.kind != KindCaricoFornitore {
		return ErrWrongKind
	}
	if m.supplierID == 0 {
		return ErrNoSupplier
	}
	m.freeEntry = true
	m.orderID = 0
	m.items = m.items[:0]
	m.phase = PhaseItems
	return nil
}

// UseExistingOrder riattiva il selettore ordine; la sezione articoli resta
// chiusa finché un ordine non viene scelto.
func (m *Machine) UseExistingOrder() error {
	if m.kind != KindCaricoFornitore {
		return ErrWrongKind
	}
	m.freeEntry = false
	m.phase = PhaseSelecting
	return nil
}

// articleCode deriva il codice visualizzato per righe importate da ordini
// e movimentazioni, che trasportano solo l'id articolo.
func articleCode(articleID int64) string {
	return fmt.Sprintf("ART%06d", articleID)
}
