package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/application/flow"
	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Le operazioni qui sotto sono la superficie chiamata dall'interfaccia:
// delegano alla macchina del flusso attivo e traducono ogni errore nella
// notifica corrispondente. Tutte ritornano anche l'errore, così i
// chiamanti programmatici non dipendono dalle notifiche.

// LoadWarehouses carica l'elenco dei magazzini per i selettori.
func (s *Shell) LoadWarehouses(ctx context.Context) ([]entity.Warehouse, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	out, err := s.gw.Warehouses(ctx)
	if err != nil {
		s.notifyError(err, "Errore nel caricamento dei magazzini")
		return nil, err
	}
	return out, nil
}

// LoadSuppliers carica l'elenco dei fornitori.
func (s *Shell) LoadSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	out, err := s.gw.Suppliers(ctx)
	if err != nil {
		s.notifyError(err, "Errore nel caricamento dei fornitori")
		return nil, err
	}
	return out, nil
}

// LoadMovements carica l'elenco delle movimentazioni esterne disponibili.
func (s *Shell) LoadMovements(ctx context.Context) ([]entity.ExternalMovement, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	out, err := s.gw.ExternalMovements(ctx)
	if err != nil {
		s.notifyError(err, "Errore nel caricamento delle movimentazioni esterne")
		return nil, err
	}
	return out, nil
}

// SelectWarehouses imposta partenza e destinazione del trasferimento.
func (s *Shell) SelectWarehouses(from, to int64) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.SelectWarehouses(from, to); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// SelectClientType imposta la tipologia cliente e ne carica l'elenco.
func (s *Shell) SelectClientType(ctx context.Context, tipo string) ([]entity.Client, error) {
	if s.machine == nil {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	clients, err := s.machine.SelectClientType(ctx, tipo)
	if err != nil {
		s.notifyError(err, "Errore nel caricamento dei clienti")
		return nil, err
	}
	s.changed()
	return clients, nil
}

// SelectClient imposta il cliente di destinazione.
func (s *Shell) SelectClient(id int64) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.SelectClient(id); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// SelectDestination imposta il magazzino di destinazione del carico.
func (s *Shell) SelectDestination(warehouseID int64) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.SelectDestination(warehouseID); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// SelectMovement importa le righe della movimentazione esterna scelta.
func (s *Shell) SelectMovement(ctx context.Context, id int64) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	if err := s.machine.SelectMovement(ctx, id); err != nil {
		s.notifyError(err, "Errore nel caricamento degli articoli della movimentazione")
		return err
	}
	s.changed()
	return nil
}

// SelectSupplier imposta il fornitore e ne carica gli ordini aperti.
func (s *Shell) SelectSupplier(ctx context.Context, id int64) ([]entity.SupplierOrder, error) {
	if s.machine == nil {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	orders, err := s.machine.SelectSupplier(ctx, id)
	if err != nil {
		s.notifyError(err, "Errore nel caricamento degli ordini del fornitore")
		return nil, err
	}
	s.changed()
	return orders, nil
}

// SelectOrder importa le righe dell'ordine fornitore scelto.
func (s *Shell) SelectOrder(ctx context.Context, id int64) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	if err := s.machine.SelectOrder(ctx, id); err != nil {
		s.notifyError(err, "Errore nel caricamento degli articoli dell'ordine")
		return err
	}
	s.changed()
	return nil
}

// FreeEntry passa il carico da fornitore in inserimento libero.
func (s *Shell) FreeEntry() error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.FreeEntry(); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// UseExistingOrder torna dalla modalità libera alla scelta di un ordine.
func (s *Shell) UseExistingOrder() error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.UseExistingOrder(); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// Search cerca articoli per codice o descrizione.
func (s *Shell) Search(ctx context.Context, query string) ([]entity.Article, error) {
	if s.machine == nil {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	results, err := s.machine.Search(ctx, query)
	if err != nil {
		s.notifyError(err, "Errore nella ricerca degli articoli")
		return nil, err
	}
	s.changed()
	return results, nil
}

// SelectResult seleziona un articolo dai risultati di ricerca.
func (s *Shell) SelectResult(index int) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.SelectResult(index); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// ScanBarcode risolve un codice a barre e seleziona l'articolo trovato.
func (s *Shell) ScanBarcode(ctx context.Context, code string) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	article, err := s.gw.ArticleByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.notifier.Notify(titleError, flow.ErrArticleNotFound.Error(), ports.SeverityDanger)
			return flow.ErrArticleNotFound
		}
		s.notifyError(err, "Errore nella ricerca degli articoli")
		return err
	}
	s.machine.SelectArticle(*article)
	s.changed()
	return nil
}

// AddItem aggiunge l'articolo selezionato alla collezione di righe.
func (s *Shell) AddItem(quantity, price decimal.Decimal) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.AddItem(quantity, price); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// EditItem riporta una riga nel modulo d'inserimento.
func (s *Shell) EditItem(index int) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.EditItem(index); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// RemoveItem rimuove una riga dalla collezione.
func (s *Shell) RemoveItem(index int) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.RemoveItem(index); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// UpdateItemQuantity aggiorna la quantità di una riga da ordine.
func (s *Shell) UpdateItemQuantity(index int, quantity decimal.Decimal) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	if err := s.machine.UpdateItemQuantity(index, quantity); err != nil {
		s.notifyError(err, "")
		return err
	}
	s.changed()
	return nil
}

// Submit conferma il flusso attivo: valida la bozza, crea il documento e
// aggiorna le giacenze. Notifica esito, avvisi ed errori di validazione.
func (s *Shell) Submit(ctx context.Context) error {
	if s.machine == nil {
		return domain.ErrInvalidInput
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	outcome, err := s.machine.Confirm(ctx)
	s.changed()

	// Gli avvisi di validazione si mostrano appena disponibili, anche se
	// un passo successivo dell'invio fallisce.
	if outcome != nil && outcome.Validation != nil && len(outcome.Validation.Warnings) > 0 {
		s.notifier.Notify(titleWarning,
			strings.Join(outcome.Validation.Warnings, "\n"), ports.SeverityWarning)
	}

	if err != nil {
		if errors.Is(err, flow.ErrDocumentInvalid) && outcome != nil {
			s.notifier.Notify(titleValidation,
				strings.Join(outcome.Validation.Errors, "\n"), ports.SeverityDanger)
			return err
		}
		s.notifyError(err, "Errore nella creazione del documento")
		return err
	}

	s.notifier.Notify(titleSuccess,
		fmt.Sprintf("Documento %s creato con successo", outcome.Document.Number), ports.SeveritySuccess)
	return nil
}
