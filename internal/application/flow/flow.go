// Package flow implementa la macchina a stati del flusso guidato: per il
// tipo di flusso selezionato decide quali sezioni si sbloccano, in che
// ordine, e mantiene la collezione di righe con le regole di provenienza.
package flow

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/domain/entity"
	"github.com/magazzino/gestionale/pkg/logger"
)

// Kind tipo di flusso guidato; i valori coincidono con i nomi di rotta.
type Kind string

const (
	KindTrasferimento   Kind = "trasferimento"    // trasferimento interno tra magazzini
	KindMovimentazione  Kind = "movimentazione"   // spedizione verso cliente esterno
	KindCaricoEsterno   Kind = "carico-esterno"   // ricevimento da movimentazione esterna
	KindCaricoFornitore Kind = "carico-fornitore" // ricevimento merce da fornitore
)

// Phase fase del flusso attivo.
type Phase string

const (
	PhaseSelecting  Phase = "selecting"  // selezioni preliminari incomplete
	PhaseItems      Phase = "items"      // sezione articoli sbloccata
	PhaseSubmitting Phase = "submitting" // invio in corso
	PhaseConfirmed  Phase = "confirmed"  // documento confermato, sola lettura
)

// Errori locali delle regole d'ingresso. I messaggi sono quelli mostrati
// all'utente, verbatim; l'ordine di verifica è fisso e vince la prima
// regola che fallisce.
var (
	ErrNoArticle        = errors.New("Seleziona un articolo valido")
	ErrInvalidQuantity  = errors.New("Inserisci una quantità valida")
	ErrInvalidPrice     = errors.New("Prezzo non valido")
	ErrSameWarehouses   = errors.New("Magazzino di partenza e destinazione non possono essere uguali")
	ErrNoItems          = errors.New("Aggiungi almeno un articolo al documento")
	ErrArticleNotFound  = errors.New("Articolo non trovato")
	ErrItemLocked       = errors.New("Le righe da movimentazione esterna non sono modificabili")
	ErrNotOrderItem     = errors.New("Solo le righe da ordine ammettono la modifica diretta della quantità")
	ErrNoSuchItem       = errors.New("riga inesistente")
	ErrWrongKind        = errors.New("operazione non prevista per questo flusso")
	ErrNoDestination    = errors.New("seleziona prima il magazzino di destinazione")
	ErrNoSupplier       = errors.New("seleziona prima il fornitore")
	ErrAlreadyConfirmed = errors.New("documento già confermato")
	// ErrDocumentInvalid segnala che la validazione della bozza ha
	// prodotto errori bloccanti (consegnati nel ConfirmOutcome).
	ErrDocumentInvalid = errors.New("documento non valido")
)

// Item riga di lavoro del flusso. Al più uno dei due flag di provenienza è
// attivo; nessuno dei due significa inserimento manuale libero. Due righe
// dello stesso flusso non condividono mai ArticleID.
type Item struct {
	ArticleID    int64
	Code         string
	Name         string
	Quantity     decimal.Decimal
	Price        decimal.Decimal
	OrderedQty   decimal.Decimal // limite superiore, solo per righe da ordine
	FromOrder    bool            // quantità iniziale = già ricevuto, prezzo zero
	FromMovement bool            // quantità e prezzo immutabili
}

// Editable riporta se la riga ammette modifica o rimozione.
func (it Item) Editable() bool { return !it.FromMovement }

// Total ritorna quantità × prezzo.
func (it Item) Total() decimal.Decimal { return it.Quantity.Mul(it.Price) }

// Entry stato del modulo d'inserimento (precompilato da EditItem).
type Entry struct {
	Text     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// Machine macchina a stati di un singolo flusso. Ne esiste una sola attiva
// per sessione; lo stato è posseduto in esclusiva (nessuna mutazione
// concorrente tra punti di sospensione), quindi niente lock.
type Machine struct {
	gw  gateway.Gateway
	log *logger.Logger

	kind  Kind
	phase Phase

	items    []Item
	selected *entity.Article
	results  []entity.Article
	entry    Entry

	warehouseFrom int64
	warehouseTo   int64
	clientType    string
	clientID      int64
	supplierID    int64
	orderID       int64
	freeEntry     bool

	document *entity.Document
}

// NewMachine crea la macchina per un flusso del tipo dato, in fase di
// selezione preliminare e con collezione vuota.
func NewMachine(kind Kind, gw gateway.Gateway, log *logger.Logger) *Machine {
	return &Machine{
		gw:    gw,
		log:   log.Component("flow"),
		kind:  kind,
		phase: PhaseSelecting,
	}
}

// Kind ritorna il tipo del flusso.
func (m *Machine) Kind() Kind { return m.kind }

// Phase ritorna la fase corrente.
func (m *Machine) Phase() Phase { return m.phase }

// Items ritorna una copia della collezione di righe.
func (m *Machine) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// CanSubmit riporta se l'invio è permesso: sezione articoli sbloccata e
// collezione non vuota.
func (m *Machine) CanSubmit() bool {
	return m.phase == PhaseItems && len(m.items) > 0
}

// Confirmed riporta se il flusso è nello stato confermato/sola lettura.
func (m *Machine) Confirmed() bool { return m.phase == PhaseConfirmed }

// Document ritorna il documento creato, o nil prima della conferma.
func (m *Machine) Document() *entity.Document { return m.document }

// Cancel annulla il flusso. Con collezione non vuota e flusso non ancora
// confermato serve la conferma esplicita dell'utente; confirm nil equivale
// a un rifiuto. Ritorna true se il flusso va scartato.
func (m *Machine) Cancel(confirm func(message string) bool) bool {
	if len(m.items) > 0 && m.phase != PhaseConfirmed {
		if confirm == nil || !confirm("Sei sicuro di voler annullare? Tutti i dati inseriti andranno persi.") {
			return false
		}
	}
	return true
}
