// Package shell compone la sessione applicativa: router, macchina del
// flusso attivo e gateway dati, con la traduzione degli errori in
// notifiche per l'utente.
package shell

import (
	"context"
	"time"

	"github.com/magazzino/gestionale/internal/application/flow"
	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/application/navigation"
	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/pkg/logger"
)

// defaultTimeout limite di attesa per le chiamate al gateway.
const defaultTimeout = 10 * time.Second

// ConfirmFunc chiede all'utente una conferma sì/no. Una funzione nil
// equivale a rifiutare sempre.
type ConfirmFunc func(message string) bool

// Shell sessione applicativa. Possiede il router e al più una macchina di
// flusso attiva; ogni operazione dell'interfaccia passa da qui, così la
// mappatura errore→notifica sta in un punto solo.
type Shell struct {
	router   *navigation.Router
	gw       gateway.Gateway
	notifier ports.Notifier
	log      *logger.Logger

	confirm  ConfirmFunc
	timeout  time.Duration
	onChange func()

	machine *flow.Machine
}

// Option configura la Shell.
type Option func(*Shell)

// WithConfirm imposta il callback di conferma per l'annullamento di un
// flusso con dati inseriti.
func WithConfirm(confirm ConfirmFunc) Option {
	return func(s *Shell) { s.confirm = confirm }
}

// WithTimeout sostituisce il limite di attesa delle chiamate al gateway.
func WithTimeout(d time.Duration) Option {
	return func(s *Shell) { s.timeout = d }
}

// WithOnChange registra un osservatore invocato dopo ogni mutazione di
// stato visibile (navigazione inclusa).
func WithOnChange(fn func()) Option {
	return func(s *Shell) { s.onChange = fn }
}

// New costruisce la sessione sulla Location data e registra le rotte.
// Chiamare Start per risolvere la rotta iniziale.
func New(loc navigation.Location, gw gateway.Gateway, notifier ports.Notifier, log *logger.Logger, opts ...Option) *Shell {
	s := &Shell{
		gw:       gw,
		notifier: notifier,
		log:      log.Component("shell"),
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = navigation.NewRouter(loc, notifier, log)
	s.router.AddRoute(navigation.RouteHome, s.showHome)
	for _, kind := range []flow.Kind{
		flow.KindTrasferimento,
		flow.KindMovimentazione,
		flow.KindCaricoEsterno,
		flow.KindCaricoFornitore,
	} {
		kind := kind
		s.router.AddRoute(string(kind), func() error { return s.showFlow(kind) })
	}
	return s
}

// Start risolve la rotta iniziale dalla Location.
func (s *Shell) Start() {
	s.router.Start()
}

// Router espone il router di sessione.
func (s *Shell) Router() *navigation.Router { return s.router }

// Machine ritorna la macchina del flusso attivo, o nil sulla home.
func (s *Shell) Machine() *flow.Machine { return s.machine }

// View proietta lo stato del flusso attivo; zero value sulla home.
func (s *Shell) View() flow.ViewState {
	if s.machine == nil {
		return flow.ViewState{}
	}
	return s.machine.View()
}

// OpenFlow naviga alla rotta del flusso indicato.
func (s *Shell) OpenFlow(kind flow.Kind) {
	s.router.NavigateTo(string(kind), nil)
}

// GoHome torna alla pagina principale.
func (s *Shell) GoHome() {
	s.router.NavigateTo(navigation.RouteHome, nil)
}

// GoBack delega al router la navigazione all'indietro.
func (s *Shell) GoBack() {
	s.router.GoBack()
}

// showHome scarta l'eventuale flusso attivo senza chiedere conferma: la
// navigazione esplicita è già una scelta dell'utente.
func (s *Shell) showHome() error {
	s.machine = nil
	s.changed()
	return nil
}

// showFlow attiva (o riattiva) la macchina per il flusso della rotta. Una
// riattivazione sulla stessa rotta riparte da zero.
func (s *Shell) showFlow(kind flow.Kind) error {
	s.machine = flow.NewMachine(kind, s.gw, s.log)
	s.log.Info().Str("flusso", string(kind)).Msg("flusso avviato")
	s.changed()
	return nil
}

// CancelFlow annulla il flusso attivo. Con righe inserite serve la
// conferma dell'utente; in caso di rifiuto il flusso resta attivo.
func (s *Shell) CancelFlow() bool {
	if s.machine == nil {
		return true
	}
	if !s.machine.Cancel(s.confirm) {
		return false
	}
	s.GoHome()
	return true
}

// opCtx deriva il contesto con il limite di attesa della sessione.
func (s *Shell) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Shell) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
