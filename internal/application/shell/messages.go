package shell

import (
	"errors"

	"github.com/magazzino/gestionale/internal/application/flow"
	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/internal/domain"
)

// Titoli delle notifiche.
const (
	titleError      = "Errore"
	titleSuccess    = "Successo"
	titleWarning    = "Attenzione"
	titleValidation = "Errori di Validazione"
)

// Messaggi per i guasti di comunicazione con il server.
const (
	msgTimeout       = "Operazione scaduta. Verificare la connessione di rete."
	msgCommunication = "Impossibile comunicare con il server. Riprovare più tardi."
	msgUnexpected    = "Si è verificato un errore imprevisto"
)

// entryErrors errori locali delle regole d'ingresso: il messaggio è già
// quello da mostrare all'utente, verbatim.
var entryErrors = []error{
	flow.ErrNoArticle,
	flow.ErrInvalidQuantity,
	flow.ErrInvalidPrice,
	flow.ErrSameWarehouses,
	flow.ErrNoItems,
	flow.ErrArticleNotFound,
	flow.ErrItemLocked,
	flow.ErrNotOrderItem,
}

// notifyError traduce err in una notifica. fallback è il messaggio da
// usare per i guasti del gateway (es. "Errore nel caricamento dei
// magazzini").
func (s *Shell) notifyError(err error, fallback string) {
	for _, entry := range entryErrors {
		if errors.Is(err, entry) {
			s.notifier.Notify(titleError, entry.Error(), ports.SeverityDanger)
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrTimeout):
		s.notifier.Notify(titleError, msgTimeout, ports.SeverityDanger)
	case errors.Is(err, domain.ErrCommunication):
		s.notifier.Notify(titleError, msgCommunication, ports.SeverityDanger)
	case fallback != "":
		s.notifier.Notify(titleError, fallback, ports.SeverityDanger)
	default:
		s.notifier.Notify(titleError, msgUnexpected, ports.SeverityDanger)
	}
	s.log.Error().Err(err).Msg("operazione fallita")
}
