package ports

import (
	"context"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Severity livello di una notifica utente.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Notifier porto verso il widget di notifica (toast/alert). L'implementazione
// decide la presentazione; il contratto è solo titolo, messaggio e severità.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// NotifierFunc adapter funzione -> Notifier.
type NotifierFunc func(title, message string, severity Severity)

// Notify implementa Notifier.
func (f NotifierFunc) Notify(title, message string, severity Severity) {
	f(title, message, severity)
}

// DocumentPDFGenerator genera la stampa PDF di un documento confermato.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.Document) ([]byte, error)
}
