package navigation

// Location astrae la "posizione indirizzabile" della sessione (l'analogo del
// fragment dell'URL) e la sua cronologia. Il Router osserva i cambi di
// posizione e risolve la rotta attiva.
type Location interface {
	// Fragment ritorna il nome di rotta corrente (stringa vuota se assente).
	Fragment() string
	// SetFragment imposta la posizione; un valore diverso dall'attuale
	// viene accodato alla cronologia e notificato all'ascoltatore.
	SetFragment(fragment string)
	// Back torna alla voce precedente della cronologia; false se non esiste.
	Back() bool
	// Len numero di voci in cronologia.
	Len() int
	// Listen registra l'ascoltatore dei cambi di posizione (uno solo).
	Listen(fn func())
}

// MemoryLocation implementazione in memoria di Location, con cronologia a
// puntatore come quella del browser: tornare indietro e poi navigare
// tronca le voci successive.
type MemoryLocation struct {
	history  []string
	idx      int
	listener func()
}

var _ Location = (*MemoryLocation)(nil)

// NewMemoryLocation crea una posizione con una sola voce vuota in cronologia.
func NewMemoryLocation() *MemoryLocation {
	return &MemoryLocation{history: []string{""}}
}

// Fragment ritorna la voce corrente.
func (l *MemoryLocation) Fragment() string {
	return l.history[l.idx]
}

// SetFragment accoda la nuova posizione e notifica. Impostare il fragment
// già attivo non genera né una voce né un evento (come location.hash).
func (l *MemoryLocation) SetFragment(fragment string) {
	if fragment == l.Fragment() {
		return
	}
	l.history = append(l.history[:l.idx+1], fragment)
	l.idx = len(l.history) - 1
	l.notify()
}

// Back sposta il puntatore indietro di una voce e notifica.
func (l *MemoryLocation) Back() bool {
	if l.idx == 0 {
		return false
	}
	l.idx--
	l.notify()
	return true
}

// Len ritorna il numero di voci in cronologia.
func (l *MemoryLocation) Len() int {
	return len(l.history)
}

// Listen registra l'ascoltatore dei cambi.
func (l *MemoryLocation) Listen(fn func()) {
	l.listener = fn
}

func (l *MemoryLocation) notify() {
	if l.listener != nil {
		l.listener()
	}
}
