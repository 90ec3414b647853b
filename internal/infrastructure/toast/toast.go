// Package toast implementa il widget di notifica: messaggi con titolo e
// severità che scompaiono da soli dopo un intervallo fisso.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magazzino/gestionale/internal/application/ports"
)

// defaultTTL durata di esposizione di una notifica.
const defaultTTL = 5 * time.Second

// Toast notifica attiva.
type Toast struct {
	ID       string
	Title    string
	Message  string
	Severity ports.Severity
	ShownAt  time.Time
}

// Center mantiene le notifiche attive e le rimuove a scadenza. Implementa
// ports.Notifier; sicuro per uso concorrente.
type Center struct {
	ttl time.Duration
	now func() time.Time

	mu     sync.Mutex
	active []Toast
	timers map[string]*time.Timer
}

// Option configura il Center.
type Option func(*Center)

// WithTTL sostituisce la durata di esposizione. Zero disabilita la
// rimozione automatica (utile nei test).
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) { c.ttl = ttl }
}

// WithClock sostituisce la sorgente dell'ora corrente.
func WithClock(now func() time.Time) Option {
	return func(c *Center) { c.now = now }
}

func NewCenter(opts ...Option) *Center {
	c := &Center{
		ttl:    defaultTTL,
		now:    time.Now,
		timers: make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify implementa ports.Notifier: accoda la notifica e ne pianifica la
// rimozione.
func (c *Center) Notify(title, message string, severity ports.Severity) {
	t := Toast{
		ID:       uuid.NewString(),
		Title:    title,
		Message:  message,
		Severity: severity,
		ShownAt:  c.now(),
	}

	c.mu.Lock()
	c.active = append(c.active, t)
	if c.ttl > 0 {
		id := t.ID
		c.timers[id] = time.AfterFunc(c.ttl, func() { c.Dismiss(id) })
	}
	c.mu.Unlock()
}

// Dismiss rimuove la notifica con l'id dato; id sconosciuto è un no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	for i, t := range c.active {
		if t.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return
		}
	}
}

// Active ritorna una copia delle notifiche attive, in ordine di arrivo.
func (c *Center) Active() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.active))
	copy(out, c.active)
	return out
}

// Close ferma tutti i timer pendenti.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}
