// Package navigation implementa il router di sessione: registro di rotte
// nominate, parametri persistiti per singola navigazione e contenimento
// degli errori dei handler.
package navigation

import (
	"fmt"
	"strings"

	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/pkg/logger"
)

// RouteHome rotta di default: fragment assente, rotta sconosciuta e handler
// in errore risolvono tutti qui.
const RouteHome = "home"

// HandlerFunc handler di rotta senza argomenti; un errore (o un panic)
// viene contenuto dal router e riporta la sessione sulla home.
type HandlerFunc func() error

// Router mappa nomi di rotta su handler e mantiene i parametri della rotta
// attiva. Vive per l'intera sessione: nessuno stato terminale.
type Router struct {
	loc      Location
	notifier ports.Notifier
	log      *logger.Logger

	routes  map[string]HandlerFunc
	params  map[string]map[string]any
	current string
}

// NewRouter costruisce il router sulla Location data. Chiamare Start dopo
// aver registrato le rotte.
func NewRouter(loc Location, notifier ports.Notifier, log *logger.Logger) *Router {
	return &Router{
		loc:      loc,
		notifier: notifier,
		log:      log.Component("router"),
		routes:   make(map[string]HandlerFunc),
		params:   make(map[string]map[string]any),
	}
}

// AddRoute registra handler sotto name; un handler precedente viene
// sovrascritto senza errore.
func (r *Router) AddRoute(name string, handler HandlerFunc) {
	r.routes[name] = handler
}

// NavigateTo naviga alla rotta name. Un prefisso "#" viene normalizzato.
// Se params non è vuoto viene persistito per la prossima attivazione di
// esattamente quella rotta.
func (r *Router) NavigateTo(name string, params map[string]any) {
	name = strings.TrimPrefix(name, "#")

	if len(params) > 0 {
		r.params[name] = params
	}

	r.loc.SetFragment(name)
}

// RouteParams ritorna i parametri persistiti per la rotta attiva, o una
// mappa vuota.
func (r *Router) RouteParams() map[string]any {
	if p, ok := r.params[r.current]; ok {
		return p
	}
	return map[string]any{}
}

// CurrentRoute ritorna il nome della rotta attiva.
func (r *Router) CurrentRoute() string {
	return r.current
}

// Start aggancia il router alla Location e risolve la rotta iniziale.
func (r *Router) Start() {
	r.loc.Listen(r.handleRouteChange)
	r.handleRouteChange()
}

// GoBack torna alla rotta precedente se la cronologia lo consente,
// altrimenti naviga esplicitamente alla home.
func (r *Router) GoBack() {
	if r.loc.Len() > 1 && r.loc.Back() {
		return
	}
	r.NavigateTo(RouteHome, nil)
}

// CanGoBack riporta se esiste una rotta precedente raggiungibile.
func (r *Router) CanGoBack() bool {
	return r.loc.Len() > 1 && r.current != RouteHome
}

// handleRouteChange risolve la rotta a ogni cambio di posizione: default
// alla home, purge dei parametri delle altre rotte, dispatch del handler.
func (r *Router) handleRouteChange() {
	name := r.loc.Fragment()
	if name == "" {
		name = RouteHome
	}
	r.current = name

	// I parametri non devono trapelare tra rotte scollegate: sopravvive
	// solo il set della rotta appena attivata.
	for key := range r.params {
		if key != name {
			delete(r.params, key)
		}
	}

	handler, ok := r.routes[name]
	if !ok {
		r.log.Warn().Str("route", name).Msg("rotta non registrata")
		r.NavigateTo(RouteHome, nil)
		return
	}

	if err := r.dispatch(handler); err != nil {
		r.log.Error().Err(err).Str("route", name).Msg("handler di rotta fallito")
		r.handleError()
	}
}

// dispatch esegue il handler convertendo un eventuale panic in errore.
func (r *Router) dispatch(handler HandlerFunc) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic nel handler: %v", rec)
		}
	}()
	return handler()
}

// handleError notifica l'errore di navigazione e riporta la sessione sulla
// home, così nessuna vista rotta lascia l'applicazione in uno stato morto.
func (r *Router) handleError() {
	r.notifier.Notify("Errore di navigazione",
		"Si è verificato un errore durante la navigazione.", ports.SeverityDanger)
	r.NavigateTo(RouteHome, nil)
}
