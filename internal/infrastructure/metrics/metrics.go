// Package metrics espone i contatori Prometheus dell'applicazione.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DocumentsCreated conta i documenti creati, per tipo.
	DocumentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gestionale",
		Name:      "documents_created_total",
		Help:      "Documenti creati, per tipo.",
	}, []string{"tipo"})

	// StockMovementsApplied conta i movimenti di giacenza applicati.
	StockMovementsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gestionale",
		Name:      "stock_movements_applied_total",
		Help:      "Movimenti di giacenza applicati.",
	})

	// GatewayErrors conta i guasti del gateway dati, per operazione.
	GatewayErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gestionale",
		Name:      "gateway_errors_total",
		Help:      "Errori del gateway dati, per operazione.",
	}, []string{"operazione"})
)
