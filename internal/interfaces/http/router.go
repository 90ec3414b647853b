// Package http espone le operazioni del gateway dati come API REST.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/pkg/logger"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	Gateway gateway.Gateway
	PDF     ports.DocumentPDFGenerator
	Log     *logger.Logger
}

// Router registra le rotte dell'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	anagrafiche := NewAnagraficheHandler(deps.Gateway)
	api.Get("/magazzini", anagrafiche.Warehouses)
	api.Get("/fornitori", anagrafiche.Suppliers)
	api.Get("/clienti", anagrafiche.Clients)

	articles := NewArticleHandler(deps.Gateway)
	api.Get("/articoli", articles.Search)
	api.Get("/articoli/barcode/:code", articles.ByBarcode)

	sources := NewSourcesHandler(deps.Gateway)
	api.Get("/ordini-fornitore", sources.SupplierOrders)
	api.Get("/movimentazioni-esterne", sources.ExternalMovements)

	documents := NewDocumentHandler(deps.Gateway, deps.PDF, deps.Log)
	api.Post("/documenti/valida", documents.Validate)
	api.Post("/documenti", documents.Create)
	api.Get("/documenti/:id", documents.ByID)
	api.Get("/documenti/:id/pdf", documents.PDF)
	api.Get("/documenti/:id/xml", documents.XML)

	stock := NewStockHandler(deps.Gateway)
	api.Post("/giacenze/movimenti", stock.Apply)
	api.Get("/giacenze/export", stock.Export)
}
