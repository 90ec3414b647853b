// Package gateway define il porto verso il backend dati.
// In produzione lo implementa il sistema gestionale reale (PostgreSQL);
// in sviluppo e nei test lo implementa il gateway simulato.
package gateway

import (
	"context"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// Gateway espone le operazioni nominate del backend. Ogni chiamata è un punto
// di sospensione: ritorna un risultato tipizzato o fallisce entro un limite
// superiore di attesa (domain.ErrTimeout oltre il limite, domain.ErrCommunication
// per ogni altro guasto di trasporto).
type Gateway interface {
	// Anagrafiche
	Warehouses(ctx context.Context) ([]entity.Warehouse, error)
	Suppliers(ctx context.Context) ([]entity.Supplier, error)
	// ClientsByType ritorna i clienti della categoria; categoria sconosciuta -> lista vuota.
	ClientsByType(ctx context.Context, tipo string) ([]entity.Client, error)

	// Articoli
	// SearchArticles cerca per sottostringa sul codice o sul nome (case-insensitive sul nome).
	SearchArticles(ctx context.Context, query string) ([]entity.Article, error)
	// ArticleByBarcode ritorna l'articolo con codice esattamente uguale, o domain.ErrNotFound.
	ArticleByBarcode(ctx context.Context, barcode string) (*entity.Article, error)

	// Sorgenti dei flussi di carico
	// SupplierOrders filtra per fornitore; supplierID 0 = tutti.
	SupplierOrders(ctx context.Context, supplierID int64) ([]entity.SupplierOrder, error)
	ExternalMovements(ctx context.Context) ([]entity.ExternalMovement, error)

	// Documenti
	ValidateDocument(ctx context.Context, draft entity.DocumentDraft) (*entity.ValidationResult, error)
	CreateInternalTransfer(ctx context.Context, draft entity.DocumentDraft) (*entity.Document, error)
	CreateDeliveryNote(ctx context.Context, draft entity.DocumentDraft) (*entity.Document, error)
	CreateGoodsReceipt(ctx context.Context, draft entity.DocumentDraft) (*entity.Document, error)
	DocumentByID(ctx context.Context, id string) (*entity.Document, error)

	// Giacenze
	ApplyStockMovements(ctx context.Context, movements []entity.StockMovement) (*entity.StockUpdateResult, error)
	AppliedMovements(ctx context.Context) ([]entity.AppliedMovement, error)
}
