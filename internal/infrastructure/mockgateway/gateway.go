package mockgateway

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/domain/entity"
	"github.com/magazzino/gestionale/pkg/logger"
)

var _ gateway.Gateway = (*Gateway)(nil)

// Latenze simulate per operazione. Riproducono i tempi tipici del
// gestionale reale in rete locale.
const (
	latencyWarehouses = 500 * time.Millisecond
	latencySuppliers  = 400 * time.Millisecond
	latencyClients    = 300 * time.Millisecond
	latencySearch     = 600 * time.Millisecond
	latencyOrders     = 400 * time.Millisecond
	latencyMovements  = 500 * time.Millisecond
	latencyValidate   = 300 * time.Millisecond
	latencyCreate     = 800 * time.Millisecond
	latencyStock      = 600 * time.Millisecond
)

// defaultTimeout è il limite massimo oltre il quale ogni chiamata fallisce
// con domain.ErrTimeout.
const defaultTimeout = 10 * time.Second

// highQuantityThreshold fa scattare un avviso in validazione.
var highQuantityThreshold = decimal.NewFromInt(1000)

// Gateway è il backend simulato: dati campione fissi, latenze artificiali
// e persistenza in memoria dei documenti creati. Sicuro per uso
// concorrente.
type Gateway struct {
	log     *logger.Logger
	timeout time.Duration
	latency bool
	now     func() time.Time

	mu        sync.Mutex
	documents map[string]entity.Document
	applied   []entity.AppliedMovement
}

// Option configura il gateway simulato.
type Option func(*Gateway)

// WithLatency abilita o disabilita le latenze artificiali. I test le
// disattivano.
func WithLatency(enabled bool) Option {
	return func(g *Gateway) { g.latency = enabled }
}

// WithTimeout sostituisce il limite massimo di attesa.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// WithClock sostituisce la sorgente dell'ora corrente.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

func New(log *logger.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		log:       log.Component("mockgateway"),
		timeout:   defaultTimeout,
		latency:   true,
		now:       time.Now,
		documents: make(map[string]entity.Document),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// wait simula la latenza di rete rispettando contesto e limite massimo.
// Una latenza oltre il limite equivale a un server che non risponde: la
// chiamata fallisce con domain.ErrTimeout dopo l'attesa massima.
func (g *Gateway) wait(ctx context.Context, d time.Duration) error {
	if !g.latency {
		d = 0
	}
	var expired bool
	if d > g.timeout {
		d = g.timeout
		expired = true
	}
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return g.ctxErr(ctx)
		}
	} else if err := ctx.Err(); err != nil {
		return g.ctxErr(ctx)
	}
	if expired {
		return domain.ErrTimeout
	}
	return nil
}

func (g *Gateway) ctxErr(ctx context.Context) error {
	if ctx.Err() == context.DeadlineExceeded {
		return domain.ErrTimeout
	}
	return domain.ErrCommunication
}

func (g *Gateway) Warehouses(ctx context.Context) ([]entity.Warehouse, error) {
	if err := g.wait(ctx, latencyWarehouses); err != nil {
		return nil, err
	}
	return sampleWarehouses(), nil
}

func (g *Gateway) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	if err := g.wait(ctx, latencySuppliers); err != nil {
		return nil, err
	}
	return sampleSuppliers(), nil
}

func (g *Gateway) ClientsByType(ctx context.Context, clientType string) ([]entity.Client, error) {
	if err := g.wait(ctx, latencyClients); err != nil {
		return nil, err
	}
	return sampleClients()[clientType], nil
}

// SearchArticles confronta il termine con il codice (maiuscole
// significative) e con il nome (maiuscole indifferenti) di ogni articolo.
func (g *Gateway) SearchArticles(ctx context.Context, query string) ([]entity.Article, error) {
	if err := g.wait(ctx, latencySearch); err != nil {
		return nil, err
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	lq := strings.ToLower(q)
	var out []entity.Article
	for _, a := range sampleArticles() {
		if strings.Contains(a.Code, q) || strings.Contains(strings.ToLower(a.Name), lq) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (g *Gateway) ArticleByBarcode(ctx context.Context, barcode string) (*entity.Article, error) {
	if err := g.wait(ctx, latencySearch); err != nil {
		return nil, err
	}
	for _, a := range sampleArticles() {
		if a.Code == barcode {
			found := a
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SupplierOrders restituisce gli ordini del fornitore indicato; con
// supplierID zero restituisce tutti gli ordini.
func (g *Gateway) SupplierOrders(ctx context.Context, supplierID int64) ([]entity.SupplierOrder, error) {
	if err := g.wait(ctx, latencyOrders); err != nil {
		return nil, err
	}
	orders := sampleOrders()
	if supplierID == 0 {
		return orders, nil
	}
	var out []entity.SupplierOrder
	for _, o := range orders {
		if o.SupplierID == supplierID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (g *Gateway) ExternalMovements(ctx context.Context) ([]entity.ExternalMovement, error) {
	if err := g.wait(ctx, latencyMovements); err != nil {
		return nil, err
	}
	return sampleMovements(), nil
}

// ValidateDocument applica le regole minime lato server: almeno una riga,
// quantità positive, magazzini distinti per la bolla interna. Le quantità
// oltre soglia producono solo un avviso.
func (g *Gateway) ValidateDocument(ctx context.Context, draft entity.DocumentDraft) (*entity.ValidationResult, error) {
	if err := g.wait(ctx, latencyValidate); err != nil {
		return nil, err
	}
	result := &entity.ValidationResult{}
	if len(draft.Items) == 0 {
		result.Errors = append(result.Errors, "Il documento deve contenere almeno un articolo")
	}
	for i, item := range draft.Items {
		if !item.Quantity.IsPositive() {
			result.Errors = append(result.Errors, fmt.Sprintf("Quantità non valida per l'articolo alla riga %d", i+1))
		}
		if item.Quantity.GreaterThan(highQuantityThreshold) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Quantità elevata per l'articolo %s", item.Name))
		}
	}
	if draft.Type == entity.DocTypeBollaInterna && draft.WarehouseFrom == draft.WarehouseTo {
		result.Errors = append(result.Errors, "Magazzino di partenza e destinazione non possono essere uguali")
	}
	result.Valid = len(result.Errors) == 0
	return result, nil
}

func (g *Gateway) CreateInternalTransfer(ctx context.Context, draft entity.DocumentDraft) (*entity.Document, error) {
	return g.create(ctx, draft, entity.DocTypeBollaInterna, "BI")
}

func (g *Gateway) CreateDeliveryNote(ctx context.Context, draft entity.DocumentDraft) (*entity.Document, error) {
	return g.create(ctx, draft, entity.DocTypeDDTEmesso, "DDT")
}

func (g *Gateway) CreateGoodsReceipt(ctx context.Context, draft entity.DocumentDraft) (*entity.Document, error) {
	return g.create(ctx, draft, entity.DocTypeCaricoMerce, "CM")
}

func (g *Gateway) create(ctx context.Context, draft entity.DocumentDraft, docType entity.DocumentType, prefix string) (*entity.Document, error) {
	if err := g.wait(ctx, latencyCreate); err != nil {
		return nil, err
	}
	now := g.now()
	doc := entity.Document{
		ID:            uuid.NewString(),
		Type:          docType,
		Number:        fmt.Sprintf("%s%d", prefix, now.UnixMilli()),
		Date:          now,
		Items:         append([]entity.DraftItem(nil), draft.Items...),
		WarehouseFrom: draft.WarehouseFrom,
		WarehouseTo:   draft.WarehouseTo,
		ClientType:    draft.ClientType,
		ClientID:      draft.ClientID,
		SupplierID:    draft.SupplierID,
		OrderID:       draft.OrderID,
		Status:        "created",
	}
	g.mu.Lock()
	g.documents[doc.ID] = doc
	g.mu.Unlock()
	g.log.Info().Str("numero", doc.Number).Str("tipo", string(doc.Type)).Msg("documento creato")
	return &doc, nil
}

func (g *Gateway) DocumentByID(ctx context.Context, id string) (*entity.Document, error) {
	if err := g.wait(ctx, latencyValidate); err != nil {
		return nil, err
	}
	g.mu.Lock()
	doc, ok := g.documents[id]
	g.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

func (g *Gateway) ApplyStockMovements(ctx context.Context, movements []entity.StockMovement) (*entity.StockUpdateResult, error) {
	if err := g.wait(ctx, latencyStock); err != nil {
		return nil, err
	}
	now := g.now()
	g.mu.Lock()
	for _, m := range movements {
		g.applied = append(g.applied, entity.AppliedMovement{StockMovement: m, AppliedAt: now})
	}
	g.mu.Unlock()
	g.log.Info().Int("movimenti", len(movements)).Msg("giacenze aggiornate")
	return &entity.StockUpdateResult{Success: true, UpdatedItems: len(movements), Timestamp: now}, nil
}

func (g *Gateway) AppliedMovements(ctx context.Context) ([]entity.AppliedMovement, error) {
	if err := g.wait(ctx, latencyStock); err != nil {
		return nil, err
	}
	g.mu.Lock()
	out := append([]entity.AppliedMovement(nil), g.applied...)
	g.mu.Unlock()
	return out, nil
}
