package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/domain/entity"
	"github.com/magazzino/gestionale/pkg/logger"
)

var _ gateway.Gateway = (*Gateway)(nil)

var highQuantityThreshold = decimal.NewFromInt(1000)

// Gateway implementazione del porto dati su PostgreSQL.
type Gateway struct {
	pool *pgxpool.Pool
	log  *logger.Logger
	now  func() time.Time
}

func NewGateway(pool *pgxpool.Pool, log *logger.Logger) *Gateway {
	return &Gateway{
		pool: pool,
		log:  log.Component("postgres"),
		now:  time.Now,
	}
}

// wrap normalizza i guasti di trasporto nei valori del dominio.
func wrap(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, domain.ErrTimeout)
	}
	return fmt.Errorf("%s: %w", op, domain.ErrCommunication)
}

func (g *Gateway) Warehouses(ctx context.Context) ([]entity.Warehouse, error) {
	rows, err := g.pool.Query(ctx, `SELECT id, nome, codice FROM magazzini ORDER BY id`)
	if err != nil {
		return nil, wrap("query magazzini", err)
	}
	defer rows.Close()

	var list []entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Code); err != nil {
			return nil, fmt.Errorf("scan magazzino: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func (g *Gateway) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	rows, err := g.pool.Query(ctx, `SELECT id, nome, tipologia, codice FROM fornitori ORDER BY id`)
	if err != nil {
		return nil, wrap("query fornitori", err)
	}
	defer rows.Close()

	var list []entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Code); err != nil {
			return nil, fmt.Errorf("scan fornitore: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (g *Gateway) ClientsByType(ctx context.Context, tipo string) ([]entity.Client, error) {
	rows, err := g.pool.Query(ctx,
		`SELECT id, nome, codice FROM clienti WHERE tipologia = $1 ORDER BY id`, tipo)
	if err != nil {
		return nil, wrap("query clienti", err)
	}
	defer rows.Close()

	var list []entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (g *Gateway) SearchArticles(ctx context.Context, query string) ([]entity.Article, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}
	rows, err := g.pool.Query(ctx, `
		SELECT id, codice, nome, prezzo, giacenza
		FROM articoli
		WHERE codice LIKE '%' || $1 || '%' OR nome ILIKE '%' || $1 || '%'
		ORDER BY codice`, q)
	if err != nil {
		return nil, wrap("ricerca articoli", err)
	}
	defer rows.Close()

	var list []entity.Article
	for rows.Next() {
		var a entity.Article
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Price, &a.Stock); err != nil {
			return nil, fmt.Errorf("scan articolo: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (g *Gateway) ArticleByBarcode(ctx context.Context, barcode string) (*entity.Article, error) {
	var a entity.Article
	err := g.pool.QueryRow(ctx,
		`SELECT id, codice, nome, prezzo, giacenza FROM articoli WHERE codice = $1`, barcode).
		Scan(&a.ID, &a.Code, &a.Name, &a.Price, &a.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, wrap("articolo per barcode", err)
	}
	return &a, nil
}

func (g *Gateway) SupplierOrders(ctx context.Context, supplierID int64) ([]entity.SupplierOrder, error) {
	query := `
		SELECT o.id, o.numero, o.fornitore_id, f.nome, o.data, o.stato
		FROM ordini_fornitore o
		JOIN fornitori f ON f.id = o.fornitore_id`
	args := []any{}
	if supplierID != 0 {
		query += ` WHERE o.fornitore_id = $1`
		args = append(args, supplierID)
	}
	query += ` ORDER BY o.data, o.id`

	rows, err := g.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap("query ordini fornitore", err)
	}
	defer rows.Close()

	var orders []entity.SupplierOrder
	index := make(map[int64]int)
	for rows.Next() {
		var o entity.SupplierOrder
		if err := rows.Scan(&o.ID, &o.Number, &o.SupplierID, &o.SupplierName, &o.Date, &o.Status); err != nil {
			return nil, fmt.Errorf("scan ordine: %w", err)
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	itemRows, err := g.pool.Query(ctx, `
		SELECT r.ordine_id, r.articolo_id, a.nome, r.qta_ordinata, r.qta_ricevuta
		FROM ordine_righe r
		JOIN articoli a ON a.id = r.articolo_id
		WHERE r.ordine_id = ANY($1)
		ORDER BY r.id`, ids)
	if err != nil {
		return nil, wrap("query righe ordine", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID int64
		var item entity.OrderItem
		if err := itemRows.Scan(&orderID, &item.ArticleID, &item.ArticleName, &item.OrderedQty, &item.ReceivedQty); err != nil {
			return nil, fmt.Errorf("scan riga ordine: %w", err)
		}
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, itemRows.Err()
}

func (g *Gateway) ExternalMovements(ctx context.Context) ([]entity.ExternalMovement, error) {
	rows, err := g.pool.Query(ctx, `
		SELECT id, numero, data, tipologia, cliente_nome, stato
		FROM movimentazioni_esterne
		ORDER BY data, id`)
	if err != nil {
		return nil, wrap("query movimentazioni esterne", err)
	}
	defer rows.Close()

	var movements []entity.ExternalMovement
	index := make(map[int64]int)
	for rows.Next() {
		var m entity.ExternalMovement
		if err := rows.Scan(&m.ID, &m.Number, &m.Date, &m.ClientType, &m.ClientName, &m.Status); err != nil {
			return nil, fmt.Errorf("scan movimentazione: %w", err)
		}
		index[m.ID] = len(movements)
		movements = append(movements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(movements) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(movements))
	for _, m := range movements {
		ids = append(ids, m.ID)
	}
	itemRows, err := g.pool.Query(ctx, `
		SELECT r.movimentazione_id, r.articolo_id, a.nome, r.quantita, r.prezzo
		FROM movimentazione_righe r
		JOIN articoli a ON a.id = r.articolo_id
		WHERE r.movimentazione_id = ANY($1)
		ORDER BY r.id`, ids)
	if err != nil {
		return nil, wrap("query righe movimentazione", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var movementID int64
		var item entity.MovementItem
		if err := itemRows.Scan(&movementID, &item.ArticleID, &item.ArticleName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan riga movimentazione: %w", err)
		}
		i := index[movementID]
		movements[i].Items = append(movements[i].Items, item)
	}
	return movements, itemRows.Err()
}

// ValidateDocument applica le stesse regole del backend simulato: la
// validazione è di forma, non interroga le giacenze.
func (g *Gateway) ValidateDocument(ctx context.Context, draft entity.DocumentDraft) (*entity.ValidationResult, error) {
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

	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return nil, wrap("begin documento", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO documenti
			(id, tipo, numero, data, magazzino_partenza, magazzino_arrivo,
			 cliente_tipologia, cliente_id, fornitore_id, ordine_id, stato)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		doc.ID, doc.Type, doc.Number, doc.Date,
		nullInt64(doc.WarehouseFrom), nullInt64(doc.WarehouseTo),
		nullString(doc.ClientType), nullInt64(doc.ClientID),
		nullInt64(doc.SupplierID), nullInt64(doc.OrderID), doc.Status)
	if err != nil {
		return nil, wrap("insert documento", err)
	}

	for _, item := range doc.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO documento_righe (documento_id, articolo_id, nome, quantita, prezzo)
			VALUES ($1, $2, $3, $4, $5)`,
			doc.ID, item.ArticleID, item.Name, item.Quantity, item.Price)
		if err != nil {
			return nil, wrap("insert riga documento", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap("commit documento", err)
	}
	g.log.Info().Str("numero", doc.Number).Str("tipo", string(doc.Type)).Msg("documento creato")
	return &doc, nil
}

func (g *Gateway) DocumentByID(ctx context.Context, id string) (*entity.Document, error) {
	var doc entity.Document
	var from, to, clientID, supplierID, orderID *int64
	var clientType *string
	err := g.pool.QueryRow(ctx, `
		SELECT id, tipo, numero, data, magazzino_partenza, magazzino_arrivo,
		       cliente_tipologia, cliente_id, fornitore_id, ordine_id, stato
		FROM documenti WHERE id = $1`, id).
		Scan(&doc.ID, &doc.Type, &doc.Number, &doc.Date, &from, &to,
			&clientType, &clientID, &supplierID, &orderID, &doc.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, wrap("query documento", err)
	}
	doc.WarehouseFrom = deref(from)
	doc.WarehouseTo = deref(to)
	doc.ClientID = deref(clientID)
	doc.SupplierID = deref(supplierID)
	doc.OrderID = deref(orderID)
	if clientType != nil {
		doc.ClientType = *clientType
	}

	rows, err := g.pool.Query(ctx, `
		SELECT articolo_id, nome, quantita, prezzo
		FROM documento_righe WHERE documento_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, wrap("query righe documento", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.DraftItem
		if err := rows.Scan(&item.ArticleID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan riga documento: %w", err)
		}
		doc.Items = append(doc.Items, item)
	}
	return &doc, rows.Err()
}

// stockDelta variazione della giacenza complessiva prodotta da un
// movimento: le spedizioni verso cliente scaricano, i carichi caricano,
// il trasferimento sposta tra magazzini senza variare il totale.
func stockDelta(m entity.StockMovement) decimal.Decimal {
	switch m.Type {
	case "movimentazione":
		return m.Quantity.Neg()
	case "carico-esterno", "carico-fornitore":
		return m.Quantity
	default:
		return decimal.Zero
	}
}

// ApplyStockMovements registra i movimenti e aggiorna le giacenze degli
// articoli in una sola transazione: o tutto o niente.
func (g *Gateway) ApplyStockMovements(ctx context.Context, movements []entity.StockMovement) (*entity.StockUpdateResult, error) {
	now := g.now()

	tx, err := g.pool.Begin(ctx)
	if err != nil {
		return nil, wrap("begin movimenti", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range movements {
		_, err = tx.Exec(ctx, `
			INSERT INTO movimenti_giacenza
				(articolo_id, quantita, tipo, magazzino_partenza, magazzino_arrivo, applicato_il)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			m.ArticleID, m.Quantity, m.Type,
			nullInt64(m.WarehouseFrom), nullInt64(m.WarehouseTo), now)
		if err != nil {
			return nil, wrap("insert movimento", err)
		}
		if delta := stockDelta(m); !delta.IsZero() {
			_, err = tx.Exec(ctx, `
				UPDATE articoli SET giacenza = giacenza + $1 WHERE id = $2`,
				delta, m.ArticleID)
			if err != nil {
				return nil, wrap("aggiorna giacenza", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrap("commit movimenti", err)
	}
	g.log.Info().Int("movimenti", len(movements)).Msg("giacenze aggiornate")
	return &entity.StockUpdateResult{Success: true, UpdatedItems: len(movements), Timestamp: now}, nil
}

func (g *Gateway) AppliedMovements(ctx context.Context) ([]entity.AppliedMovement, error) {
	rows, err := g.pool.Query(ctx, `
		SELECT articolo_id, quantita, tipo, magazzino_partenza, magazzino_arrivo, applicato_il
		FROM movimenti_giacenza ORDER BY applicato_il, id`)
	if err != nil {
		return nil, wrap("query movimenti applicati", err)
	}
	defer rows.Close()

	var list []entity.AppliedMovement
	for rows.Next() {
		var m entity.AppliedMovement
		var from, to *int64
		if err := rows.Scan(&m.ArticleID, &m.Quantity, &m.Type, &from, &to, &m.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan movimento applicato: %w", err)
		}
		m.WarehouseFrom = deref(from)
		m.WarehouseTo = deref(to)
		list = append(list, m)
	}
	return list, rows.Err()
}

// Gli id zero rappresentano "non impostato" e vanno in colonna come NULL.
func nullInt64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}

func nullString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
