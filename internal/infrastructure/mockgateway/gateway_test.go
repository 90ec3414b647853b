package mockgateway_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/domain/entity"
	"github.com/magazzino/gestionale/internal/infrastructure/mockgateway"
	"github.com/magazzino/gestionale/pkg/logger"
)

func newGateway(opts ...mockgateway.Option) *mockgateway.Gateway {
	opts = append([]mockgateway.Option{mockgateway.WithLatency(false)}, opts...)
	return mockgateway.New(logger.Nop(), opts...)
}

func TestWarehousesSampleData(t *testing.T) {
	gw := newGateway()

	warehouses, err := gw.Warehouses(context.Background())
	require.NoError(t, err)
	require.Len(t, warehouses, 4)
	assert.Equal(t, "Magazzino Centrale", warehouses[0].Name)
	assert.Equal(t, "MC", warehouses[0].Code)
	assert.Equal(t, "Deposito Esterno", warehouses[3].Name)
}

func TestSuppliersSampleData(t *testing.T) {
	gw := newGateway()

	suppliers, err := gw.Suppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 4)
	assert.Equal(t, "FTT001", suppliers[0].Code)
}

func TestClientsByType(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()

	tt, err := gw.ClientsByType(ctx, "TT")
	require.NoError(t, err)
	assert.Len(t, tt, 2)

	fly, err := gw.ClientsByType(ctx, "FLY")
	require.NoError(t, err)
	assert.Len(t, fly, 2)

	unknown, err := gw.ClientsByType(ctx, "XX")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestSearchArticles(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()

	// Sul nome le maiuscole non contano.
	byName, err := gw.SearchArticles(ctx, "articolo test")
	require.NoError(t, err)
	assert.Len(t, byName, 3)

	upperName, err := gw.SearchArticles(ctx, "ARTICOLO TEST")
	require.NoError(t, err)
	assert.Len(t, upperName, 3)

	byCode, err := gw.SearchArticles(ctx, "4567890123456")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "Prodotto Esempio", byCode[0].Name)

	empty, err := gw.SearchArticles(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	none, err := gw.SearchArticles(ctx, "inesistente")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArticleByBarcode(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()

	article, err := gw.ArticleByBarcode(ctx, "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, "Articolo Test 1", article.Name)
	assert.True(t, article.Price.Equal(decimal.NewFromFloat(15.50)))

	_, err = gw.ArticleByBarcode(ctx, "0000000000000")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSupplierOrdersFilteredBySupplier(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()

	all, err := gw.SupplierOrders(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	one, err := gw.SupplierOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, one, 2)
	assert.Equal(t, "OF001", one[0].Number)
	assert.Equal(t, "OF003", one[1].Number)
}

func TestExternalMovementsSampleData(t *testing.T) {
	gw := newGateway()

	movements, err := gw.ExternalMovements(context.Background())
	require.NoError(t, err)
	require.Len(t, movements, 3)
	assert.Equal(t, "ME001", movements[0].Number)
	assert.Equal(t, "TT", movements[0].ClientType)
	require.Len(t, movements[0].Items, 2)
}

func TestValidateDocumentRules(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()

	t.Run("documento vuoto", func(t *testing.T) {
		result, err := gw.ValidateDocument(ctx, entity.DocumentDraft{Type: entity.DocTypeCaricoMerce})
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Il documento deve contenere almeno un articolo")
	})

	t.Run("quantità non positiva con riga 1-based", func(t *testing.T) {
		draft := entity.DocumentDraft{
			Type: entity.DocTypeCaricoMerce,
			Items: []entity.DraftItem{
				{ArticleID: 1, Quantity: decimal.NewFromInt(5)},
				{ArticleID: 2, Quantity: decimal.Zero},
			},
		}
		result, err := gw.ValidateDocument(ctx, draft)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Quantità non valida per l'articolo alla riga 2")
	})

	t.Run("quantità elevata è solo un avviso", func(t *testing.T) {
		draft := entity.DocumentDraft{
			Type: entity.DocTypeCaricoMerce,
			Items: []entity.DraftItem{
				{ArticleID: 1, Name: "Articolo Test 1", Quantity: decimal.NewFromInt(1500)},
			},
		}
		result, err := gw.ValidateDocument(ctx, draft)
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Contains(t, result.Warnings, "Quantità elevata per l'articolo Articolo Test 1")
	})

	t.Run("bolla interna con magazzini uguali", func(t *testing.T) {
		draft := entity.DocumentDraft{
			Type:          entity.DocTypeBollaInterna,
			WarehouseFrom: 1,
			WarehouseTo:   1,
			Items: []entity.DraftItem{
				{ArticleID: 1, Quantity: decimal.NewFromInt(1)},
			},
		}
		result, err := gw.ValidateDocument(ctx, draft)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Magazzino di partenza e destinazione non possono essere uguali")
	})
}

func TestCreateAndFetchDocument(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()
	draft := entity.DocumentDraft{
		Type:          entity.DocTypeBollaInterna,
		WarehouseFrom: 1,
		WarehouseTo:   2,
		Items: []entity.DraftItem{
			{ArticleID: 1, Name: "Articolo Test 1", Quantity: decimal.NewFromInt(5), Price: decimal.NewFromFloat(15.50)},
		},
	}

	doc, err := gw.CreateInternalTransfer(ctx, draft)
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.Regexp(t, `^BI\d+$`, doc.Number)
	assert.Equal(t, "created", doc.Status)
	assert.Equal(t, int64(1), doc.WarehouseFrom)
	require.Len(t, doc.Items, 1)

	fetched, err := gw.DocumentByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Number, fetched.Number)

	_, err = gw.DocumentByID(ctx, "sconosciuto")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePrefixesPerType(t *testing.T) {
	gw := newGateway()
	ctx := context.Background()
	draft := entity.DocumentDraft{
		Items: []entity.DraftItem{{ArticleID: 1, Quantity: decimal.NewFromInt(1)}},
	}

	ddt, err := gw.CreateDeliveryNote(ctx, draft)
	require.NoError(t, err)
	assert.Regexp(t, `^DDT\d+$`, ddt.Number)
	assert.Equal(t, entity.DocTypeDDTEmesso, ddt.Type)

	cm, err := gw.CreateGoodsReceipt(ctx, draft)
	require.NoError(t, err)
	assert.Regexp(t, `^CM\d+$`, cm.Number)
	assert.Equal(t, entity.DocTypeCaricoMerce, cm.Type)
}

func TestApplyStockMovementsRecorded(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	gw := newGateway(mockgateway.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	movements := []entity.StockMovement{
		{ArticleID: 1, Quantity: decimal.NewFromInt(5), Type: "trasferimento", WarehouseFrom: 1, WarehouseTo: 2},
		{ArticleID: 2, Quantity: decimal.NewFromInt(3), Type: "trasferimento", WarehouseFrom: 1, WarehouseTo: 2},
	}
	result, err := gw.ApplyStockMovements(ctx, movements)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.UpdatedItems)
	assert.Equal(t, now, result.Timestamp)

	applied, err := gw.AppliedMovements(ctx)
	require.NoError(t, err)
	require.Len(t, applied, 2)
	assert.Equal(t, int64(1), applied[0].ArticleID)
	assert.Equal(t, now, applied[0].AppliedAt)
}

func TestLatencyBeyondTimeoutFails(t *testing.T) {
	gw := mockgateway.New(logger.Nop(),
		mockgateway.WithLatency(true),
		mockgateway.WithTimeout(20*time.Millisecond))

	_, err := gw.Warehouses(context.Background())
	require.ErrorIs(t, err, domain.ErrTimeout)
}

func TestContextDeadlineMapsToTimeout(t *testing.T) {
	gw := mockgateway.New(logger.Nop(),
		mockgateway.WithLatency(true),
		mockgateway.WithTimeout(time.Second))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := gw.Warehouses(ctx)
	require.ErrorIs(t, err, domain.ErrTimeout)
}

func TestContextCancelMapsToCommunication(t *testing.T) {
	gw := newGateway()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gw.Warehouses(ctx)
	require.ErrorIs(t, err, domain.ErrCommunication)
}
