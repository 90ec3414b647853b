package flow_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magazzino/gestionale/internal/application/flow"
	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/pkg/logger"
)

func TestSearchShortQueryClearsResults(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)
	ctx := context.Background()

	results, err := m.Search(ctx, "Articolo")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// Sotto i due caratteri: nessuna chiamata, risultati svuotati.
	results, err = m.Search(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.Empty(t, m.SearchResults())
}

func TestSelectResultOutOfRange(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)

	require.ErrorIs(t, m.SelectResult(0), flow.ErrArticleNotFound)
	require.ErrorIs(t, m.SelectResult(-1), flow.ErrArticleNotFound)
}

func TestSelectResultPrefillsEntry(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)
	ctx := context.Background()

	_, err := m.Search(ctx, "1234567890123")
	require.NoError(t, err)
	require.NoError(t, m.SelectResult(0))

	entry := m.EntryForm()
	assert.Equal(t, "1234567890123 - Articolo Test 1", entry.Text)
	assert.True(t, decimal.NewFromFloat(15.50).Equal(entry.Price))
	assert.Empty(t, m.SearchResults())
}

func TestAddItemRuleOrder(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)

	// Sezione articoli chiusa: qualunque inserimento è rifiutato.
	err := m.AddItem(decimal.NewFromInt(1), decimal.NewFromInt(1))
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	unlockTransfer(t, m)

	// Nessuna selezione: vince la prima regola anche con quantità nulla.
	err = m.AddItem(decimal.Zero, decimal.NewFromInt(-1))
	require.ErrorIs(t, err, flow.ErrNoArticle)

	addSelection(t, m)
	err = m.AddItem(decimal.Zero, decimal.NewFromInt(1))
	require.ErrorIs(t, err, flow.ErrInvalidQuantity)

	err = m.AddItem(decimal.NewFromInt(-3), decimal.NewFromInt(1))
	require.ErrorIs(t, err, flow.ErrInvalidQuantity)

	err = m.AddItem(decimal.NewFromInt(1), decimal.NewFromInt(-1))
	require.ErrorIs(t, err, flow.ErrInvalidPrice)

	// Prezzo zero accettato.
	require.NoError(t, m.AddItem(decimal.NewFromInt(1), decimal.Zero))
	require.Len(t, m.Items(), 1)
}

func TestAddItemClearsEntryAndSelection(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)
	addSelection(t, m)

	require.NoError(t, m.AddItem(decimal.NewFromInt(2), decimal.NewFromInt(10)))

	assert.Nil(t, m.SelectedArticle())
	assert.Equal(t, flow.Entry{}, m.EntryForm())
	assert.Empty(t, m.SearchResults())
}

func TestAddItemMergesByArticleID(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)

	addArticle(t, m, "Articolo Test 1", decimal.NewFromInt(3), decimal.NewFromInt(10))
	addArticle(t, m, "Articolo Test 1", decimal.NewFromInt(4), decimal.NewFromInt(99))

	items := m.Items()
	require.Len(t, items, 1)
	assert.True(t, decimal.NewFromInt(7).Equal(items[0].Quantity))
	// Il prezzo della riga esistente resta invariato.
	assert.True(t, decimal.NewFromInt(10).Equal(items[0].Price))
}

func TestEditItemPrefillsAndRemoves(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)
	addArticle(t, m, "Articolo Test 1", decimal.NewFromInt(5), decimal.NewFromFloat(15.50))

	require.NoError(t, m.EditItem(0))

	assert.Empty(t, m.Items())
	assert.False(t, m.CanSubmit())

	entry := m.EntryForm()
	assert.Equal(t, "1234567890123 - Articolo Test 1", entry.Text)
	assert.True(t, decimal.NewFromInt(5).Equal(entry.Quantity))
	require.NotNil(t, m.SelectedArticle())

	// Reinserimento con quantità corretta.
	require.NoError(t, m.AddItem(decimal.NewFromInt(8), decimal.NewFromFloat(15.50)))
	require.Len(t, m.Items(), 1)
}

func TestEditItemLockedForMovementRows(t *testing.T) {
	m := newMachine(t, flow.KindCaricoEsterno)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(3))
	require.NoError(t, m.SelectMovement(ctx, 1))

	require.ErrorIs(t, m.EditItem(0), flow.ErrItemLocked)
	require.Len(t, m.Items(), 2)
}

func TestRemoveItemBounds(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)
	addArticle(t, m, "Articolo Test 1", decimal.NewFromInt(1), decimal.NewFromInt(1))

	require.ErrorIs(t, m.RemoveItem(5), flow.ErrNoSuchItem)
	require.NoError(t, m.RemoveItem(0))
	assert.Empty(t, m.Items())
	assert.False(t, m.CanSubmit())
}

func TestUpdateItemQuantityOnlyForOrderRows(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	_, err := m.SelectSupplier(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, m.SelectOrder(ctx, 2))

	require.NoError(t, m.UpdateItemQuantity(0, decimal.NewFromInt(70)))
	assert.True(t, decimal.NewFromInt(70).Equal(m.Items()[0].Quantity))

	require.ErrorIs(t, m.UpdateItemQuantity(0, decimal.NewFromInt(-1)), flow.ErrInvalidQuantity)
	require.ErrorIs(t, m.UpdateItemQuantity(9, decimal.NewFromInt(1)), flow.ErrNoSuchItem)
}

func TestUpdateItemQuantityRejectedForManualRows(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)
	unlockTransfer(t, m)
	addArticle(t, m, "Articolo Test 1", decimal.NewFromInt(1), decimal.NewFromInt(1))

	require.ErrorIs(t, m.UpdateItemQuantity(0, decimal.NewFromInt(2)), flow.ErrNotOrderItem)
}

// addSelection seleziona il primo articolo della ricerca senza inserirlo.
func addSelection(t *testing.T, m *flow.Machine) {
	t.Helper()
	_, err := m.Search(context.Background(), "Articolo Test 1")
	require.NoError(t, err)
	require.NoError(t, m.SelectResult(0))
}

func TestSearchFailurePropagates(t *testing.T) {
	gw := newFaultyGateway()
	gw.searchErr = domain.ErrCommunication
	m := flow.NewMachine(flow.KindTrasferimento, gw, logger.Nop())
	unlockTransfer(t, m)

	_, err := m.Search(context.Background(), "Articolo")
	require.ErrorIs(t, err, domain.ErrCommunication)
}
