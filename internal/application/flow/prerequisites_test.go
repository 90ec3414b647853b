package flow_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magazzino/gestionale/internal/application/flow"
	"github.com/magazzino/gestionale/internal/domain"
)

func TestSelectWarehousesPartialSelectionKeepsItemsLocked(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)

	require.NoError(t, m.SelectWarehouses(1, 0))
	assert.Equal(t, flow.PhaseSelecting, m.Phase())

	require.NoError(t, m.SelectWarehouses(0, 2))
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
}

func TestSelectWarehousesEqualRejected(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)

	err := m.SelectWarehouses(1, 1)
	require.ErrorIs(t, err, flow.ErrSameWarehouses)
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
}

func TestSelectWarehousesUnlocksItems(t *testing.T) {
	m := newMachine(t, flow.KindTrasferimento)

	require.NoError(t, m.SelectWarehouses(1, 2))
	assert.Equal(t, flow.PhaseItems, m.Phase())
}

func TestSelectWarehousesWrongKind(t *testing.T) {
	m := newMachine(t, flow.KindMovimentazione)

	require.ErrorIs(t, m.SelectWarehouses(1, 2), flow.ErrWrongKind)
}

func TestClientTypeThenClientUnlocksItems(t *testing.T) {
	m := newMachine(t, flow.KindMovimentazione)
	ctx := context.Background()

	clients, err := m.SelectClientType(ctx, "TT")
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, flow.PhaseSelecting, m.Phase())

	require.NoError(t, m.SelectClient(clients[0].ID))
	assert.Equal(t, flow.PhaseItems, m.Phase())
}

func TestClientTypeChangeResetsClient(t *testing.T) {
	m := newMachine(t, flow.KindMovimentazione)
	ctx := context.Background()

	_, err := m.SelectClientType(ctx, "TT")
	require.NoError(t, err)
	require.NoError(t, m.SelectClient(1))
	require.Equal(t, flow.PhaseItems, m.Phase())

	// Cambio categoria: il cliente va riselezionato.
	_, err = m.SelectClientType(ctx, "TG")
	require.NoError(t, err)
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
	assert.Equal(t, int64(0), m.View().ClientID)
}

func TestMovementPickerNeedsDestination(t *testing.T) {
	m := newMachine(t, flow.KindCaricoEsterno)

	assert.False(t, m.MovementPickerEnabled())
	require.ErrorIs(t, m.SelectMovement(context.Background(), 1), flow.ErrNoDestination)

	require.NoError(t, m.SelectDestination(3))
	assert.True(t, m.MovementPickerEnabled())
}

func TestSelectMovementReplacesCollectionWithLockedItems(t *testing.T) {
	m := newMachine(t, flow.KindCaricoEsterno)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(3))

	require.NoError(t, m.SelectMovement(ctx, 1))
	assert.Equal(t, flow.PhaseItems, m.Phase())
	assert.True(t, m.CanSubmit())

	items := m.Items()
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.FromMovement)
		assert.False(t, item.Editable())
	}
	// ME001: 20 × Articolo Test 1 e 15 × Articolo Test 2.
	assert.True(t, decimal.NewFromInt(20).Equal(items[0].Quantity))
	assert.Equal(t, "ART000001", items[0].Code)
	assert.True(t, decimal.NewFromFloat(25.00).Equal(items[1].Price))
}

func TestSelectMovementZeroClosesItems(t *testing.T) {
	m := newMachine(t, flow.KindCaricoEsterno)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(3))
	require.NoError(t, m.SelectMovement(ctx, 1))

	require.NoError(t, m.SelectMovement(ctx, 0))
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
}

func TestSelectMovementUnknownID(t *testing.T) {
	m := newMachine(t, flow.KindCaricoEsterno)
	require.NoError(t, m.SelectDestination(3))

	require.ErrorIs(t, m.SelectMovement(context.Background(), 99), domain.ErrNotFound)
}

func TestSelectSupplierLoadsItsOrders(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	assert.True(t, m.SupplierPickerEnabled())

	orders, err := m.SelectSupplier(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, int64(1), o.SupplierID)
	}
}

func TestSelectOrderImportsReceivedQuantities(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	_, err := m.SelectSupplier(ctx, 2)
	require.NoError(t, err)

	// OF002: 100/60 di Articolo Test 3 e 25/25 di Prodotto Esempio.
	require.NoError(t, m.SelectOrder(ctx, 2))
	assert.Equal(t, flow.PhaseItems, m.Phase())

	items := m.Items()
	require.Len(t, items, 2)
	assert.True(t, items[0].FromOrder)
	assert.True(t, decimal.NewFromInt(60).Equal(items[0].Quantity))
	assert.True(t, decimal.NewFromInt(100).Equal(items[0].OrderedQty))
	assert.True(t, decimal.Zero.Equal(items[0].Price))
	assert.True(t, decimal.NewFromInt(25).Equal(items[1].Quantity))
}

func TestSelectOrderZeroClosesItems(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	_, err := m.SelectSupplier(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, m.SelectOrder(ctx, 2))

	require.NoError(t, m.SelectOrder(ctx, 0))
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
	assert.Equal(t, int64(0), m.View().OrderID)
}

func TestFreeEntryNeedsSupplier(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	require.NoError(t, m.SelectDestination(1))

	require.ErrorIs(t, m.FreeEntry(), flow.ErrNoSupplier)
}

func TestFreeEntryClearsOrderItems(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	_, err := m.SelectSupplier(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, m.SelectOrder(ctx, 2))
	require.NotEmpty(t, m.Items())

	require.NoError(t, m.FreeEntry())
	assert.Empty(t, m.Items())
	assert.Equal(t, flow.PhaseItems, m.Phase())
	assert.False(t, m.CanSubmit())

	view := m.View()
	assert.True(t, view.FreeEntry)
	assert.False(t, view.OrderPickerEnabled)
}

func TestUseExistingOrderReturnsToSelection(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	_, err := m.SelectSupplier(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, m.FreeEntry())

	require.NoError(t, m.UseExistingOrder())
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
	assert.True(t, m.View().OrderPickerEnabled)
}

func TestSupplierChangeResetsOrderAndFreeEntry(t *testing.T) {
	m := newMachine(t, flow.KindCaricoFornitore)
	ctx := context.Background()
	require.NoError(t, m.SelectDestination(1))
	_, err := m.SelectSupplier(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, m.FreeEntry())

	_, err = m.SelectSupplier(ctx, 2)
	require.NoError(t, err)
	view := m.View()
	assert.False(t, view.FreeEntry)
	assert.Equal(t, int64(0), view.OrderID)
	assert.Equal(t, flow.PhaseSelecting, m.Phase())
}
