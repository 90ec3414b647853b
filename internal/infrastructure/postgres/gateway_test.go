package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

func TestStockDeltaPerMovementType(t *testing.T) {
	qty := decimal.NewFromInt(5)

	cases := []struct {
		name     string
		movement entity.StockMovement
		want     decimal.Decimal
	}{
		{
			name:     "la spedizione verso cliente scarica",
			movement: entity.StockMovement{Type: "movimentazione", Quantity: qty},
			want:     qty.Neg(),
		},
		{
			name:     "il carico da movimentazione esterna carica",
			movement: entity.StockMovement{Type: "carico-esterno", Quantity: qty},
			want:     qty,
		},
		{
			name:     "il carico da fornitore carica",
			movement: entity.StockMovement{Type: "carico-fornitore", Quantity: qty},
			want:     qty,
		},
		{
			name:     "il trasferimento non varia il totale",
			movement: entity.StockMovement{Type: "trasferimento", Quantity: qty, WarehouseFrom: 1, WarehouseTo: 2},
			want:     decimal.Zero,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, stockDelta(tc.movement).Equal(tc.want))
		})
	}
}
