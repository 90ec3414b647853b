package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/magazzino/gestionale/internal/domain/entity"
)

// MovementItemResponse riga di una movimentazione esterna.
type MovementItemResponse struct {
	ArticleID   int64           `json:"articolo_id"`
	ArticleName string          `json:"articolo_nome"`
	Quantity    decimal.Decimal `json:"quantita"`
	Price       decimal.Decimal `json:"prezzo"`
}

// ExternalMovementResponse movimentazione esterna in uscita.
type ExternalMovementResponse struct {
	ID         int64                  `json:"id"`
	Number     string                 `json:"numero"`
	Date       time.Time              `json:"data"`
	ClientType string                 `json:"cliente_tipologia"`
	ClientName string                 `json:"cliente_nome"`
	Status     string                 `json:"stato"`
	Items      []MovementItemResponse `json:"righe"`
}

func FromExternalMovements(list []entity.ExternalMovement) []ExternalMovementResponse {
	out := make([]ExternalMovementResponse, 0, len(list))
	for _, m := range list {
		items := make([]MovementItemResponse, 0, len(m.Items))
		for _, it := range m.Items {
			items = append(items, MovementItemResponse{
				ArticleID:   it.ArticleID,
				ArticleName: it.ArticleName,
				Quantity:    it.Quantity,
				Price:       it.Price,
			})
		}
		out = append(out, ExternalMovementResponse{
			ID:         m.ID,
			Number:     m.Number,
			Date:       m.Date,
			ClientType: m.ClientType,
			ClientName: m.ClientName,
			Status:     m.Status,
			Items:      items,
		})
	}
	return out
}

// StockMovementRequest singolo movimento di giacenza in ingresso.
type StockMovementRequest struct {
	ArticleID     int64           `json:"articolo_id"`
	Quantity      decimal.Decimal `json:"quantita"`
	Type          string          `json:"tipo"`
	WarehouseFrom int64           `json:"magazzino_partenza"`
	WarehouseTo   int64           `json:"magazzino_destinazione"`
}

// ApplyMovementsRequest corpo di POST /api/giacenze/movimenti.
type ApplyMovementsRequest struct {
	Movements []StockMovementRequest `json:"movimenti"`
}

// ToStockMovements converte la richiesta nei movimenti del dominio.
func (r ApplyMovementsRequest) ToStockMovements() []entity.StockMovement {
	out := make([]entity.StockMovement, 0, len(r.Movements))
	for _, m := range r.Movements {
		out = append(out, entity.StockMovement{
			ArticleID:     m.ArticleID,
			Quantity:      m.Quantity,
			Type:          m.Type,
			WarehouseFrom: m.WarehouseFrom,
			WarehouseTo:   m.WarehouseTo,
		})
	}
	return out
}

// StockUpdateResponse esito dell'applicazione dei movimenti.
type StockUpdateResponse struct {
	Success      bool      `json:"success"`
	UpdatedItems int       `json:"righe_aggiornate"`
	Timestamp    time.Time `json:"timestamp"`
}

func FromStockUpdate(r *entity.StockUpdateResult) StockUpdateResponse {
	return StockUpdateResponse{Success: r.Success, UpdatedItems: r.UpdatedItems, Timestamp: r.Timestamp}
}
