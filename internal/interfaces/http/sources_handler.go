package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/dto"
	"github.com/magazzino/gestionale/internal/application/gateway"
)

// SourcesHandler serve le sorgenti dei flussi di carico: ordini fornitore
// e movimentazioni esterne.
type SourcesHandler struct {
	gw gateway.Gateway
}

func NewSourcesHandler(gw gateway.Gateway) *SourcesHandler {
	return &SourcesHandler{gw: gw}
}

// SupplierOrders godoc
// @Summary      Ordini fornitore
// @Tags         sorgenti
// @Produce      json
// @Param        fornitore_id  query  int  false  "Filtro per fornitore (0 = tutti)"
// @Success      200  {array}  dto.SupplierOrderResponse
// @Router       /api/ordini-fornitore [get]
func (h *SourcesHandler) SupplierOrders(c *fiber.Ctx) error {
	supplierID := int64(c.QueryInt("fornitore_id", 0))
	list, err := h.gw.SupplierOrders(c.Context(), supplierID)
	if err != nil {
		return respondError(c, "ordini_fornitore", err)
	}
	return c.JSON(dto.FromSupplierOrders(list))
}

// ExternalMovements godoc
// @Summary      Movimentazioni esterne caricabili
// @Tags         sorgenti
// @Produce      json
// @Success      200  {array}  dto.ExternalMovementResponse
// @Router       /api/movimentazioni-esterne [get]
func (h *SourcesHandler) ExternalMovements(c *fiber.Ctx) error {
	list, err := h.gw.ExternalMovements(c.Context())
	if err != nil {
		return respondError(c, "movimentazioni_esterne", err)
	}
	return c.JSON(dto.FromExternalMovements(list))
}
