package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/dto"
	"github.com/magazzino/gestionale/internal/application/gateway"
)

// AnagraficheHandler serve magazzini, fornitori e clienti.
type AnagraficheHandler struct {
	gw gateway.Gateway
}

func NewAnagraficheHandler(gw gateway.Gateway) *AnagraficheHandler {
	return &AnagraficheHandler{gw: gw}
}

// Warehouses godoc
// @Summary      Elenco magazzini
// @Tags         anagrafiche
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/magazzini [get]
func (h *AnagraficheHandler) Warehouses(c *fiber.Ctx) error {
	list, err := h.gw.Warehouses(c.Context())
	if err != nil {
		return respondError(c, "magazzini", err)
	}
	return c.JSON(dto.FromWarehouses(list))
}

// Suppliers godoc
// @Summary      Elenco fornitori
// @Tags         anagrafiche
// @Produce      json
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/fornitori [get]
func (h *AnagraficheHandler) Suppliers(c *fiber.Ctx) error {
	list, err := h.gw.Suppliers(c.Context())
	if err != nil {
		return respondError(c, "fornitori", err)
	}
	return c.JSON(dto.FromSuppliers(list))
}

// Clients godoc
// @Summary      Clienti per tipologia
// @Tags         anagrafiche
// @Produce      json
// @Param        tipo  query  string  true  "Tipologia cliente (TT, TG, FLY)"
// @Success      200   {array}   dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/clienti [get]
func (h *AnagraficheHandler) Clients(c *fiber.Ctx) error {
	tipo := c.Query("tipo")
	if tipo == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo richiesto"})
	}
	list, err := h.gw.ClientsByType(c.Context(), tipo)
	if err != nil {
		return respondError(c, "clienti", err)
	}
	return c.JSON(dto.FromClients(list))
}
