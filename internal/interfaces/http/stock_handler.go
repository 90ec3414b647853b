package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/dto"
	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/infrastructure/excel"
	"github.com/magazzino/gestionale/internal/infrastructure/metrics"
)

// StockHandler applica i movimenti di giacenza ed esporta il registro.
type StockHandler struct {
	gw gateway.Gateway
}

func NewStockHandler(gw gateway.Gateway) *StockHandler {
	return &StockHandler{gw: gw}
}

// Apply godoc
// @Summary      Applica movimenti di giacenza
// @Tags         giacenze
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyMovementsRequest  true  "Movimenti"
// @Success      200   {object}  dto.StockUpdateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/giacenze/movimenti [post]
func (h *StockHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyMovementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo non valido"})
	}
	if len(in.Movements) == 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nessun movimento da applicare"})
	}
	result, err := h.gw.ApplyStockMovements(c.Context(), in.ToStockMovements())
	if err != nil {
		return respondError(c, "applica_movimenti", err)
	}
	metrics.StockMovementsApplied.Add(float64(result.UpdatedItems))
	return c.JSON(dto.FromStockUpdate(result))
}

// Export godoc
// @Summary      Esporta il registro movimenti in XLSX
// @Tags         giacenze
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/giacenze/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	movements, err := h.gw.AppliedMovements(c.Context())
	if err != nil {
		return respondError(c, "movimenti_applicati", err)
	}
	out, err := excel.ExportMovements(movements)
	if err != nil {
		return respondError(c, "export_movimenti", err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimenti.xlsx"`)
	return c.Send(out)
}
