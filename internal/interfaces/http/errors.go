package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/dto"
	"github.com/magazzino/gestionale/internal/domain"
	"github.com/magazzino/gestionale/internal/infrastructure/metrics"
)

// respondError mappa gli errori del dominio sul codice HTTP appropriato e
// aggiorna il contatore dei guasti.
func respondError(c *fiber.Ctx, op string, err error) error {
	metrics.GatewayErrors.WithLabelValues(op).Inc()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).
			JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "risorsa non trovata"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrTimeout):
		return c.Status(fiber.StatusGatewayTimeout).
			JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "il backend non ha risposto in tempo"})
	case errors.Is(err, domain.ErrCommunication):
		return c.Status(fiber.StatusBadGateway).
			JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "errore di comunicazione con il backend"})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
