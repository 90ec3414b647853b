package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/dto"
	"github.com/magazzino/gestionale/internal/application/gateway"
	"github.com/magazzino/gestionale/internal/application/ports"
	"github.com/magazzino/gestionale/internal/domain/entity"
	"github.com/magazzino/gestionale/internal/infrastructure/metrics"
	"github.com/magazzino/gestionale/internal/infrastructure/xmlexport"
	"github.com/magazzino/gestionale/pkg/logger"
)

// DocumentHandler valida, crea e riesporta i documenti di magazzino.
type DocumentHandler struct {
	gw  gateway.Gateway
	pdf ports.DocumentPDFGenerator
	log *logger.Logger
}

func NewDocumentHandler(gw gateway.Gateway, pdf ports.DocumentPDFGenerator, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{gw: gw, pdf: pdf, log: log.Component("http")}
}

// Validate godoc
// @Summary      Valida una bozza di documento
// @Tags         documenti
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DocumentDraftRequest  true  "Bozza"
// @Success      200   {object}  dto.ValidationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documenti/valida [post]
func (h *DocumentHandler) Validate(c *fiber.Ctx) error {
	var in dto.DocumentDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo non valido"})
	}
	result, err := h.gw.ValidateDocument(c.Context(), in.ToDraft())
	if err != nil {
		return respondError(c, "valida_documento", err)
	}
	return c.JSON(dto.FromValidation(result))
}

// Create godoc
// @Summary      Crea un documento dalla bozza
// @Tags         documenti
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DocumentDraftRequest  true  "Bozza"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documenti [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.DocumentDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo non valido"})
	}

	draft := in.ToDraft()
	var doc *entity.Document
	var err error
	switch draft.Type {
	case entity.DocTypeBollaInterna:
		doc, err = h.gw.CreateInternalTransfer(c.Context(), draft)
	case entity.DocTypeDDTEmesso:
		doc, err = h.gw.CreateDeliveryNote(c.Context(), draft)
	case entity.DocTypeCaricoMerce:
		doc, err = h.gw.CreateGoodsReceipt(c.Context(), draft)
	default:
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo documento sconosciuto"})
	}
	if err != nil {
		return respondError(c, "crea_documento", err)
	}

	metrics.DocumentsCreated.WithLabelValues(string(doc.Type)).Inc()
	h.log.Info().Str("numero", doc.Number).Str("tipo", string(doc.Type)).Msg("documento creato via API")
	return c.Status(fiber.StatusCreated).JSON(dto.FromDocument(doc))
}

// ByID godoc
// @Summary      Documento per id
// @Tags         documenti
// @Produce      json
// @Param        id  path  string  true  "Id documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documenti/{id} [get]
func (h *DocumentHandler) ByID(c *fiber.Ctx) error {
	doc, err := h.gw.DocumentByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, "documento", err)
	}
	return c.JSON(dto.FromDocument(doc))
}

// PDF godoc
// @Summary      Stampa PDF del documento
// @Tags         documenti
// @Produce      application/pdf
// @Param        id  path  string  true  "Id documento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documenti/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.gw.DocumentByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, "documento", err)
	}
	out, err := h.pdf.GenerateDocumentPDF(c.Context(), doc)
	if err != nil {
		return respondError(c, "documento_pdf", err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Number+`.pdf"`)
	return c.Send(out)
}

// XML godoc
// @Summary      Rappresentazione XML del documento
// @Tags         documenti
// @Produce      application/xml
// @Param        id  path  string  true  "Id documento"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documenti/{id}/xml [get]
func (h *DocumentHandler) XML(c *fiber.Ctx) error {
	doc, err := h.gw.DocumentByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, "documento", err)
	}
	out, err := xmlexport.Render(doc)
	if err != nil {
		return respondError(c, "documento_xml", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
