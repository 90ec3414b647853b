package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/magazzino/gestionale/internal/application/dto"
	"github.com/magazzino/gestionale/internal/application/gateway"
)

// ArticleHandler serve la ricerca articoli e la risoluzione per barcode.
type ArticleHandler struct {
	gw gateway.Gateway
}

func NewArticleHandler(gw gateway.Gateway) *ArticleHandler {
	return &ArticleHandler{gw: gw}
}

// Search godoc
// @Summary      Ricerca articoli per codice o descrizione
// @Tags         articoli
// @Produce      json
// @Param        q  query  string  true  "Termine di ricerca"
// @Success      200  {array}  dto.ArticleResponse
// @Router       /api/articoli [get]
func (h *ArticleHandler) Search(c *fiber.Ctx) error {
	list, err := h.gw.SearchArticles(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, "ricerca_articoli", err)
	}
	return c.JSON(dto.FromArticles(list))
}

// ByBarcode godoc
// @Summary      Articolo per codice a barre
// @Tags         articoli
// @Produce      json
// @Param        code  path  string  true  "Codice a barre"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/articoli/barcode/{code} [get]
func (h *ArticleHandler) ByBarcode(c *fiber.Ctx) error {
	article, err := h.gw.ArticleByBarcode(c.Context(), c.Params("code"))
	if err != nil {
		return respondError(c, "articolo_barcode", err)
	}
	return c.JSON(dto.FromArticle(*article))
}
