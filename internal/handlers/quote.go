// internal/handlers/quote.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techtrove/storefront-backend/internal/i18n"
	"github.com/techtrove/storefront-backend/internal/services"
	"github.com/techtrove/storefront-backend/internal/utils"
)

type QuoteHandler struct {
	quoteService *services.QuoteService
}

func NewQuoteHandler(quoteService *services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// POST /products/:id/quote
//
// Re-invoked by surfaces on every selection or quantity change; resolution is
// deterministic for a given selection, so repeated quotes never flicker.
func (h *QuoteHandler) Quote(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", gin.H{"id": c.Param("id")})
		return
	}

	var req services.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	result, err := h.quoteService.Quote(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		if errors.Is(err, services.ErrProductUnavailable) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductUnavailable))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}
