// internal/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techtrove/storefront-backend/internal/i18n"
	"github.com/techtrove/storefront-backend/internal/services"
	"github.com/techtrove/storefront-backend/internal/utils"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartSessionReq), nil)
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	payload, err := h.checkoutService.Submit(c.Request.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.UnprocessableResponse(c, "EMPTY_CART", i18n.T(lang, i18n.KeyCartEmptyOnCheck), nil)
		case errors.Is(err, services.ErrOrderSubmissionFailed):
			utils.ErrorResponse(c, http.StatusBadGateway, "SUBMISSION_FAILED", i18n.T(lang, i18n.KeyCheckoutFailed), err.Error())
		default:
			if validationErrs := utils.GetValidationErrors(errors.Unwrap(err)); len(validationErrs) > 0 {
				utils.ValidationErrorResponse(c, validationErrs)
				return
			}
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCheckoutSubmitted),
		"order":   payload,
	})
}
