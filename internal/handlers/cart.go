// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techtrove/storefront-backend/internal/i18n"
	"github.com/techtrove/storefront-backend/internal/services"
	"github.com/techtrove/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

type addItemRequest struct {
	ProductID  uuid.UUID         `json:"product_id" binding:"required"`
	Selections map[string]string `json:"selections,omitempty"`
	Quantity   int               `json:"quantity"`
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyCartSessionReq), nil)
		return
	}

	view, err := h.cartService.View(c.Request.Context(), sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, view)
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	h.addItem(c, false)
}

// POST /cart/order-now
func (h *CartHandler) OrderNow(c *gin.Context) {
	h.addItem(c, true)
}

func (h *CartHandler) addItem(c *gin.Context, orderNow bool) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartSessionReq), nil)
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	quoteReq := &services.QuoteRequest{
		Selections: req.Selections,
		Quantity:   req.Quantity,
	}

	var item interface{}
	var err error
	if orderNow {
		item, err = h.cartService.OrderNow(c.Request.Context(), sessionID, req.ProductID, quoteReq)
	} else {
		item, err = h.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID, quoteReq)
	}

	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, services.ErrProductUnavailable):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductUnavailable))
		case errors.Is(err, services.ErrConfigurationOutOfStock):
			utils.UnprocessableResponse(c, "OUT_OF_STOCK", i18n.T(lang, i18n.KeyCartOutOfStock), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
		"item":    item,
	})
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartSessionReq), nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", gin.H{"id": c.Param("id")})
		return
	}

	// Removing an absent id is a no-op, not an error
	if err := h.cartService.RemoveItem(c.Request.Context(), sessionID, itemID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemRemoved),
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartSessionReq), nil)
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartCleared),
	})
}
