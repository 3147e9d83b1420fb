// internal/handlers/catalog.go
package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techtrove/storefront-backend/internal/cart"
	"github.com/techtrove/storefront-backend/internal/i18n"
	"github.com/techtrove/storefront-backend/internal/models"
	"github.com/techtrove/storefront-backend/internal/services"
	"github.com/techtrove/storefront-backend/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	listingCache   *cart.ListingCache
}

func NewCatalogHandler(catalogService *services.CatalogService, listingCache *cart.ListingCache) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		listingCache:   listingCache,
	}
}

// GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	cacheKey := c.Request.URL.Path + "?" + c.Request.URL.RawQuery
	if cached, ok := h.listingCache.Get(c.Request.Context(), cacheKey); ok {
		var result utils.PaginationResult
		if err := json.Unmarshal(cached, &result); err == nil {
			utils.PaginatedResponse(c, result)
			return
		}
	}

	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	category := c.Param("category")
	if category == "" {
		category = c.Query("category")
	}
	if category != "" {
		productCategory := models.ProductCategory(category)
		params.Category = &productCategory
	}

	if status := c.Query("status"); status != "" {
		productStatus := models.ProductStatus(status)
		params.Status = &productStatus
	}

	if tags := c.Query("tags"); tags != "" {
		params.Tags = strings.Split(tags, ",")
	}

	products, total, err := h.catalogService.SearchProducts(c.Request.Context(), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	if payload, err := json.Marshal(result); err == nil {
		h.listingCache.Put(c.Request.Context(), cacheKey, payload)
	}
	utils.PaginatedResponse(c, result)
}

// GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", gin.H{"id": c.Param("id")})
		return
	}

	product, err := h.catalogService.ProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

type syncRequest struct {
	SKU string `json:"sku" binding:"required"`
}

// POST /products/sync
func (h *CatalogHandler) SyncProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	product, report, err := h.catalogService.SyncProduct(c.Request.Context(), req.SKU)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyProductSynced),
		"product":  product,
		"warnings": report.Warnings,
	})
}

// POST /products/:id/stock-alerts
func (h *CatalogHandler) CreateStockAlert(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "", gin.H{"id": c.Param("id")})
		return
	}

	var req services.StockAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	alert, err := h.catalogService.CreateStockAlert(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "product")
			return
		}
		if validationErrs := utils.GetValidationErrors(errors.Unwrap(err)); len(validationErrs) > 0 {
			utils.ValidationErrorResponse(c, validationErrs)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyStockAlertCreated),
		"alert":   alert,
	})
}
