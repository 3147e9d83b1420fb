// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/techtrove/storefront-backend/internal/catalog"
	"github.com/techtrove/storefront-backend/internal/models"
	"github.com/techtrove/storefront-backend/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

// CatalogService owns the local product catalog: GORM-backed reads for the
// storefront surfaces and wholesale-replace ingestion from the upstream
// catalog collaborator.
type CatalogService struct {
	db     *gorm.DB
	client *catalog.Client
}

type ProductSearchParams struct {
	utils.PaginationParams
	Category *models.ProductCategory `json:"category,omitempty"`
	Status   *models.ProductStatus   `json:"status,omitempty"`
	Tags     []string                `json:"tags,omitempty"`
}

type StockAlertRequest struct {
	Email   string            `json:"email" validate:"required,email"`
	Options map[string]string `json:"options,omitempty"`
}

func NewCatalogService(db *gorm.DB, client *catalog.Client) *CatalogService {
	return &CatalogService{db: db, client: client}
}

func (s *CatalogService) preloadDefinition(db *gorm.DB) *gorm.DB {
	return db.
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_groups.position ASC")
		}).
		Preload("OptionGroups.Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_values.position ASC")
		}).
		Preload("CrossPrices").
		Preload("PreOrder")
}

// ProductByID loads a full product definition, option groups and values in
// their declared order.
func (s *CatalogService) ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.preloadDefinition(s.db.WithContext(ctx)).
		Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) ProductBySKU(ctx context.Context, sku string) (*models.Product, error) {
	var product models.Product
	if err := s.preloadDefinition(s.db.WithContext(ctx)).
		Where("sku = ?", sku).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	} else {
		// Default to active products only
		query = query.Where("status = ?", models.ProductStatusActive)
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(params.Tags))
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "name", "base_price", "category"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// SyncProduct pulls the definition document for a SKU from the upstream
// catalog and replaces the stored definition wholesale. Ingest warnings are
// surfaced in the report and logged loudly; the parsed values themselves keep
// the clamp-to-zero policy so a corrupt field never blocks a sync.
func (s *CatalogService) SyncProduct(ctx context.Context, sku string) (*models.Product, *catalog.IngestReport, error) {
	doc, err := s.client.FetchDefinition(ctx, sku)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch product definition: %w", err)
	}

	product, report, err := catalog.ParseDefinition(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse product definition: %w", err)
	}

	for _, warning := range report.Warnings {
		logrus.WithFields(logrus.Fields{
			"sku": report.SKU,
		}).Warn("Catalog ingest: " + warning)
	}

	if err := s.replaceDefinition(ctx, product); err != nil {
		return nil, nil, err
	}

	// Reload with ordered associations
	stored, err := s.ProductBySKU(ctx, product.SKU)
	if err != nil {
		return nil, nil, err
	}
	return stored, report, nil
}

// replaceDefinition drops any prior definition for the SKU and inserts the
// new one in a single transaction. Definitions are never mutated in place.
func (s *CatalogService) replaceDefinition(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Unscoped().Where("sku = ?", product.SKU).First(&existing).Error
		if err == nil {
			if err := tx.Unscoped().Select("OptionGroups", "OptionGroups.Values", "CrossPrices", "PreOrder").
				Delete(&existing).Error; err != nil {
				return fmt.Errorf("failed to drop prior definition: %w", err)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("database error: %w", err)
		}

		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to store product definition: %w", err)
		}
		return nil
	})
}

// CreateStockAlert captures a back-in-stock notification request for an
// unorderable configuration.
func (s *CatalogService) CreateStockAlert(ctx context.Context, productID uuid.UUID, req *StockAlertRequest) (*models.StockAlert, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Verify the product exists
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count == 0 {
		return nil, ErrProductNotFound
	}

	options := make(models.JSONB, len(req.Options))
	for k, v := range req.Options {
		options[k] = v
	}

	alert := &models.StockAlert{
		ProductID: productID,
		Email:     req.Email,
		Options:   options,
		Status:    models.StockAlertStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, fmt.Errorf("failed to create stock alert: %w", err)
	}

	return alert, nil
}
