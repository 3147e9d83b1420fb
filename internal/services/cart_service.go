// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techtrove/storefront-backend/internal/cart"
	"github.com/techtrove/storefront-backend/internal/models"
	"github.com/techtrove/storefront-backend/internal/pricing"
)

var ErrConfigurationOutOfStock = errors.New("selected configuration is out of stock")

// CartService is the presenting surface in front of the order-intent store:
// it resolves a selection, checks the orderable verdict, and only then
// commits a line-item snapshot. The store itself never guards adds.
type CartService struct {
	store  *cart.Store
	quotes *QuoteService
}

type CartView struct {
	Items []models.LineItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
	Count int               `json:"count"`
}

func NewCartService(store *cart.Store, quotes *QuoteService) *CartService {
	return &CartService{store: store, quotes: quotes}
}

// AddItem resolves the selection and appends a line-item snapshot. Repeated
// adds of the same configuration produce separate line items.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, req *QuoteRequest) (*models.LineItem, error) {
	result, err := s.quotes.Quote(ctx, productID, req)
	if err != nil {
		return nil, err
	}

	if !result.Availability.Orderable {
		return nil, ErrConfigurationOutOfStock
	}

	item := models.LineItem{
		ID:        uuid.New(),
		ProductID: result.ProductID,
		SKU:       result.SKU,
		Name:      result.Name,
		UnitPrice: result.Quote.UnitPrice,
		Quantity:  result.Quote.Quantity,
		Options:   result.OptionLabels,
		Image:     result.Image,
		PreOrder:  result.Mode == pricing.ModePreOrder,
		AddedAt:   time.Now().UTC(),
	}

	if err := s.store.Add(ctx, sessionID, item); err != nil {
		return nil, fmt.Errorf("failed to store line item: %w", err)
	}
	return &item, nil
}

// OrderNow starts a fresh single-item flow: the cart is cleared first so a
// previous selection cannot leak into an unrelated checkout.
func (s *CartService) OrderNow(ctx context.Context, sessionID string, productID uuid.UUID, req *QuoteRequest) (*models.LineItem, error) {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}
	return s.AddItem(ctx, sessionID, productID, req)
}

// View reads the items and derives the total at read time.
func (s *CartService) View(ctx context.Context, sessionID string) (*CartView, error) {
	items, err := s.store.ReadAll(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	return &CartView{
		Items: items,
		Total: cart.Total(items),
		Count: len(items),
	}, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemID uuid.UUID) error {
	if err := s.store.Remove(ctx, sessionID, itemID); err != nil {
		return fmt.Errorf("failed to remove line item: %w", err)
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
