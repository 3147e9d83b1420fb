// internal/services/quote_service.go
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/techtrove/storefront-backend/internal/models"
	"github.com/techtrove/storefront-backend/internal/pricing"
)

var ErrProductUnavailable = errors.New("product is not available for purchase")

// ProductSource is the catalog read surface the quote and cart services
// depend on.
type ProductSource interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// QuoteService resolves a user's selection into a price and availability
// verdict. Resolution is pure; the service only adds the catalog lookup in
// front of it, so a surface can re-quote on every selection change.
type QuoteService struct {
	products ProductSource
}

type QuoteRequest struct {
	Selections map[string]string `json:"selections,omitempty"`
	Quantity   int               `json:"quantity"`
}

type QuoteResult struct {
	ProductID     uuid.UUID              `json:"product_id"`
	SKU           string                 `json:"sku"`
	Name          string                 `json:"name"`
	Quote         pricing.Quote          `json:"quote"`
	Availability  pricing.Availability   `json:"availability"`
	Mode          pricing.PurchaseMode   `json:"mode"`
	PurchaseLabel string                 `json:"purchase_label"`
	PreOrder      *models.PreOrderPolicy `json:"pre_order,omitempty"`

	// OptionLabels flattens the selection to human labels, ready to be
	// snapshotted into a line item.
	OptionLabels map[string]string `json:"option_labels"`
	Image        string            `json:"-"`
}

func NewQuoteService(products ProductSource) *QuoteService {
	return &QuoteService{products: products}
}

// Quote resolves price and availability for one (product, selection,
// quantity) triple. An empty selection quotes the defaults (first value of
// every group); a group missing from the selection contributes no delta.
func (s *QuoteService) Quote(ctx context.Context, productID uuid.UUID, req *QuoteRequest) (*QuoteResult, error) {
	product, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Status != models.ProductStatusActive {
		return nil, ErrProductUnavailable
	}

	sel := pricing.Selection{Choices: req.Selections, Quantity: req.Quantity}
	if sel.Choices == nil {
		sel = pricing.DefaultSelection(product)
		sel.Quantity = req.Quantity
	}

	gate := pricing.NewQuantityGate(product.PreOrder)
	sel.Quantity = gate.Clamp(sel.Quantity)

	quote := pricing.ResolvePrice(product, sel)
	availability := pricing.ResolveAvailability(product, sel)

	result := &QuoteResult{
		ProductID:     product.ID,
		SKU:           product.SKU,
		Name:          product.Name,
		Quote:         quote,
		Availability:  availability,
		Mode:          gate.Mode(),
		PurchaseLabel: gate.Label(),
		OptionLabels:  flattenLabels(product, sel),
	}
	if gate.Mode() == pricing.ModePreOrder {
		result.PreOrder = product.PreOrder
	}
	if len(product.Images) > 0 {
		result.Image = product.Images[0]
	}
	return result, nil
}

// flattenLabels maps group label to chosen value label for every selected
// group the definition knows. Line items carry labels, not codes; the store
// never re-resolves pricing.
func flattenLabels(p *models.Product, sel pricing.Selection) map[string]string {
	labels := make(map[string]string)
	for i := range p.OptionGroups {
		g := &p.OptionGroups[i]
		code, ok := sel.Choices[g.Code]
		if !ok {
			continue
		}
		if v := g.Value(code); v != nil {
			labels[g.Label] = v.Label
		}
	}
	return labels
}
