// internal/services/checkout_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/techtrove/storefront-backend/internal/cart"
	"github.com/techtrove/storefront-backend/internal/config"
	"github.com/techtrove/storefront-backend/internal/models"
	"github.com/techtrove/storefront-backend/internal/utils"
)

var (
	ErrEmptyCart             = errors.New("cart is empty")
	ErrOrderSubmissionFailed = errors.New("order submission failed")
)

// CheckoutService builds the finished order payload from the order-intent
// store and hands it to the order submission collaborator. Its responsibility
// ends there; order persistence belongs to the collaborator.
type CheckoutService struct {
	store     *cart.Store
	submitURL string
	http      *retryablehttp.Client
}

type CheckoutRequest struct {
	Customer models.Customer `json:"customer"`
}

func NewCheckoutService(store *cart.Store, cfg config.OrdersConfig) *CheckoutService {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 2
	rc.HTTPClient.Timeout = time.Duration(cfg.SubmitTimeout) * time.Second
	rc.Logger = logrus.StandardLogger()

	return &CheckoutService{
		store:     store,
		submitURL: cfg.SubmitURL,
		http:      rc,
	}
}

// Submit validates the customer fields, derives the total from the store at
// read time, posts the payload, and clears the cart on success.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string, req *CheckoutRequest) (*models.OrderPayload, error) {
	if err := utils.ValidateStruct(&req.Customer); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	items, err := s.store.ReadAll(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	payload := &models.OrderPayload{
		Customer:  req.Customer,
		LineItems: items,
		Total:     cart.Total(items),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.submit(ctx, payload); err != nil {
		return nil, err
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		// The order went through; an unswept cart is recoverable.
		logrus.WithFields(logrus.Fields{
			"session_id": sessionID,
		}).WithError(err).Warn("Failed to clear cart after checkout")
	}

	return payload, nil
}

func (s *CheckoutService) submit(ctx context.Context, payload *models.OrderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode order payload: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.submitURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOrderSubmissionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: collaborator returned status %d", ErrOrderSubmissionFailed, resp.StatusCode)
	}

	logrus.WithFields(logrus.Fields{
		"items": len(payload.LineItems),
		"total": payload.Total.String(),
	}).Info("Order submitted")
	return nil
}
