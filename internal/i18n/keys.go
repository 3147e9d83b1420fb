// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Products
	KeyProductNotFound    = "product.not_found"
	KeyProductSynced      = "product.synced"
	KeyProductUnavailable = "product.unavailable"

	// Cart
	KeyCartItemAdded    = "cart.item_added"
	KeyCartItemRemoved  = "cart.item_removed"
	KeyCartCleared      = "cart.cleared"
	KeyCartOutOfStock   = "cart.out_of_stock"
	KeyCartSessionReq   = "cart.session_required"
	KeyCartEmptyOnCheck = "cart.empty_on_checkout"

	// Checkout
	KeyCheckoutSubmitted = "checkout.submitted"
	KeyCheckoutFailed    = "checkout.failed"

	// Stock alerts
	KeyStockAlertCreated = "stock_alert.created"
)
