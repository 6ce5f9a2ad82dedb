package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Note is the fixed disclaimer attached to every order. No payment is
// ever processed by this storefront.
const Note = "Demo order: no payment was processed and nothing will be shipped."

// CustomerInfo is the checkout contact data. All fields are required
// to be non-empty at order placement; no further format validation is
// applied.
type CustomerInfo struct {
	Name    string
	Email   string
	Address string
}

// LineItem is a frozen snapshot of one cart entry at placement time.
// Name and UnitPrice are copied out of the catalog so later catalog
// changes never alter historical orders.
type LineItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is the immutable record of a completed checkout. Subtotal,
// Discount, and Total are computed at creation time and stored, not
// recomputed later.
type Order struct {
	ID        string
	CreatedAt time.Time
	Customer  CustomerInfo
	LineItems []LineItem
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	PromoCode string
	Note      string
}
