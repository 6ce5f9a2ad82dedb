package order

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/domain/promo"
)

// ErrEmptyCart is returned when checkout is attempted with no items.
var ErrEmptyCart = fmt.Errorf("cart is empty")

// EmptyFieldError indicates a required customer field was left blank.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("customer %s is required", e.Field)
}

// IDPrefix is prepended to every generated order ID.
const IDPrefix = "ORD-"

// Builder constructs immutable Order records from the current cart
// and catalog. The clock and ID generator are injected so tests can
// pin both.
type Builder struct {
	clock  clockwork.Clock
	newID  func() string
	promos promo.Validator
}

// NewBuilder creates a Builder. promos may be nil when the storefront
// runs without promo codes.
func NewBuilder(clock clockwork.Clock, promos promo.Validator) *Builder {
	return &Builder{
		clock: clock,
		newID: func() string {
			return IDPrefix + uuid.New().String()
		},
		promos: promos,
	}
}

// WithIDGenerator overrides the order ID generator. Intended for tests.
func (b *Builder) WithIDGenerator(newID func() string) *Builder {
	b.newID = newID
	return b
}

// Build validates the checkout preconditions and constructs the Order.
//
// The cart must be non-empty and every customer field non-blank;
// violations fail with ErrEmptyCart or *EmptyFieldError before any
// order state is produced. Cart entries whose product no longer
// resolves in the catalog are still included, with the product ID as
// fallback name and a unit price of zero.
//
// Build does not clear the cart; sequencing that side effect is the
// caller's responsibility.
func (b *Builder) Build(c cart.Cart, catalog *product.Catalog, customer CustomerInfo, promoCode string) (*Order, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if c.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}

	items := buildLineItems(c, catalog)

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	discount := decimal.Zero
	promoCode = strings.TrimSpace(promoCode)
	if promoCode != "" && b.promos != nil {
		d, err := b.promos.Validate(promoCode, promoItems(items))
		if err != nil {
			return nil, err
		}
		discount = d.Amount
	}

	// Total = subtotal - discount, floored at zero and rounded to cents.
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &Order{
		ID:        b.newID(),
		CreatedAt: b.clock.Now(),
		Customer:  customer,
		LineItems: items,
		Subtotal:  subtotal,
		Discount:  discount.Round(2),
		Total:     total.Round(2),
		PromoCode: promoCode,
		Note:      Note,
	}, nil
}

func validateCustomer(customer CustomerInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", customer.Name},
		{"email", customer.Email},
		{"address", customer.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &EmptyFieldError{Field: f.name}
		}
	}
	return nil
}

// buildLineItems snapshots the cart against the catalog in a
// deterministic order: resolved entries in catalog order, unresolved
// ones last, sorted by ID.
func buildLineItems(c cart.Cart, catalog *product.Catalog) []LineItem {
	items := make([]LineItem, 0, len(c))
	for _, p := range catalog.List() {
		qty, ok := c[p.ID]
		if !ok {
			continue
		}
		items = append(items, LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  qty,
			UnitPrice: p.Price,
		})
	}

	var orphaned []string
	for id := range c {
		if _, ok := catalog.Find(id); !ok {
			orphaned = append(orphaned, id)
		}
	}
	slices.Sort(orphaned)
	for _, id := range orphaned {
		items = append(items, LineItem{
			ProductID: id,
			Name:      id,
			Quantity:  c[id],
			UnitPrice: decimal.Zero,
		})
	}

	return items
}

func promoItems(items []LineItem) []promo.Item {
	out := make([]promo.Item, len(items))
	for i, item := range items {
		out[i] = promo.Item{
			ProductID: item.ProductID,
			Price:     item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return out
}
