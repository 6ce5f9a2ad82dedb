package session

import "github.com/xenking/storefront/internal/domain/order"

// Intent is a single user action forwarded by the presentation layer.
// Exactly one intent is processed at a time; each runs to completion
// before the next is dispatched.
type Intent interface {
	intent()
}

// SetSearch replaces the active search text.
type SetSearch struct {
	Text string
}

// SetCategory replaces the active category filter. Use
// query.CategoryAll to match every product.
type SetCategory struct {
	Category string
}

// SetSort replaces the active sort mode.
type SetSort struct {
	Mode string
}

// AddToCart increments the cart entry for a product.
type AddToCart struct {
	ProductID string
	Quantity  int
}

// SetQuantity sets a cart entry to an absolute quantity; zero or
// negative removes it.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the cart.
type ClearCart struct{}

// SubmitOrder attempts checkout with the given customer info and an
// optional promo code.
type SubmitOrder struct {
	Customer  order.CustomerInfo
	PromoCode string
}

// DismissOrder discards the held order confirmation.
type DismissOrder struct{}

func (SetSearch) intent()    {}
func (SetCategory) intent()  {}
func (SetSort) intent()      {}
func (AddToCart) intent()    {}
func (SetQuantity) intent()  {}
func (ClearCart) intent()    {}
func (SubmitOrder) intent()  {}
func (DismissOrder) intent() {}
