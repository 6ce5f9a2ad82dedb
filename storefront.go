// Package storefront is a client-side storefront engine: catalog
// browsing, cart management with write-through local persistence, and
// a simulated checkout that exports a downloadable JSON receipt.
//
// The package is the public face of the engine. A host (the
// presentation layer) constructs a Session with New, reads state
// through the Session accessors, and forwards user intents through
// Session.Dispatch. All pricing uses exact decimal arithmetic; no
// payment is processed and no network is involved.
package storefront

import (
	"context"

	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/app"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/query"
	"github.com/xenking/storefront/internal/session"
)

// Config holds the engine configuration. See LoadConfig for the
// supported sources.
type Config = app.Config

// Session processes intents against the catalog, cart, and order
// builder.
type Session = session.Session

// Product is a catalog item.
type Product = product.Product

// Cart maps product IDs to requested quantities.
type Cart = cart.Cart

// Params holds the active search, category, and sort parameters.
type Params = query.Params

// CustomerInfo is the checkout contact data.
type CustomerInfo = order.CustomerInfo

// Order is the immutable record of a completed checkout.
type Order = order.Order

// Intents accepted by Session.Dispatch.
type (
	Intent       = session.Intent
	SetSearch    = session.SetSearch
	SetCategory  = session.SetCategory
	SetSort      = session.SetSort
	AddToCart    = session.AddToCart
	SetQuantity  = session.SetQuantity
	ClearCart    = session.ClearCart
	SubmitOrder  = session.SubmitOrder
	DismissOrder = session.DismissOrder
)

// Sort modes for SetSort.
const (
	SortFeatured  = string(query.SortFeatured)
	SortPriceAsc  = string(query.SortPriceAsc)
	SortPriceDesc = string(query.SortPriceDesc)
)

// CategoryAll is the category filter value that matches every product.
const CategoryAll = query.CategoryAll

// LoadConfig loads configuration from STOREFRONT_-prefixed
// environment variables and an optional config.yaml, applying
// defaults for anything unset.
func LoadConfig() (*Config, error) {
	return app.LoadConfig()
}

// New constructs a ready Session: embedded catalog, persisted cart
// (loaded if present), promo rules, and receipt exporter.
func New(ctx context.Context, lg *zap.Logger, cfg *Config) (*Session, error) {
	return app.New(ctx, lg, cfg)
}
