// Package session owns the storefront's mutable state and processes
// presentation-layer intents one at a time. Cart mutations are
// write-through: the persisted slot always mirrors the in-memory
// mapping. All domain logic stays in the pure packages this one
// drives.
package session

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/query"
	"github.com/xenking/storefront/internal/receipt"
)

// State is the session's read model: the active browse parameters,
// the cart, and the order held for confirmation (nil between
// checkouts).
type State struct {
	Params query.Params
	Cart   cart.Cart
	Order  *order.Order
}

// Session processes intents against the catalog, cart store, order
// builder, and receipt exporter. It is owned by a single logical
// actor; no locking is applied.
type Session struct {
	catalog  *product.Catalog
	store    CartStore
	builder  *order.Builder
	exporter *receipt.Exporter

	state State
}

// CartStore is the persistence slot the session writes through to.
type CartStore interface {
	Load(ctx context.Context) cart.Cart
	Save(ctx context.Context, c cart.Cart) error
}

// New creates a Session, loading any previously persisted cart.
func New(ctx context.Context, catalog *product.Catalog, store CartStore, builder *order.Builder, exporter *receipt.Exporter) *Session {
	return &Session{
		catalog:  catalog,
		store:    store,
		builder:  builder,
		exporter: exporter,
		state: State{
			Params: query.DefaultParams(),
			Cart:   store.Load(ctx),
		},
	}
}

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	return s.state
}

// Cart returns the current cart mapping.
func (s *Session) Cart() cart.Cart {
	return s.state.Cart
}

// CurrentOrder returns the order held for confirmation, or nil.
func (s *Session) CurrentOrder() *order.Order {
	return s.state.Order
}

// VisibleProducts derives the filtered, sorted product list for the
// active browse parameters.
func (s *Session) VisibleProducts() []product.Product {
	return query.Visible(s.catalog, s.state.Params)
}

// Dispatch applies one intent. On failure the session state is left
// unchanged so the user can correct their input and retry.
func (s *Session) Dispatch(ctx context.Context, intent Intent) error {
	switch in := intent.(type) {
	case SetSearch:
		s.state.Params.Search = in.Text
	case SetCategory:
		s.state.Params.Category = in.Category
	case SetSort:
		s.state.Params.Sort = query.SortMode(in.Mode)
	case AddToCart:
		return s.updateCart(ctx, s.state.Cart.Add(in.ProductID, in.Quantity))
	case SetQuantity:
		return s.updateCart(ctx, s.state.Cart.SetQuantity(in.ProductID, in.Quantity))
	case ClearCart:
		return s.updateCart(ctx, s.state.Cart.Clear())
	case SubmitOrder:
		return s.submitOrder(ctx, in)
	case DismissOrder:
		s.state.Order = nil
	default:
		return errors.Errorf("unknown intent %T", intent)
	}
	return nil
}

// updateCart replaces the cart and writes it through to the slot.
func (s *Session) updateCart(ctx context.Context, next cart.Cart) error {
	if err := s.store.Save(ctx, next); err != nil {
		return errors.Wrap(err, "save cart")
	}
	s.state.Cart = next
	return nil
}

// submitOrder sequences a successful checkout: build the order, clear
// and persist the cart, export the receipt, hold the order for
// display. A build failure leaves cart and held order untouched.
func (s *Session) submitOrder(ctx context.Context, in SubmitOrder) error {
	o, err := s.builder.Build(s.state.Cart, s.catalog, in.Customer, in.PromoCode)
	if err != nil {
		return err
	}

	if err := s.updateCart(ctx, s.state.Cart.Clear()); err != nil {
		return err
	}

	path, err := s.exporter.Export(ctx, o)
	if err != nil {
		// The order stands even when the artifact cannot be written.
		zctx.From(ctx).Warn("Receipt export failed",
			zap.String("order_id", o.ID), zap.Error(err))
	} else {
		zctx.From(ctx).Info("Order placed",
			zap.String("order_id", o.ID), zap.String("receipt", path))
	}

	s.state.Order = o
	return nil
}
