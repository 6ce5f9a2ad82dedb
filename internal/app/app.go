// Package app wires the storefront engine together: configuration,
// the embedded catalog, the cart slot, the order builder with its
// promo rules, and the receipt exporter. It is the single
// construction point a host (the presentation layer) calls.
package app

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/promo"
	"github.com/xenking/storefront/internal/receipt"
	"github.com/xenking/storefront/internal/session"
	"github.com/xenking/storefront/internal/storage/cartfile"
)

// New constructs a ready Session for the given configuration. The
// logger is installed into the context so every component logs
// through it; the previously persisted cart, if any, is loaded as
// part of construction.
func New(ctx context.Context, lg *zap.Logger, cfg *Config) (*session.Session, error) {
	ctx = zctx.Base(ctx, lg)

	catalog, err := LoadCatalog(cfg.ImageBaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}

	clock := clockwork.NewRealClock()
	promos := promo.NewSetValidator(clock, promo.DefaultRules()...)
	builder := order.NewBuilder(clock, promos)

	store := cartfile.NewStore(cfg.CartPath)
	exporter := receipt.NewExporter(cfg.ReceiptDir)

	sess := session.New(ctx, catalog, store, builder, exporter)

	lg.Info("Storefront ready",
		zap.Int("products", catalog.Len()),
		zap.String("cart_path", cfg.CartPath),
		zap.Int("cart_items", sess.Cart().ItemCount()),
		zap.String("receipt_dir", cfg.ReceiptDir))

	return sess, nil
}
