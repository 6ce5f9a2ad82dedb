// Package receipt serializes placed orders into downloadable JSON
// artifacts.
package receipt

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/order"
)

// Marshal encodes the order as pretty-printed JSON with stable field
// names. Monetary amounts are emitted as exact decimal numbers, not
// floats. Pure: no state, no side effects.
func Marshal(o *order.Order) []byte {
	var e jx.Encoder
	e.SetIdent(2)

	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(o.ID) })
		e.Field("createdAt", func(e *jx.Encoder) { e.Str(o.CreatedAt.Format(time.RFC3339)) })
		e.Field("customer", func(e *jx.Encoder) {
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(o.Customer.Name) })
				e.Field("email", func(e *jx.Encoder) { e.Str(o.Customer.Email) })
				e.Field("address", func(e *jx.Encoder) { e.Str(o.Customer.Address) })
			})
		})
		e.Field("lineItems", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, item := range o.LineItems {
					e.Obj(func(e *jx.Encoder) {
						e.Field("productId", func(e *jx.Encoder) { e.Str(item.ProductID) })
						e.Field("name", func(e *jx.Encoder) { e.Str(item.Name) })
						e.Field("quantity", func(e *jx.Encoder) { e.Int(item.Quantity) })
						e.Field("unitPrice", func(e *jx.Encoder) { encodeAmount(e, item.UnitPrice) })
					})
				}
			})
		})
		e.Field("subtotal", func(e *jx.Encoder) { encodeAmount(e, o.Subtotal) })
		e.Field("discount", func(e *jx.Encoder) { encodeAmount(e, o.Discount) })
		e.Field("total", func(e *jx.Encoder) { encodeAmount(e, o.Total) })
		e.Field("promoCode", func(e *jx.Encoder) { e.Str(o.PromoCode) })
		e.Field("note", func(e *jx.Encoder) { e.Str(o.Note) })
	})

	return e.Bytes()
}

// encodeAmount writes a decimal as a raw JSON number, preserving
// exact cents.
func encodeAmount(e *jx.Encoder, d decimal.Decimal) {
	e.Num(jx.Num(d.String()))
}

// Filename returns the download name for the order's receipt.
func Filename(o *order.Order) string {
	return o.ID + "_receipt.json"
}

// Exporter writes receipt artifacts into a directory.
type Exporter struct {
	dir string
}

// NewExporter returns an Exporter that writes into dir.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Export writes the serialized order to <dir>/<orderID>_receipt.json
// and returns the written path.
func (x *Exporter) Export(ctx context.Context, o *order.Order) (string, error) {
	if err := os.MkdirAll(x.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create receipt directory")
	}

	path := filepath.Join(x.dir, Filename(o))
	if err := os.WriteFile(path, Marshal(o), 0o644); err != nil {
		return "", errors.Wrapf(err, "write receipt %s", path)
	}

	zctx.From(ctx).Info("Receipt exported",
		zap.String("order_id", o.ID), zap.String("path", path))
	return path, nil
}
