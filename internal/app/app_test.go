package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/receipt"
	"github.com/xenking/storefront/internal/session"
)

func TestLoadCatalog_EmbeddedDefaults(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	assert.Equal(t, 4, catalog.Len())

	p, ok := catalog.Find("waffle-berries")
	require.True(t, ok)
	assert.Equal(t, "Waffle with Berries", p.Name)
	assert.True(t, decimal.RequireFromString("6.50").Equal(p.Price))
	assert.Equal(t, "images/waffle-berries.jpg", p.Image)
}

func TestParseCatalog_ImageBaseURL(t *testing.T) {
	data := []byte(`[
		{"id": "a", "name": "A", "description": "", "price": "1.00", "category": "X", "image": "images/a.jpg"},
		{"id": "b", "name": "B", "description": "", "price": "2.00", "category": "X", "image": "https://cdn.example.com/b.jpg"}
	]`)

	catalog, err := parseCatalog(data, "https://cdn.example.com/")
	require.NoError(t, err)

	a, ok := catalog.Find("a")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/images/a.jpg", a.Image)

	// Absolute URLs are left alone.
	b, ok := catalog.Find("b")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/b.jpg", b.Image)
}

func TestParseCatalog_Invalid(t *testing.T) {
	_, err := parseCatalog([]byte(`{"not": "an array"}`), "")
	require.Error(t, err)

	_, err = parseCatalog([]byte(`[]`), "")
	require.Error(t, err)

	_, err = parseCatalog([]byte(`[
		{"id": "a", "name": "A", "price": "1.00", "category": "X", "image": ""},
		{"id": "a", "name": "Again", "price": "2.00", "category": "X", "image": ""}
	]`), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}

func TestNew_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		CartPath:   filepath.Join(dir, "cart.json"),
		ReceiptDir: filepath.Join(dir, "receipts"),
	}

	ctx := context.Background()
	sess, err := New(ctx, zap.NewNop(), cfg)
	require.NoError(t, err)

	require.NoError(t, sess.Dispatch(ctx, session.AddToCart{ProductID: "tiramisu", Quantity: 2}))
	require.NoError(t, sess.Dispatch(ctx, session.SubmitOrder{
		Customer: order.CustomerInfo{Name: "Jo", Email: "j@x.com", Address: "1 St"},
	}))

	o := sess.CurrentOrder()
	require.NotNil(t, o)
	assert.True(t, decimal.RequireFromString("11.00").Equal(o.Total))

	_, err = os.Stat(filepath.Join(cfg.ReceiptDir, receipt.Filename(o)))
	require.NoError(t, err)

	// The slot was written through and cleared by checkout.
	data, err := os.ReadFile(cfg.CartPath)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
