package storefront_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xenking/storefront"
)

// Exercises the full public surface the way a host would drive it.
func TestStorefront(t *testing.T) {
	dir := t.TempDir()
	cfg := &storefront.Config{
		CartPath:   filepath.Join(dir, "cart.json"),
		ReceiptDir: filepath.Join(dir, "receipts"),
	}

	ctx := context.Background()
	sess, err := storefront.New(ctx, zap.NewNop(), cfg)
	require.NoError(t, err)

	require.NoError(t, sess.Dispatch(ctx, storefront.SetSort{Mode: storefront.SortPriceAsc}))
	visible := sess.VisibleProducts()
	require.NotEmpty(t, visible)
	cheapest := visible[0]

	require.NoError(t, sess.Dispatch(ctx, storefront.AddToCart{ProductID: cheapest.ID, Quantity: 2}))
	assert.Equal(t, 2, sess.Cart().ItemCount())

	require.NoError(t, sess.Dispatch(ctx, storefront.SubmitOrder{
		Customer: storefront.CustomerInfo{Name: "Jo", Email: "j@x.com", Address: "1 St"},
	}))

	o := sess.CurrentOrder()
	require.NotNil(t, o)
	assert.Len(t, o.LineItems, 1)
	assert.Equal(t, 0, sess.Cart().ItemCount())

	require.NoError(t, sess.Dispatch(ctx, storefront.DismissOrder{}))
	assert.Nil(t, sess.CurrentOrder())
}
