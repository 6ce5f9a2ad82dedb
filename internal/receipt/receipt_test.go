package receipt

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/order"
)

func testOrder() *order.Order {
	return &order.Order{
		ID:        "ORD-42",
		CreatedAt: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Customer:  order.CustomerInfo{Name: "Jo", Email: "j@x.com", Address: "1 St"},
		LineItems: []order.LineItem{
			{ProductID: "A", Name: "Alpha Waffle", Quantity: 2, UnitPrice: decimal.RequireFromString("4.50")},
		},
		Subtotal: decimal.RequireFromString("9.00"),
		Discount: decimal.Zero,
		Total:    decimal.RequireFromString("9.00"),
		Note:     order.Note,
	}
}

func TestMarshal(t *testing.T) {
	data := Marshal(testOrder())

	var got struct {
		ID        string `json:"id"`
		CreatedAt string `json:"createdAt"`
		Customer  struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Address string `json:"address"`
		} `json:"customer"`
		LineItems []struct {
			ProductID string  `json:"productId"`
			Name      string  `json:"name"`
			Quantity  int     `json:"quantity"`
			UnitPrice float64 `json:"unitPrice"`
		} `json:"lineItems"`
		Subtotal  float64 `json:"subtotal"`
		Discount  float64 `json:"discount"`
		Total     float64 `json:"total"`
		PromoCode string  `json:"promoCode"`
		Note      string  `json:"note"`
	}
	require.NoError(t, json.Unmarshal(data, &got), "receipt must be valid JSON: %s", data)

	assert.Equal(t, "ORD-42", got.ID)
	assert.Equal(t, "2025-06-15T12:00:00Z", got.CreatedAt)
	assert.Equal(t, "Jo", got.Customer.Name)
	assert.Equal(t, "j@x.com", got.Customer.Email)
	assert.Equal(t, "1 St", got.Customer.Address)

	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "A", got.LineItems[0].ProductID)
	assert.Equal(t, "Alpha Waffle", got.LineItems[0].Name)
	assert.Equal(t, 2, got.LineItems[0].Quantity)
	assert.InDelta(t, 4.50, got.LineItems[0].UnitPrice, 0)

	assert.InDelta(t, 9.00, got.Subtotal, 0)
	assert.InDelta(t, 0, got.Discount, 0)
	assert.InDelta(t, 9.00, got.Total, 0)
	assert.Equal(t, order.Note, got.Note)
}

func TestMarshal_IsPure(t *testing.T) {
	o := testOrder()
	assert.Equal(t, Marshal(o), Marshal(o))
}

func TestMarshal_ExactDecimalRendering(t *testing.T) {
	data := Marshal(testOrder())
	// Amounts are emitted with their stored scale, not float-mangled.
	assert.Contains(t, string(data), "4.50")
	assert.Contains(t, string(data), "9.00")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ORD-42_receipt.json", Filename(testOrder()))
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	x := NewExporter(filepath.Join(dir, "receipts"))

	o := testOrder()
	path, err := x.Export(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "receipts", "ORD-42_receipt.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Marshal(o), data)
}
