// Package cart implements the session shopping cart as an immutable
// value: every mutation returns a fresh mapping and leaves the
// receiver untouched, so callers replace their copy and hand the new
// one to persistence.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/product"
)

// Cart maps product IDs to requested quantities. Quantities are
// always >= 1; an entry that would drop to zero or below is removed
// instead of stored.
type Cart map[string]int

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// clone copies the mapping so mutators never alias the receiver.
func (c Cart) clone() Cart {
	out := make(Cart, len(c)+1)
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

// Add returns a copy of the cart with qty added to the entry for id,
// creating the entry when absent. A non-positive qty is a no-op.
func (c Cart) Add(id string, qty int) Cart {
	if qty <= 0 {
		return c.clone()
	}
	out := c.clone()
	out[id] += qty
	return out
}

// SetQuantity returns a copy of the cart with the entry for id set to
// exactly qty. A qty <= 0 removes the entry entirely.
func (c Cart) SetQuantity(id string, qty int) Cart {
	out := c.clone()
	if qty <= 0 {
		delete(out, id)
		return out
	}
	out[id] = qty
	return out
}

// Clear returns an empty cart.
func (c Cart) Clear() Cart {
	return New()
}

// ItemCount returns the sum of all quantities.
func (c Cart) ItemCount() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

// Total returns the sum of quantity * unit price across all entries.
// Entries whose product ID no longer resolves in the catalog
// contribute zero; the result is never negative and never an error.
func (c Cart) Total(catalog *product.Catalog) decimal.Decimal {
	sum := decimal.Zero
	for id, qty := range c {
		p, ok := catalog.Find(id)
		if !ok {
			continue
		}
		sum = sum.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return sum
}
