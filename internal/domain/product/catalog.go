package product

import (
	"github.com/go-faster/errors"
)

// Catalog is the immutable, ordered list of purchasable products.
// It is supplied once at startup and never mutated afterwards; every
// accessor returns copies so callers cannot reach the backing slice.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// NewCatalog validates the product list and builds the catalog.
// The list must be non-empty and product IDs must be unique.
func NewCatalog(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog must not be empty")
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, errors.Errorf("product at index %d has empty id", i)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, errors.Errorf("duplicate product id %q", p.ID)
		}
		byID[p.ID] = i
	}

	return &Catalog{
		products: append([]Product(nil), products...),
		byID:     byID,
	}, nil
}

// List returns all products in catalog order.
func (c *Catalog) List() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Find looks up a product by ID. The ok result makes the
// lookup-with-default branch explicit for callers that tolerate
// missing products.
func (c *Catalog) Find(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// GetByID returns a single product by ID, or ErrNotFound.
func (c *Catalog) GetByID(id string) (*Product, error) {
	p, ok := c.Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Categories returns the distinct product categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.products))
	out := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
