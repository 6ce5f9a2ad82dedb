package app

import (
	"encoding/json"
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/assets"
	"github.com/xenking/storefront/internal/domain/product"
)

type productJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// LoadCatalog parses the embedded product data into the immutable
// catalog, prefixing relative image paths with imageBaseURL when one
// is configured.
func LoadCatalog(imageBaseURL string) (*product.Catalog, error) {
	return parseCatalog(assets.Products, imageBaseURL)
}

func parseCatalog(data []byte, imageBaseURL string) (*product.Catalog, error) {
	var raw []productJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parse products JSON")
	}

	products := make([]product.Product, len(raw))
	for i, p := range raw {
		image := p.Image
		if imageBaseURL != "" && !strings.Contains(image, "://") {
			image = strings.TrimSuffix(imageBaseURL, "/") + "/" + image
		}
		products[i] = product.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Category:    p.Category,
			Image:       image,
		}
	}

	catalog, err := product.NewCatalog(products)
	if err != nil {
		return nil, errors.Wrap(err, "build catalog")
	}
	return catalog, nil
}
