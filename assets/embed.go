// Package assets provides the embedded default catalog data.
package assets

import _ "embed"

// Products contains the default catalog as a JSON array of products.
//
//go:embed products.json
var Products []byte
