package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the storefront engine configuration, loadable from
// environment variables (STOREFRONT_ prefix), flags, or YAML config
// files. Every field has a working default so a host can construct
// the engine with zero configuration.
type Config struct {
	// CartPath is the location of the persistent cart slot.
	CartPath string `default:"storefront_cart.json" usage:"Path of the persisted cart file" flag:"cart-path"`
	// ReceiptDir is where placed orders' receipt files are written.
	ReceiptDir string `default:"receipts" usage:"Directory for exported receipt files" flag:"receipt-dir"`
	// ImageBaseURL is prepended to relative image paths in the
	// catalog. When empty, image paths are kept as embedded.
	ImageBaseURL string `default:"" usage:"Base URL for product images (e.g. https://cdn.example.com/)" flag:"image-base-url"`
}

// LoadConfig loads configuration from environment variables and YAML
// config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREFRONT",
		Files:     []string{"config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return &cfg, nil
}
