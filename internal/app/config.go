package app

import (
	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the demonstration configuration, loadable from environment
// variables (CHECKOUT_ prefix), flags, or YAML config files.
type Config struct {
	BaseAmount string `default:"200.00" usage:"Order base amount" flag:"base-amount"`
	Modifiers  string `default:"percent=5,surcharge=10" usage:"Price modifier chain, innermost first (name=value,...)"`
	Payment    string `default:"card" usage:"Payment method (card, paypal, store_credit)"`
	Shipping   string `default:"express" usage:"Shipping tier (standard, express, pickup)"`
	Invoice    InvoiceConfig
}

// InvoiceConfig controls where invoices are written.
type InvoiceConfig struct {
	Dir string `default:"" usage:"Directory for compressed invoice archives (stdout when empty)" flag:"invoice-dir"`
}

// LoadConfig loads configuration from environment variables, flags, and YAML
// config files.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "CHECKOUT",
		Files:     []string{"config.yaml", "/etc/checkout/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	return &cfg, nil
}
