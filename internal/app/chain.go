package app

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/checkout-core/internal/domain/pricing"
)

// BuildChain wraps ord in the modifiers described by spec, applied
// innermost-first in the order listed. Syntax: comma-separated name=value
// pairs, e.g. "percent=5,surcharge=10". An empty spec returns the order
// itself.
func BuildChain(ord *pricing.Order, spec string) (pricing.Priceable, error) {
	var priced pricing.Priceable = ord
	if strings.TrimSpace(spec) == "" {
		return priced, nil
	}

	for _, part := range strings.Split(spec, ",") {
		name, raw, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, errors.Errorf("invalid modifier %q: want name=value", part)
		}
		name = strings.TrimSpace(name)

		value, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "modifier %q value", name)
		}

		switch name {
		case "percent":
			priced = pricing.NewPercentDiscount(priced, value)
		case "fixed":
			priced = pricing.NewFixedDiscount(priced, value)
		case "surcharge":
			priced = pricing.NewFlatSurcharge(priced, value)
		case "tax":
			priced = pricing.NewTaxRate(priced, value)
		default:
			return nil, errors.Errorf("unknown modifier %q", name)
		}
	}

	return priced, nil
}
