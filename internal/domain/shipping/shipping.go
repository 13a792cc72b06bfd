package shipping

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrUnknownTier is returned by ForTier for unrecognized tier names.
var ErrUnknownTier = errors.New("unknown shipping tier")

// Strategy quotes the post-shipping total for a pre-shipping subtotal.
// Quote must be pure and defined for every non-negative subtotal.
type Strategy interface {
	Tier() string
	Quote(subtotal decimal.Decimal) decimal.Decimal
}

// FlatRate adds a fixed fee to the subtotal.
type FlatRate struct {
	tier string
	fee  decimal.Decimal
}

// NewFlatRate creates a flat-rate shipping tier with the given fee.
func NewFlatRate(tier string, fee decimal.Decimal) FlatRate {
	return FlatRate{tier: tier, fee: fee}
}

func (r FlatRate) Tier() string { return r.tier }

func (r FlatRate) Quote(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(r.fee)
}

// Built-in shipping tiers.
var (
	Standard = NewFlatRate("standard", decimal.NewFromInt(5))
	Express  = NewFlatRate("express", decimal.NewFromInt(30))
	Pickup   = NewFlatRate("pickup", decimal.Zero)
)

var registry = map[string]Strategy{
	Standard.Tier(): Standard,
	Express.Tier():  Express,
	Pickup.Tier():   Pickup,
}

// ForTier returns the strategy registered under the given tier name.
func ForTier(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTier, "%q", name)
	}
	return s, nil
}
