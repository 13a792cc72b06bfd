package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when an order is constructed with a negative
// base amount.
var ErrNegativeAmount = errors.New("base amount must be non-negative")

// Priceable is anything that can report its current price. Implementations
// must be pure: no observable side effects, same result on repeated calls
// given an unchanged chain.
type Priceable interface {
	Price() decimal.Decimal
}

// Order is the leaf of a modifier chain: the immutable base amount every
// adjustment starts from.
type Order struct {
	id         string
	baseAmount decimal.Decimal
}

// NewOrder creates an Order with the given identifier and base amount.
func NewOrder(id string, baseAmount decimal.Decimal) (*Order, error) {
	if baseAmount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	return &Order{id: id, baseAmount: baseAmount}, nil
}

// ID returns the order identifier.
func (o *Order) ID() string { return o.id }

// BaseAmount returns the unmodified order amount.
func (o *Order) BaseAmount() decimal.Decimal { return o.baseAmount }

// Price returns the base amount unchanged.
func (o *Order) Price() decimal.Decimal { return o.baseAmount }
