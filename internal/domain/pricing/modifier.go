package pricing

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ErrNoTerminalOrder is returned by Resolve when a chain does not end at
// an Order.
var ErrNoTerminalOrder = errors.New("modifier chain does not terminate at an order")

// Modifier wraps exactly one inner Priceable and adjusts its price by a
// single rule. Modifiers form a strict linear chain ending at one Order;
// the outermost modifier's adjustment is the last operation applied.
// Nesting order is caller-controlled and changes the result whenever the
// adjustments do not commute.
type Modifier interface {
	Priceable
	Inner() Priceable
}

// Resolve walks a chain to the Order it terminates at.
func Resolve(p Priceable) (*Order, error) {
	for p != nil {
		switch v := p.(type) {
		case *Order:
			return v, nil
		case Modifier:
			p = v.Inner()
		default:
			return nil, ErrNoTerminalOrder
		}
	}
	return nil, ErrNoTerminalOrder
}

// PercentDiscount reduces the inner price by a percentage.
type PercentDiscount struct {
	inner Priceable
	rate  decimal.Decimal
}

// NewPercentDiscount wraps inner with a rate% discount.
func NewPercentDiscount(inner Priceable, rate decimal.Decimal) *PercentDiscount {
	return &PercentDiscount{inner: inner, rate: rate}
}

func (d *PercentDiscount) Inner() Priceable { return d.inner }

func (d *PercentDiscount) Price() decimal.Decimal {
	return d.inner.Price().Mul(hundred.Sub(d.rate)).Div(hundred)
}

// FixedDiscount subtracts a fixed amount, capped at the inner price so the
// result never goes negative.
type FixedDiscount struct {
	inner  Priceable
	amount decimal.Decimal
}

// NewFixedDiscount wraps inner with a fixed monetary discount.
func NewFixedDiscount(inner Priceable, amount decimal.Decimal) *FixedDiscount {
	return &FixedDiscount{inner: inner, amount: amount}
}

func (d *FixedDiscount) Inner() Priceable { return d.inner }

func (d *FixedDiscount) Price() decimal.Decimal {
	price := d.inner.Price()
	return price.Sub(decimal.Min(d.amount, price))
}

// FlatSurcharge adds a constant to the inner price.
type FlatSurcharge struct {
	inner  Priceable
	amount decimal.Decimal
}

// NewFlatSurcharge wraps inner with a flat surcharge.
func NewFlatSurcharge(inner Priceable, amount decimal.Decimal) *FlatSurcharge {
	return &FlatSurcharge{inner: inner, amount: amount}
}

func (s *FlatSurcharge) Inner() Priceable { return s.inner }

func (s *FlatSurcharge) Price() decimal.Decimal {
	return s.inner.Price().Add(s.amount)
}

// TaxRate increases the inner price by a percentage.
type TaxRate struct {
	inner Priceable
	rate  decimal.Decimal
}

// NewTaxRate wraps inner with a rate% tax.
func NewTaxRate(inner Priceable, rate decimal.Decimal) *TaxRate {
	return &TaxRate{inner: inner, rate: rate}
}

func (t *TaxRate) Inner() Priceable { return t.inner }

func (t *TaxRate) Price() decimal.Decimal {
	return t.inner.Price().Mul(hundred.Add(t.rate)).Div(hundred)
}
