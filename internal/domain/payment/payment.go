package payment

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrUnknownMethod is returned by ForMethod for unrecognized method names.
var ErrUnknownMethod = errors.New("unknown payment method")

// Strategy settles a payment for a final amount. Implementations are
// stateless and safe to share across checkouts; they differ only in label
// and side-effect description. Adding a payment method means adding a new
// Strategy, never changing the orchestrator.
type Strategy interface {
	Method() string
	Settle(ctx context.Context, amount decimal.Decimal) error
}

// CardStrategy settles payments through the card processor.
type CardStrategy struct{}

func (CardStrategy) Method() string { return "card" }

func (s CardStrategy) Settle(ctx context.Context, amount decimal.Decimal) error {
	settle(ctx, s.Method(), amount)
	return nil
}

// PayPalStrategy settles payments through PayPal.
type PayPalStrategy struct{}

func (PayPalStrategy) Method() string { return "paypal" }

func (s PayPalStrategy) Settle(ctx context.Context, amount decimal.Decimal) error {
	settle(ctx, s.Method(), amount)
	return nil
}

// StoreCreditStrategy settles payments against the customer's store credit.
type StoreCreditStrategy struct{}

func (StoreCreditStrategy) Method() string { return "store_credit" }

func (s StoreCreditStrategy) Settle(ctx context.Context, amount decimal.Decimal) error {
	settle(ctx, s.Method(), amount)
	return nil
}

// settle records the settlement side effect with a unique reference.
func settle(ctx context.Context, method string, amount decimal.Decimal) {
	zctx.From(ctx).Info("payment settled",
		zap.String("method", method),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("reference", uuid.New().String()),
	)
}

var registry = map[string]Strategy{
	CardStrategy{}.Method():        CardStrategy{},
	PayPalStrategy{}.Method():      PayPalStrategy{},
	StoreCreditStrategy{}.Method(): StoreCreditStrategy{},
}

// ForMethod returns the strategy registered under the given method name.
func ForMethod(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMethod, "%q", name)
	}
	return s, nil
}
