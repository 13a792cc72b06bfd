package checkout

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/checkout-core/internal/domain/payment"
	"github.com/xenking/checkout-core/internal/domain/pricing"
	"github.com/xenking/checkout-core/internal/domain/shipping"
	"github.com/xenking/checkout-core/internal/inventory"
	"github.com/xenking/checkout-core/internal/invoice"
)

// Orchestrator sequences pricing, shipping, settlement, and the post-payment
// collaborators behind a single entry point. Collaborators are shared, not
// owned: they outlive any single checkout.
type Orchestrator struct {
	inventory inventory.Updater
	invoices  invoice.Generator
}

// NewOrchestrator creates an Orchestrator with the given collaborators.
func NewOrchestrator(inv inventory.Updater, gen invoice.Generator) *Orchestrator {
	return &Orchestrator{
		inventory: inv,
		invoices:  gen,
	}
}

// Result summarizes a completed checkout for display. Nothing in the core
// branches on it.
type Result struct {
	OrderID  string
	Subtotal decimal.Decimal
	Total    decimal.Decimal
	Method   string
	Tier     string
}

// CompleteCheckout runs the full checkout sequence: resolve the modifier
// chain, add shipping, settle payment for the shipping-adjusted total, then
// update inventory and issue the invoice. The order of steps is the
// contract: settlement always happens against the shipping-adjusted total,
// and the collaborators run only after settlement succeeds. A failing step
// aborts the rest; there is no compensation.
func (o *Orchestrator) CompleteCheckout(
	ctx context.Context,
	priced pricing.Priceable,
	pay payment.Strategy,
	ship shipping.Strategy,
) (*Result, error) {
	ord, err := pricing.Resolve(priced)
	if err != nil {
		return nil, errors.Wrap(err, "resolve order")
	}

	subtotal := priced.Price()
	total := ship.Quote(subtotal)

	if err := pay.Settle(ctx, total); err != nil {
		return nil, errors.Wrap(err, "settle payment")
	}
	if err := o.inventory.Update(ctx, ord); err != nil {
		return nil, errors.Wrap(err, "update inventory")
	}
	if err := o.invoices.Generate(ctx, ord); err != nil {
		return nil, errors.Wrap(err, "generate invoice")
	}

	zctx.From(ctx).Info("checkout completed",
		zap.String("order_id", ord.ID()),
		zap.String("method", pay.Method()),
		zap.String("tier", ship.Tier()),
		zap.String("total", total.StringFixed(2)),
	)

	return &Result{
		OrderID:  ord.ID(),
		Subtotal: subtotal.Round(2),
		Total:    total.Round(2),
		Method:   pay.Method(),
		Tier:     ship.Tier(),
	}, nil
}
