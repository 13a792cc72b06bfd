package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xenking/checkout-core/internal/checkout"
	"github.com/xenking/checkout-core/internal/domain/payment"
	"github.com/xenking/checkout-core/internal/domain/pricing"
	"github.com/xenking/checkout-core/internal/domain/shipping"
	"github.com/xenking/checkout-core/internal/inventory"
	"github.com/xenking/checkout-core/internal/invoice"
)

// Run creates all dependencies and executes one demonstration checkout.
// It is the single wiring point for the application: the order and its
// modifier chain are built here per checkout, while strategies and
// collaborators are long-lived.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	base, err := decimal.NewFromString(cfg.BaseAmount)
	if err != nil {
		return errors.Wrap(err, "parse base amount")
	}

	ord, err := pricing.NewOrder(uuid.New().String(), base)
	if err != nil {
		return errors.Wrap(err, "create order")
	}

	priced, err := BuildChain(ord, cfg.Modifiers)
	if err != nil {
		return errors.Wrap(err, "build modifier chain")
	}

	pay, err := payment.ForMethod(cfg.Payment)
	if err != nil {
		return errors.Wrap(err, "select payment strategy")
	}
	ship, err := shipping.ForTier(cfg.Shipping)
	if err != nil {
		return errors.Wrap(err, "select shipping strategy")
	}

	var opts []invoice.Option
	if cfg.Invoice.Dir != "" {
		opts = append(opts, invoice.WithArchiveDir(cfg.Invoice.Dir))
	}
	invoices := invoice.NewWriter(os.Stdout, opts...)
	stock := inventory.NewLedger()

	orch := checkout.NewOrchestrator(stock, invoices)

	lg.Info("Starting checkout",
		zap.String("order_id", ord.ID()),
		zap.String("base_amount", base.StringFixed(2)),
		zap.String("modifiers", cfg.Modifiers),
	)

	ctx = zctx.Base(ctx, lg)
	result, err := orch.CompleteCheckout(ctx, priced, pay, ship)
	if err != nil {
		return errors.Wrap(err, "complete checkout")
	}

	lg.Info("Checkout result",
		zap.String("order_id", result.OrderID),
		zap.String("subtotal", result.Subtotal.StringFixed(2)),
		zap.String("total", result.Total.StringFixed(2)),
		zap.String("payment_method", result.Method),
		zap.String("shipping_tier", result.Tier),
	)
	return nil
}
