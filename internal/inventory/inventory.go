package inventory

import (
	"context"
	"sync"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/checkout-core/internal/domain/pricing"
)

// Updater records the stock impact of a completed order.
type Updater interface {
	Update(ctx context.Context, order *pricing.Order) error
}

// Ledger is an in-memory Updater that counts how many times each order has
// been applied to stock. Safe for concurrent use.
type Ledger struct {
	mu      sync.Mutex
	applied map[string]int
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{applied: make(map[string]int)}
}

func (l *Ledger) Update(ctx context.Context, order *pricing.Order) error {
	l.mu.Lock()
	l.applied[order.ID()]++
	count := l.applied[order.ID()]
	l.mu.Unlock()

	zctx.From(ctx).Info("inventory updated",
		zap.String("order_id", order.ID()),
		zap.Int("times_applied", count),
	)
	return nil
}

// Applied reports how many times the given order has been applied to stock.
func (l *Ledger) Applied(orderID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applied[orderID]
}
