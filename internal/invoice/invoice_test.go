package invoice

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/checkout-core/internal/domain/pricing"
)

func newTestWriter(out io.Writer, opts ...Option) *Writer {
	w := NewWriter(out, opts...)
	w.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	w.newID = func() string { return "inv-1" }
	return w
}

func newTestOrder(t *testing.T) *pricing.Order {
	t.Helper()
	ord, err := pricing.NewOrder("ord-1", decimal.RequireFromString("200.00"))
	require.NoError(t, err)
	return ord
}

func TestWriter_Generate(t *testing.T) {
	var buf bytes.Buffer
	w := newTestWriter(&buf)

	require.NoError(t, w.Generate(context.Background(), newTestOrder(t)))

	assert.JSONEq(t, `{
		"invoice_id": "inv-1",
		"order_id": "ord-1",
		"base_amount": "200.00",
		"issued_at": "2026-08-01T12:00:00Z"
	}`, buf.String())
}

func TestWriter_GenerateArchive(t *testing.T) {
	dir := t.TempDir()
	w := newTestWriter(io.Discard, WithArchiveDir(dir))

	require.NoError(t, w.Generate(context.Background(), newTestOrder(t)))

	f, err := os.Open(filepath.Join(dir, "inv-1.json.gz"))
	require.NoError(t, err)
	defer f.Close()

	gz, err := pgzip.NewReader(f)
	require.NoError(t, err)
	doc, err := io.ReadAll(gz)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"invoice_id": "inv-1",
		"order_id": "ord-1",
		"base_amount": "200.00",
		"issued_at": "2026-08-01T12:00:00Z"
	}`, string(doc))
}

func TestWriter_GenerateArchiveBadDir(t *testing.T) {
	w := newTestWriter(io.Discard, WithArchiveDir(filepath.Join(t.TempDir(), "missing")))

	err := w.Generate(context.Background(), newTestOrder(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create invoice file")
}
