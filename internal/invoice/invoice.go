package invoice

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/google/uuid"
	pgzip "github.com/klauspost/pgzip"
	"go.uber.org/zap"

	"github.com/xenking/checkout-core/internal/domain/pricing"
)

// Generator issues an invoice document for a completed order.
type Generator interface {
	Generate(ctx context.Context, order *pricing.Order) error
}

// Writer encodes invoices as JSON and writes them to a stream or, when an
// archive directory is configured, to gzip-compressed files named
// <invoice-id>.json.gz.
type Writer struct {
	out   io.Writer
	dir   string
	now   func() time.Time
	newID func() string
}

// Option configures a Writer.
type Option func(*Writer)

// WithArchiveDir writes each invoice to a compressed file under dir instead
// of the stream.
func WithArchiveDir(dir string) Option {
	return func(w *Writer) { w.dir = dir }
}

// NewWriter creates a Writer emitting invoices to out.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:   out,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Writer) Generate(ctx context.Context, order *pricing.Order) error {
	id := w.newID()

	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("invoice_id")
	e.Str(id)
	e.FieldStart("order_id")
	e.Str(order.ID())
	e.FieldStart("base_amount")
	e.Str(order.BaseAmount().StringFixed(2))
	e.FieldStart("issued_at")
	e.Str(w.now().UTC().Format(time.RFC3339))
	e.ObjEnd()

	if w.dir != "" {
		if err := w.archive(id, e.Bytes()); err != nil {
			return err
		}
	} else {
		if _, err := w.out.Write(append(e.Bytes(), '\n')); err != nil {
			return errors.Wrap(err, "write invoice")
		}
	}

	zctx.From(ctx).Info("invoice generated",
		zap.String("invoice_id", id),
		zap.String("order_id", order.ID()),
	)
	return nil
}

// archive writes the encoded invoice to <dir>/<id>.json.gz.
func (w *Writer) archive(id string, doc []byte) error {
	path := filepath.Join(w.dir, id+".json.gz")
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create invoice file")
	}

	gz := pgzip.NewWriter(f)
	if _, err := gz.Write(doc); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "write invoice")
	}
	if err := gz.Close(); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "flush invoice")
	}
	return errors.Wrap(f.Close(), "close invoice file")
}
