// Package engine drives the batch run: pull rows from the input, decode
// and apply them in arrival order, then emit the balance snapshot.
package engine

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/paystream/payproc/internal/ingest"
	"github.com/paystream/payproc/internal/ledger"
	"github.com/paystream/payproc/internal/report"
)

// Processor owns one run's account state.
type Processor struct {
	repo *ledger.Repository
	log  *zap.Logger
}

// New creates a processor with an empty repository.
func New(log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		repo: ledger.NewRepository(),
		log:  log,
	}
}

// Run processes the whole input stream and writes the snapshot to out.
// Per-record failures (malformed rows, decode errors, ledger rejections)
// are logged and skipped; read I/O and snapshot write failures abort.
func (p *Processor) Run(in io.Reader, out io.Writer) error {
	rd := ingest.NewReader(in)

	for {
		rec, err := rd.Read()
		if err == io.EOF {
			break
		}
		var rowErr *ingest.RowError
		if errors.As(err, &rowErr) {
			p.log.Error("skipping malformed row",
				zap.Int("line", rowErr.Line),
				zap.Error(rowErr.Err))
			continue
		}
		if err != nil {
			return fmt.Errorf("processing input: %w", err)
		}

		txn, err := ingest.Decode(rec)
		if err != nil {
			p.log.Error("rejecting record",
				zap.Uint16("client", rec.Client),
				zap.Uint32("tx", rec.Tx),
				zap.Error(err))
			continue
		}

		if err := p.repo.Apply(txn); err != nil {
			p.log.Error("rejecting transaction",
				zap.Stringer("kind", txn.Kind),
				zap.Uint16("client", txn.Client),
				zap.Uint32("tx", txn.Tx),
				zap.Error(err))
			continue
		}
	}

	return report.Write(out, p.repo.Snapshot())
}
