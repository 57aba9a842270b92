// Package ingest reads raw CSV transaction rows and decodes them into
// ledger transactions.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paystream/payproc/pkg/money"
)

// Record is one structurally valid input row. Amount is nil when the
// field was absent or empty.
type Record struct {
	Type   string
	Client uint16
	Tx     uint32
	Amount *money.Amount
}

// RowError marks a structurally malformed row. Rows failing this way
// are recoverable: the caller reports them and moves on. Any other
// reader error is an I/O failure and fatal.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Reader yields transaction records from tabular input. The header row
// is consumed on first read. Rows are flexible: the amount column may
// be missing, and all fields are trimmed of surrounding whitespace.
type Reader struct {
	csv        *csv.Reader
	line       int
	headerRead bool
}

// NewReader wraps r in a transaction record reader.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Read returns the next record. io.EOF signals a clean end of stream.
// A *RowError reports a malformed row that should be skipped; any other
// error is fatal.
func (r *Reader) Read() (Record, error) {
	if !r.headerRead {
		r.headerRead = true
		if _, err := r.readRow(); err != nil {
			return Record{}, err
		}
	}

	fields, err := r.readRow()
	if err != nil {
		return Record{}, err
	}
	return r.parseRow(fields)
}

func (r *Reader) readRow() ([]string, error) {
	fields, err := r.csv.Read()
	r.line++
	if err == io.EOF {
		return nil, io.EOF
	}
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return nil, &RowError{Line: r.line, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}

func (r *Reader) parseRow(fields []string) (Record, error) {
	if len(fields) < 3 {
		return Record{}, &RowError{Line: r.line, Err: fmt.Errorf("expected at least 3 fields, got %d", len(fields))}
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return Record{}, &RowError{Line: r.line, Err: fmt.Errorf("invalid client id %q: %w", fields[1], err)}
	}

	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Record{}, &RowError{Line: r.line, Err: fmt.Errorf("invalid transaction id %q: %w", fields[2], err)}
	}

	rec := Record{
		Type:   fields[0],
		Client: uint16(client),
		Tx:     uint32(tx),
	}

	if len(fields) > 3 && fields[3] != "" {
		amount, err := money.Parse(fields[3])
		if err != nil {
			return Record{}, &RowError{Line: r.line, Err: err}
		}
		rec.Amount = &amount
	}

	return rec, nil
}
