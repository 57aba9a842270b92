package ingest

import (
	"errors"
	"fmt"

	"github.com/paystream/payproc/internal/ledger"
)

// Decoding errors. Per-record and recoverable; match with errors.Is.
var (
	// ErrUnknownTransactionType rejects a type literal outside the five
	// supported kinds. Matching is case-sensitive.
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrAmountMissing rejects a deposit or withdrawal without an amount.
	ErrAmountMissing = errors.New("transaction type needs an amount")
)

// Decode converts a structurally valid record into a typed transaction.
// An amount on the three referential types is tolerated and ignored.
// Zero and negative amounts pass through; the ledger's balance rules
// decide their fate.
func Decode(rec Record) (ledger.Transaction, error) {
	switch rec.Type {
	case "deposit":
		if rec.Amount == nil {
			return ledger.Transaction{}, fmt.Errorf("%q: %w", rec.Type, ErrAmountMissing)
		}
		return ledger.NewDeposit(rec.Client, rec.Tx, *rec.Amount), nil
	case "withdrawal":
		if rec.Amount == nil {
			return ledger.Transaction{}, fmt.Errorf("%q: %w", rec.Type, ErrAmountMissing)
		}
		return ledger.NewWithdrawal(rec.Client, rec.Tx, *rec.Amount), nil
	case "dispute":
		return ledger.NewDispute(rec.Client, rec.Tx), nil
	case "resolve":
		return ledger.NewResolve(rec.Client, rec.Tx), nil
	case "chargeback":
		return ledger.NewChargeback(rec.Client, rec.Tx), nil
	default:
		return ledger.Transaction{}, fmt.Errorf("%q: %w", rec.Type, ErrUnknownTransactionType)
	}
}
