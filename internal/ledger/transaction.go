package ledger

import "github.com/paystream/payproc/pkg/money"

// Kind discriminates the five transaction variants.
type Kind int

const (
	// KindDeposit credits a client's available funds.
	KindDeposit Kind = iota
	// KindWithdrawal debits a client's available funds.
	KindWithdrawal
	// KindDispute opens a claim against a prior deposit.
	KindDispute
	// KindResolve withdraws a dispute, releasing held funds.
	KindResolve
	// KindChargeback finalizes a dispute and locks the account.
	KindChargeback
)

// String returns the wire-format literal for the kind.
func (k Kind) String() string {
	switch k {
	case KindDeposit:
		return "deposit"
	case KindWithdrawal:
		return "withdrawal"
	case KindDispute:
		return "dispute"
	case KindResolve:
		return "resolve"
	case KindChargeback:
		return "chargeback"
	default:
		return "unknown"
	}
}

// Monetary reports whether the kind carries its own amount. The three
// referential kinds carry only a reference to a prior transaction id.
func (k Kind) Monetary() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is one money movement or dispute-protocol step. For
// monetary kinds Tx identifies the new transaction; for referential
// kinds it references a prior deposit or withdrawal on the same client,
// and Amount is meaningless.
type Transaction struct {
	Kind   Kind
	Client uint16
	Tx     uint32
	Amount money.Amount
}

// NewDeposit builds a deposit transaction.
func NewDeposit(client uint16, tx uint32, amount money.Amount) Transaction {
	return Transaction{Kind: KindDeposit, Client: client, Tx: tx, Amount: amount}
}

// NewWithdrawal builds a withdrawal transaction.
func NewWithdrawal(client uint16, tx uint32, amount money.Amount) Transaction {
	return Transaction{Kind: KindWithdrawal, Client: client, Tx: tx, Amount: amount}
}

// NewDispute builds a dispute referencing a prior transaction.
func NewDispute(client uint16, tx uint32) Transaction {
	return Transaction{Kind: KindDispute, Client: client, Tx: tx}
}

// NewResolve builds a resolve referencing a disputed transaction.
func NewResolve(client uint16, tx uint32) Transaction {
	return Transaction{Kind: KindResolve, Client: client, Tx: tx}
}

// NewChargeback builds a chargeback referencing a disputed transaction.
func NewChargeback(client uint16, tx uint32) Transaction {
	return Transaction{Kind: KindChargeback, Client: client, Tx: tx}
}
