// Package ledger implements the per-client account state machine and the
// repository that routes transactions to accounts.
//
// Each account tracks available and held funds, the log of monetary
// transactions it has accepted, and the set of transactions currently
// under dispute. available + held is the account's total; held never
// goes negative, available may (disputing a deposit that has already
// been spent).
package ledger

import (
	"fmt"

	"github.com/paystream/payproc/pkg/money"
)

// Account is the ledger for a single client. Not safe for concurrent
// use; the repository applies transactions strictly in input order.
type Account struct {
	id        uint16
	available money.Amount
	held      money.Amount
	locked    bool

	// history records accepted deposits and withdrawals by id. It grows
	// for the lifetime of the process; a real system would page this to
	// durable storage.
	history  map[uint32]Transaction
	disputed map[uint32]struct{}
}

// NewAccount creates an empty, unlocked account for the given client.
func NewAccount(id uint16) *Account {
	return &Account{
		id:       id,
		history:  make(map[uint32]Transaction),
		disputed: make(map[uint32]struct{}),
	}
}

// ID returns the client id.
func (a *Account) ID() uint16 { return a.id }

// Available returns the spendable balance.
func (a *Account) Available() money.Amount { return a.available }

// Held returns the balance frozen under dispute.
func (a *Account) Held() money.Amount { return a.held }

// Total returns available + held. It is computed, never stored.
func (a *Account) Total() money.Amount { return a.available.Add(a.held) }

// Locked reports whether a chargeback has locked the account.
func (a *Account) Locked() bool { return a.locked }

// Apply runs one transaction against the account. On error the account
// is unchanged. Monetary transactions are rejected once the account is
// locked; dispute-protocol transactions still run.
func (a *Account) Apply(txn Transaction) error {
	switch txn.Kind {
	case KindDeposit:
		return a.deposit(txn)
	case KindWithdrawal:
		return a.withdraw(txn)
	case KindDispute:
		return a.dispute(txn)
	case KindResolve:
		return a.resolve(txn)
	case KindChargeback:
		return a.chargeback(txn)
	default:
		return fmt.Errorf("unhandled transaction kind %d", txn.Kind)
	}
}

func (a *Account) deposit(txn Transaction) error {
	if a.locked {
		return fmt.Errorf("client %d: %w", a.id, ErrAccountLocked)
	}
	if _, ok := a.history[txn.Tx]; ok {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrDuplicateTransaction)
	}

	a.available = a.available.Add(txn.Amount)
	a.history[txn.Tx] = txn
	return nil
}

func (a *Account) withdraw(txn Transaction) error {
	if a.locked {
		return fmt.Errorf("client %d: %w", a.id, ErrAccountLocked)
	}
	if _, ok := a.history[txn.Tx]; ok {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrDuplicateTransaction)
	}
	if a.available.LessThan(txn.Amount) {
		return fmt.Errorf("client %d: %w", a.id, ErrInsufficientFunds)
	}

	a.available = a.available.Sub(txn.Amount)
	a.history[txn.Tx] = txn
	return nil
}

func (a *Account) dispute(txn Transaction) error {
	ref, ok := a.history[txn.Tx]
	if !ok {
		return fmt.Errorf("tx %d, client %d: %w", txn.Tx, a.id, ErrTransactionNotFound)
	}
	if ref.Kind != KindDeposit {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrWrongReferenceKind)
	}
	if _, ok := a.disputed[txn.Tx]; ok {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrAlreadyDisputed)
	}

	// Copy the amount out of history before touching balances.
	amount := ref.Amount
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
	a.disputed[txn.Tx] = struct{}{}
	return nil
}

func (a *Account) resolve(txn Transaction) error {
	ref, ok := a.history[txn.Tx]
	if !ok {
		return fmt.Errorf("tx %d, client %d: %w", txn.Tx, a.id, ErrTransactionNotFound)
	}
	if _, ok := a.disputed[txn.Tx]; !ok {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrNotDisputed)
	}
	if ref.Kind != KindDeposit {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrWrongReferenceKind)
	}

	amount := ref.Amount
	a.available = a.available.Add(amount)
	a.held = a.held.Sub(amount)
	delete(a.disputed, txn.Tx)
	return nil
}

func (a *Account) chargeback(txn Transaction) error {
	ref, ok := a.history[txn.Tx]
	if !ok {
		return fmt.Errorf("tx %d, client %d: %w", txn.Tx, a.id, ErrTransactionNotFound)
	}
	if _, ok := a.disputed[txn.Tx]; !ok {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrNotDisputed)
	}
	if ref.Kind != KindDeposit {
		return fmt.Errorf("tx %d: %w", txn.Tx, ErrWrongReferenceKind)
	}

	// The held funds are withdrawn by the chargeback; available is not
	// credited back. Lock is terminal.
	a.held = a.held.Sub(ref.Amount)
	delete(a.disputed, txn.Tx)
	a.locked = true
	return nil
}
