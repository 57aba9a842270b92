package ledger

import "errors"

// Sentinel errors returned by Account.Apply. They are wrapped with the
// offending client and transaction ids, so match with errors.Is.
var (
	// ErrAccountLocked rejects monetary transactions after a chargeback.
	ErrAccountLocked = errors.New("account is locked")

	// ErrDuplicateTransaction rejects a transaction id already recorded.
	ErrDuplicateTransaction = errors.New("transaction id already exists")

	// ErrInsufficientFunds rejects a withdrawal exceeding available funds.
	ErrInsufficientFunds = errors.New("withdrawal would overdraw available funds")

	// ErrTransactionNotFound rejects a reference to an unknown transaction.
	ErrTransactionNotFound = errors.New("referenced transaction does not exist")

	// ErrWrongReferenceKind rejects a dispute-protocol reference to a
	// transaction that is not a deposit.
	ErrWrongReferenceKind = errors.New("referenced transaction is not a deposit")

	// ErrAlreadyDisputed rejects a second dispute on the same transaction.
	ErrAlreadyDisputed = errors.New("transaction is already disputed")

	// ErrNotDisputed rejects a resolve or chargeback on an undisputed
	// transaction.
	ErrNotDisputed = errors.New("transaction is not disputed")
)
