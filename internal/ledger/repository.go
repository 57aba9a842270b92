package ledger

// Repository owns every account seen in the input, keyed by client id.
// It is the sole mutator of its accounts.
type Repository struct {
	accounts map[uint16]*Account
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{accounts: make(map[uint16]*Account)}
}

// Apply routes the transaction to its client's account, creating the
// account on first sight. Ledger errors are returned unchanged.
func (r *Repository) Apply(txn Transaction) error {
	acct, ok := r.accounts[txn.Client]
	if !ok {
		acct = NewAccount(txn.Client)
		r.accounts[txn.Client] = acct
	}
	return acct.Apply(txn)
}

// Snapshot returns every account in unspecified order.
func (r *Repository) Snapshot() []*Account {
	accounts := make([]*Account, 0, len(r.accounts))
	for _, acct := range r.accounts {
		accounts = append(accounts, acct)
	}
	return accounts
}
