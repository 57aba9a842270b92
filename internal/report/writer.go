// Package report renders the final balance snapshot as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/paystream/payproc/internal/ledger"
)

var header = []string{"client", "available", "held", "total", "locked"}

// Write emits the snapshot header followed by one row per account, in
// the order given. Balance fields carry exactly four fractional digits.
func Write(w io.Writer, accounts []*ledger.Account) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing snapshot header: %w", err)
	}

	for _, acct := range accounts {
		row := []string{
			strconv.FormatUint(uint64(acct.ID()), 10),
			acct.Available().String(),
			acct.Held().String(),
			acct.Total().String(),
			strconv.FormatBool(acct.Locked()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing snapshot for client %d: %w", acct.ID(), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	return nil
}
