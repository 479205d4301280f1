package renderer

import (
	"fmt"

	"github.com/ptrmh/bankbook"
)

// Transaction renders a transaction to a one-line string, suitable for
// command feedback right after a mutation.
func Transaction(tx bankbook.Transaction) string {
	switch tx.Kind {
	case bankbook.Deposit:
		return fmt.Sprintf("Deposited %s (balance %s)", tx.Amount, tx.BalanceAfter)
	case bankbook.Withdrawal:
		return fmt.Sprintf("Withdrew %s (balance %s)", tx.Amount, tx.BalanceAfter)
	default:
		return tx.String()
	}
}
