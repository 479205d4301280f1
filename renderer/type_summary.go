package renderer

import (
	"github.com/ptrmh/bankbook"
)

// AccountRow is one account formatted for display in a table.
type AccountRow struct {
	AccountID string
	Owner     string
	Balance   string
	Status    string
	CreatedAt string
}

// NewAccountRow builds the display row for one account.
func NewAccountRow(a *bankbook.Account) AccountRow {
	return AccountRow{
		AccountID: a.ID(),
		Owner:     a.Owner(),
		Balance:   a.Balance().String(),
		Status:    statusLabel(a.IsActive()),
		CreatedAt: a.CreatedAt().Format("2006-01-02"),
	}
}

// Summary is the view model for the whole-ledger summary report.
type Summary struct {
	Rows             []AccountRow
	TotalAccounts    int
	ActiveAccounts   int
	InactiveAccounts int
	Transactions     int
	TotalBalance     string
}

// NewSummary builds the summary view model from the ledger, accounts in ID
// order.
func NewSummary(l *bankbook.Ledger) *Summary {
	stats := l.Stats()
	s := &Summary{
		TotalAccounts:    stats.TotalAccounts,
		ActiveAccounts:   stats.ActiveAccounts,
		InactiveAccounts: stats.InactiveAccounts,
		Transactions:     stats.Transactions,
		TotalBalance:     stats.TotalBalance.String(),
	}
	for a := range l.Accounts() {
		s.Rows = append(s.Rows, NewAccountRow(a))
	}
	return s
}
