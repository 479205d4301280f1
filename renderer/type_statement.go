package renderer

import (
	"github.com/ptrmh/bankbook"
)

// StatementLine is one transaction formatted for display.
type StatementLine struct {
	Date         string
	Kind         string
	Amount       string
	BalanceAfter string
	Description  string
}

// Statement is the view model for an account statement: header fields plus
// the most recent transactions, oldest first.
type Statement struct {
	AccountID string
	Owner     string
	Status    string
	Balance   string
	CreatedAt string
	Lines     []StatementLine
}

// NewStatement builds the view model for the most recent n transactions of
// the account (n <= 0 means the conventional 10).
func NewStatement(a *bankbook.Account, n int) *Statement {
	s := &Statement{
		AccountID: a.ID(),
		Owner:     a.Owner(),
		Status:    statusLabel(a.IsActive()),
		Balance:   a.Balance().String(),
		CreatedAt: a.CreatedAt().Format("2006-01-02"),
	}
	for _, tx := range a.Statement(n) {
		s.Lines = append(s.Lines, StatementLine{
			Date:         tx.Timestamp.Format("2006-01-02 15:04"),
			Kind:         tx.Kind.String(),
			Amount:       tx.Amount.String(),
			BalanceAfter: tx.BalanceAfter.String(),
			Description:  tx.Description,
		})
	}
	return s
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
