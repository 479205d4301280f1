package renderer

import (
	"strings"
	"testing"

	"github.com/ptrmh/bankbook"
)

func TestRenderStatement(t *testing.T) {
	s := &Statement{
		AccountID: "ACC-000001",
		Owner:     "Alice",
		Status:    "Active",
		Balance:   "$150.00",
		CreatedAt: "2026-01-02",
		Lines: []StatementLine{
			{Date: "2026-01-02 09:30", Kind: "DEPOSIT", Amount: "$100.00", BalanceAfter: "$100.00", Description: "Initial deposit"},
			{Date: "2026-01-03 14:00", Kind: "WITHDRAWAL", Amount: "$50.00", BalanceAfter: "$50.00", Description: "groceries"},
		},
	}
	got := RenderStatement(s)

	for _, want := range []string{
		"# Statement for ACC-000001",
		"- Owner: Alice",
		"- Status: Active",
		"- Balance: **$150.00**",
		"| Date | Type | Amount | Balance | Description |",
		"| 2026-01-02 09:30 | DEPOSIT | $100.00 | $100.00 | Initial deposit |",
		"| 2026-01-03 14:00 | WITHDRAWAL | $50.00 | $50.00 | groceries |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderStatement missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "No transactions yet.") {
		t.Errorf("RenderStatement rendered the empty placeholder alongside lines:\n%s", got)
	}
}

func TestRenderStatementEmpty(t *testing.T) {
	s := &Statement{AccountID: "ACC-000001", Owner: "Alice", Status: "Active", Balance: "$0.00", CreatedAt: "2026-01-02"}
	got := RenderStatement(s)
	if !strings.Contains(got, "No transactions yet.") {
		t.Errorf("RenderStatement missing empty placeholder in:\n%s", got)
	}
	if strings.Contains(got, "| Date |") {
		t.Errorf("RenderStatement rendered a table header with no lines:\n%s", got)
	}
}

func TestRenderSummary(t *testing.T) {
	s := &Summary{
		Rows: []AccountRow{
			{AccountID: "ACC-000001", Owner: "Alice", Balance: "$1,000.00", Status: "Active", CreatedAt: "2026-01-02"},
			{AccountID: "ACC-000002", Owner: "Bob", Balance: "$500.00", Status: "Inactive", CreatedAt: "2026-01-03"},
		},
		TotalAccounts:    2,
		ActiveAccounts:   1,
		InactiveAccounts: 1,
		Transactions:     3,
		TotalBalance:     "$1,000.00",
	}
	got := RenderSummary(s)

	for _, want := range []string{
		"# Ledger Summary",
		"- Accounts: 2 (1 active, 1 inactive)",
		"- Transactions: 3",
		"Total balance of active accounts: **$1,000.00**",
		"| ACC-000001 | Alice | $1,000.00 | Active | 2026-01-02 |",
		"| ACC-000002 | Bob | $500.00 | Inactive | 2026-01-03 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderSummary missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderSummaryEmptyLedger(t *testing.T) {
	l := bankbook.NewLedger()
	got := RenderSummary(NewSummary(l))
	if !strings.Contains(got, "No accounts yet.") {
		t.Errorf("RenderSummary missing empty placeholder in:\n%s", got)
	}
	if !strings.Contains(got, "- Accounts: 0 (0 active, 0 inactive)") {
		t.Errorf("RenderSummary wrong counts in:\n%s", got)
	}
}

func TestRenderAccounts(t *testing.T) {
	rows := []AccountRow{
		{AccountID: "ACC-000002", Owner: "Bob", Balance: "$500.00", Status: "Active", CreatedAt: "2026-01-03"},
		{AccountID: "ACC-000001", Owner: "Alice", Balance: "$1,000.00", Status: "Active", CreatedAt: "2026-01-02"},
	}
	got := RenderAccounts(rows)

	// Rows render in the order given, the caller owns the sort.
	bob := strings.Index(got, "ACC-000002")
	alice := strings.Index(got, "ACC-000001")
	if bob < 0 || alice < 0 || bob > alice {
		t.Errorf("RenderAccounts did not preserve row order:\n%s", got)
	}
}

func TestNewStatementFromAccount(t *testing.T) {
	l := bankbook.NewLedger()
	a, err := l.CreateAccount("Alice", bankbook.M(100, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Withdraw(bankbook.M(30, "USD"), "coffee"); err != nil {
		t.Fatal(err)
	}

	s := NewStatement(a, 10)
	if s.AccountID != a.ID() || s.Owner != "Alice" || s.Status != "Active" {
		t.Errorf("unexpected statement header: %+v", s)
	}
	if len(s.Lines) != 2 {
		t.Fatalf("got %d statement lines, want 2", len(s.Lines))
	}
	if s.Lines[0].Kind != "DEPOSIT" || s.Lines[1].Kind != "WITHDRAWAL" {
		t.Errorf("statement lines out of order: %+v", s.Lines)
	}
	if s.Lines[1].Amount != "$30.00" || s.Lines[1].BalanceAfter != "$70.00" {
		t.Errorf("unexpected withdrawal line: %+v", s.Lines[1])
	}
}

func TestTransactionLine(t *testing.T) {
	l := bankbook.NewLedger()
	a, err := l.CreateAccount("Alice", bankbook.M(0, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	tx, err := a.Deposit(bankbook.M(100, "USD"), "salary")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Transaction(tx), "Deposited $100.00 (balance $100.00)"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
	tx, err = a.Withdraw(bankbook.M(40, "USD"), "")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Transaction(tx), "Withdrew $40.00 (balance $60.00)"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
}
