package bankbook

import (
	"fmt"
	"time"
)

// TxKind identifies the direction of a balance-affecting event.
type TxKind int

const (
	// Deposit increases the account balance.
	Deposit TxKind = iota
	// Withdrawal decreases the account balance.
	Withdrawal
)

func (k TxKind) String() string {
	switch k {
	case Deposit:
		return "DEPOSIT"
	case Withdrawal:
		return "WITHDRAWAL"
	default:
		return "unknown"
	}
}

// ParseTxKind parses the wire representation of a transaction kind.
func ParseTxKind(s string) (TxKind, error) {
	switch s {
	case "DEPOSIT":
		return Deposit, nil
	case "WITHDRAWAL":
		return Withdrawal, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is an immutable record of one balance-affecting event. It is
// created exactly once by an account mutation and never edited afterwards;
// in particular BalanceAfter is the owning account's balance at the moment of
// creation.
type Transaction struct {
	ID           string
	Kind         TxKind
	Amount       Money
	BalanceAfter Money
	Timestamp    time.Time
	Description  string
}

func (t Transaction) String() string {
	switch t.Kind {
	case Deposit:
		return fmt.Sprintf("%s deposited %s (balance %s)", t.ID, t.Amount, t.BalanceAfter)
	default:
		return fmt.Sprintf("%s withdrew %s (balance %s)", t.ID, t.Amount, t.BalanceAfter)
	}
}

// MarshalJSON encodes the transaction in the snapshot wire shape, keys in
// canonical order, with an explicit null for a missing description.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Kind.String())
	w.Append("amount", t.Amount)
	w.Append("balance_after", t.BalanceAfter)
	w.Append("timestamp", t.Timestamp.Format(time.RFC3339Nano))
	if t.Description == "" {
		w.Append("description", nil)
	} else {
		w.Append("description", t.Description)
	}
	return w.MarshalJSON()
}
