package bankbook

import (
	"fmt"
	"iter"
	"log"
	"time"
)

// Account owns a balance and an append-only transaction log. Accounts are
// created and owned exclusively by a Ledger; callers holding a *Account may
// read it freely, but in concurrent settings mutations must go through the
// owning Ledger so they are serialized and persisted.
//
// Invariant: the balance always equals the BalanceAfter of the most recent
// transaction (or zero if there is none), and never goes negative.
type Account struct {
	id           string
	owner        string
	balance      Money
	active       bool
	transactions []Transaction
	createdAt    time.Time

	// txCounter mints transaction IDs. It is monotonic, survives
	// serialization, and is only incremented by a successful mutation.
	txCounter int
}

func newAccount(id, owner, currency string) *Account {
	return &Account{
		id:        id,
		owner:     owner,
		balance:   M(0, currency),
		active:    true,
		createdAt: time.Now(),
	}
}

func (a *Account) ID() string           { return a.id }
func (a *Account) Owner() string        { return a.owner }
func (a *Account) Balance() Money       { return a.balance }
func (a *Account) IsActive() bool       { return a.active }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) String() string {
	status := "active"
	if !a.active {
		status = "inactive"
	}
	return fmt.Sprintf("%s: %s - %s (%s)", a.id, a.owner, a.balance, status)
}

// nextTxID mints the next transaction ID. Validation happens before minting,
// so a failed attempt never consumes an ID.
func (a *Account) nextTxID() string {
	a.txCounter++
	return fmt.Sprintf("%s-TXN-%04d", a.id, a.txCounter)
}

func (a *Account) checkActive() error {
	if !a.active {
		return &InactiveAccountError{AccountID: a.id}
	}
	return nil
}

// Deposit increases the balance and appends a Deposit transaction, returning
// the new record. The account state is unchanged on error.
func (a *Account) Deposit(amount Money, description string) (Transaction, error) {
	if err := a.checkActive(); err != nil {
		return Transaction{}, err
	}
	if err := ValidateAmount(amount, "deposit"); err != nil {
		return Transaction{}, err
	}

	a.balance = a.balance.Add(amount)
	tx := Transaction{
		ID:           a.nextTxID(),
		Kind:         Deposit,
		Amount:       amount,
		BalanceAfter: a.balance,
		Timestamp:    time.Now(),
		Description:  description,
	}
	a.transactions = append(a.transactions, tx)
	log.Printf("%s: deposited %s (balance %s)", a.id, amount, a.balance)
	return tx, nil
}

// Withdraw decreases the balance and appends a Withdrawal transaction. It
// fails with an InsufficientFundsError when the amount exceeds the balance,
// keeping the balance non-negative at all times.
func (a *Account) Withdraw(amount Money, description string) (Transaction, error) {
	if err := a.checkActive(); err != nil {
		return Transaction{}, err
	}
	if err := ValidateAmount(amount, "withdrawal"); err != nil {
		return Transaction{}, err
	}
	if a.balance.LessThan(amount) {
		return Transaction{}, &InsufficientFundsError{
			Balance:   a.balance,
			Amount:    amount,
			Shortfall: amount.Sub(a.balance),
		}
	}

	a.balance = a.balance.Sub(amount)
	tx := Transaction{
		ID:           a.nextTxID(),
		Kind:         Withdrawal,
		Amount:       amount,
		BalanceAfter: a.balance,
		Timestamp:    time.Now(),
		Description:  description,
	}
	a.transactions = append(a.transactions, tx)
	log.Printf("%s: withdrew %s (balance %s)", a.id, amount, a.balance)
	return tx, nil
}

// Transactions returns an iterator over the transaction log in insertion
// order, which is also chronological order.
func (a *Account) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range a.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// TransactionCount returns the number of transactions in the log.
func (a *Account) TransactionCount() int { return len(a.transactions) }

// LastTransaction returns the most recent transaction, if any.
func (a *Account) LastTransaction() (Transaction, bool) {
	if len(a.transactions) == 0 {
		return Transaction{}, false
	}
	return a.transactions[len(a.transactions)-1], true
}

// Statement returns a copy of the most recent n transactions, oldest first.
// A pure read: no side effects. n <= 0 uses the conventional default of 10.
func (a *Account) Statement(n int) []Transaction {
	if n <= 0 {
		n = 10
	}
	start := len(a.transactions) - n
	if start < 0 {
		start = 0
	}
	out := make([]Transaction, len(a.transactions)-start)
	copy(out, a.transactions[start:])
	return out
}

// MarshalJSON encodes the account in the snapshot wire shape. The internal
// transaction counter travels with the account so ID minting resumes exactly
// where it left off after a reload.
func (a *Account) MarshalJSON() ([]byte, error) {
	txs := a.transactions
	if txs == nil {
		txs = []Transaction{} // an empty log encodes as [], not null
	}
	var w jsonObjectWriter
	w.Append("account_id", a.id)
	w.Append("owner", a.owner)
	w.Append("balance", a.balance)
	w.Append("is_active", a.active)
	w.Append("transactions", txs)
	w.Append("created_at", a.createdAt.Format(time.RFC3339Nano))
	w.Append("_transaction_counter", a.txCounter)
	return w.MarshalJSON()
}
