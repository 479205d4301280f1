package bankbook

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"slices"
	"sync"
)

// Ledger owns a collection of accounts, allocates account IDs, orchestrates
// transfers, and answers aggregate queries. When a Store is attached, every
// mutating operation writes the full state through to it before returning.
//
// A single mutex serializes all mutating operations together with their
// snapshot write, so the invariants on Account and Transaction hold without
// per-field locking and no two writers can interleave a partial snapshot.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*Account
	currency string
	store    *Store

	// counter mints account IDs; monotonic and persisted, never derived
	// from the number of live accounts.
	counter int
}

// NewLedger creates an empty in-memory ledger using the default currency.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]*Account),
		currency: DefaultCurrency,
	}
}

// Currency returns the currency in which this ledger denominates amounts.
func (l *Ledger) Currency() string { return l.currency }

// attach binds a store for write-through persistence.
func (l *Ledger) attach(s *Store) { l.store = s }

// persist writes the full state through the attached store, if any.
// Callers hold l.mu.
func (l *Ledger) persist() error {
	if l.store == nil {
		return nil
	}
	if err := l.store.write(l); err != nil {
		return fmt.Errorf("could not persist ledger: %w", err)
	}
	return nil
}

// nextAccountID mints the next sequential account ID.
func (l *Ledger) nextAccountID() string {
	l.counter++
	return fmt.Sprintf("ACC-%06d", l.counter)
}

// CreateAccount registers a new account for owner. A positive initial deposit
// is routed through the normal deposit path, so the opening transaction is
// minted and counted like any other.
func (l *Ledger) CreateAccount(owner string, initialDeposit Money) (*Account, error) {
	if err := ValidateOpeningBalance(initialDeposit); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a := newAccount(l.nextAccountID(), owner, l.currency)
	if initialDeposit.IsPositive() {
		if _, err := a.Deposit(initialDeposit, "Initial deposit"); err != nil {
			// A fresh active account cannot reject a positive deposit.
			return nil, err
		}
	}
	l.accounts[a.id] = a

	if err := l.persist(); err != nil {
		return nil, err
	}
	log.Printf("created account %s for %s (balance %s)", a.id, owner, a.balance)
	return a, nil
}

// GetAccount returns the account with the given ID. An unknown ID fails with
// an AccountNotFoundError and never creates a placeholder entry.
func (l *Ledger) GetAccount(accountID string) (*Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.get(accountID)
}

// get resolves an account. Callers hold l.mu.
func (l *Ledger) get(accountID string) (*Account, error) {
	a, ok := l.accounts[accountID]
	if !ok {
		return nil, &AccountNotFoundError{AccountID: accountID}
	}
	return a, nil
}

// Deposit resolves the account, delegates to it, and persists.
func (l *Ledger) Deposit(accountID string, amount Money, description string) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.get(accountID)
	if err != nil {
		return Transaction{}, err
	}
	tx, err := a.Deposit(amount, description)
	if err != nil {
		return Transaction{}, err
	}
	if err := l.persist(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Withdraw resolves the account, delegates to it, and persists.
func (l *Ledger) Withdraw(accountID string, amount Money, description string) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.get(accountID)
	if err != nil {
		return Transaction{}, err
	}
	tx, err := a.Withdraw(amount, description)
	if err != nil {
		return Transaction{}, err
	}
	if err := l.persist(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Transfer moves amount from one account to another as a two-phase operation:
// both legs are validated before either account is touched, so a failure can
// never leave the source debited without a compensating credit. On success it
// returns the withdrawal and deposit records, in that order.
func (l *Ledger) Transfer(fromID, toID string, amount Money, description string) (Transaction, Transaction, error) {
	var none Transaction
	if fromID == toID {
		return none, none, ErrSameAccount
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	from, err := l.get(fromID)
	if err != nil {
		return none, none, err
	}
	to, err := l.get(toID)
	if err != nil {
		return none, none, err
	}

	// Phase one: validate both legs with no state change.
	if err := ValidateAmount(amount, "transfer"); err != nil {
		return none, none, err
	}
	if err := from.checkActive(); err != nil {
		return none, none, err
	}
	if err := to.checkActive(); err != nil {
		return none, none, err
	}
	if from.balance.LessThan(amount) {
		return none, none, &InsufficientFundsError{
			Balance:   from.balance,
			Amount:    amount,
			Shortfall: amount.Sub(from.balance),
		}
	}

	// Phase two: both legs are now guaranteed to succeed. The withdrawal is
	// applied first so the records read in cause-then-effect order.
	withdrawal, err := from.Withdraw(amount, transferNote("Transfer to", toID, description))
	if err != nil {
		return none, none, err
	}
	deposit, err := to.Deposit(amount, transferNote("Transfer from", fromID, description))
	if err != nil {
		return none, none, err
	}

	if err := l.persist(); err != nil {
		return none, none, err
	}
	log.Printf("transferred %s from %s to %s", amount, fromID, toID)
	return withdrawal, deposit, nil
}

func transferNote(prefix, accountID, description string) string {
	if description == "" {
		return fmt.Sprintf("%s %s", prefix, accountID)
	}
	return fmt.Sprintf("%s %s: %s", prefix, accountID, description)
}

// Deactivate marks the account inactive. Inactive accounts reject deposits
// and withdrawals and are excluded from TotalBalance.
func (l *Ledger) Deactivate(accountID string) error {
	return l.setActive(accountID, false)
}

// Activate marks the account active again.
func (l *Ledger) Activate(accountID string) error {
	return l.setActive(accountID, true)
}

func (l *Ledger) setActive(accountID string, active bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, err := l.get(accountID)
	if err != nil {
		return err
	}
	a.active = active
	return l.persist()
}

// TotalBalance sums the balances of all active accounts. Inactive accounts
// are omitted entirely, not counted as zero.
func (l *Ledger) TotalBalance() Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := M(0, l.currency)
	for _, a := range l.accounts {
		if a.active {
			total = total.Add(a.balance)
		}
	}
	return total
}

// Stats summarizes the ledger. A read-only aggregation with no side effects.
type Stats struct {
	TotalAccounts    int
	ActiveAccounts   int
	InactiveAccounts int
	Transactions     int
	TotalBalance     Money
}

func (s Stats) String() string {
	return fmt.Sprintf("%d accounts (%d active, %d inactive), %d transactions, total %s",
		s.TotalAccounts, s.ActiveAccounts, s.InactiveAccounts, s.Transactions, s.TotalBalance)
}

// Stats computes counts by status and the active total balance.
func (l *Ledger) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Stats{TotalBalance: M(0, l.currency)}
	for _, a := range l.accounts {
		s.TotalAccounts++
		s.Transactions += len(a.transactions)
		if a.active {
			s.ActiveAccounts++
			s.TotalBalance = s.TotalBalance.Add(a.balance)
		} else {
			s.InactiveAccounts++
		}
	}
	return s
}

// Accounts iterates over all accounts in ascending account-ID order.
func (l *Ledger) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		l.mu.Lock()
		ids := slices.Collect(maps.Keys(l.accounts))
		l.mu.Unlock()
		slices.Sort(ids)
		for _, id := range ids {
			l.mu.Lock()
			a, ok := l.accounts[id]
			l.mu.Unlock()
			if !ok {
				continue
			}
			if !yield(a) {
				return
			}
		}
	}
}

// AccountCount returns the number of registered accounts.
func (l *Ledger) AccountCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.accounts)
}
