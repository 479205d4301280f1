package bankbook

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors carrying context unwrap to one of these, so
// callers can branch with errors.Is and still reach the details with
// errors.As.
var (
	// ErrInvalidAmount reports a non-positive amount supplied to a mutating
	// operation (or a negative opening balance).
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds reports a withdrawal or transfer exceeding the
	// available balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInactiveAccount reports a mutation attempted on a deactivated account.
	ErrInactiveAccount = errors.New("account is inactive")

	// ErrAccountNotFound reports a lookup by unknown account ID.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount reports a transfer whose source and destination are the
	// same account.
	ErrSameAccount = errors.New("source and destination accounts are the same")

	// ErrCorruptSnapshot reports snapshot content that could not be decoded.
	ErrCorruptSnapshot = errors.New("snapshot content is not a valid ledger document")
)

// InvalidAmountError carries the rejected amount and the operation that
// rejected it.
type InvalidAmountError struct {
	Amount    Money
	Operation string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid %s: amount must be positive, got %s", e.Operation, e.Amount)
}

func (e *InvalidAmountError) Unwrap() error { return ErrInvalidAmount }

// InsufficientFundsError carries the balance, the requested amount, and the
// shortfall between them.
type InsufficientFundsError struct {
	Balance   Money
	Amount    Money
	Shortfall Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s, attempted %s, short %s",
		e.Balance, e.Amount, e.Shortfall)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// InactiveAccountError identifies the deactivated account that rejected a
// mutation.
type InactiveAccountError struct {
	AccountID string
}

func (e *InactiveAccountError) Error() string {
	return fmt.Sprintf("account is inactive: %s", e.AccountID)
}

func (e *InactiveAccountError) Unwrap() error { return ErrInactiveAccount }

// AccountNotFoundError identifies the unknown account ID.
type AccountNotFoundError struct {
	AccountID string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.AccountID)
}

func (e *AccountNotFoundError) Unwrap() error { return ErrAccountNotFound }
