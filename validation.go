package bankbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// ValidateAmount checks that an amount supplied to a mutating operation is
// strictly positive. 'operation' names the operation in the error.
func ValidateAmount(amount Money, operation string) error {
	if !amount.IsPositive() {
		return &InvalidAmountError{Amount: amount, Operation: operation}
	}
	return nil
}

// ValidateOpeningBalance checks that an opening balance is not negative.
// Unlike other mutations, zero is acceptable here.
func ValidateOpeningBalance(amount Money) error {
	if amount.IsNegative() {
		return &InvalidAmountError{Amount: amount, Operation: "initial deposit"}
	}
	return nil
}

// ValidateCurrency checks that the code is a known ISO 4217 currency.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code: %q", code)
	}
	return nil
}
