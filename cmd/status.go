package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ptrmh/bankbook"
)

// --- Deactivate Command ---

type deactivateCmd struct{}

func (*deactivateCmd) Name() string     { return "deactivate" }
func (*deactivateCmd) Synopsis() string { return "take an account out of service" }
func (*deactivateCmd) Usage() string {
	return `bkb deactivate <account-id>

  Marks the account inactive. Inactive accounts refuse deposits,
  withdrawals, and transfers, but keep their balance and history.
`
}

func (c *deactivateCmd) SetFlags(f *flag.FlagSet) {}

func (c *deactivateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setStatus(f, "deactivated", (*bankbook.Ledger).Deactivate)
}

// --- Activate Command ---

type activateCmd struct{}

func (*activateCmd) Name() string     { return "activate" }
func (*activateCmd) Synopsis() string { return "bring an account back into service" }
func (*activateCmd) Usage() string {
	return `bkb activate <account-id>

  Marks the account active again.
`
}

func (c *activateCmd) SetFlags(f *flag.FlagSet) {}

func (c *activateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return setStatus(f, "activated", (*bankbook.Ledger).Activate)
}

func setStatus(f *flag.FlagSet, verb string, set func(*bankbook.Ledger, string) error) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	accountID := f.Arg(0)

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := set(ledger, accountID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %s %s\n", accountID, verb)
	return subcommands.ExitSuccess
}
