package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type createCmd struct {
	owner   string
	deposit string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "open a new account" }
func (*createCmd) Usage() string {
	return `bkb create -owner <name> [-deposit <amount>]

  Opens a new account for the given owner. An optional opening deposit is
  recorded as the account's first transaction.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.owner, "owner", "", "Name of the account owner")
	f.StringVar(&c.deposit, "deposit", "0", "Opening deposit amount")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	amount, err := parseAmount(c.deposit, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := ledger.CreateAccount(c.owner, amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Opened account %s for %s with balance %s\n", a.ID(), a.Owner(), a.Balance())
	return subcommands.ExitSuccess
}
