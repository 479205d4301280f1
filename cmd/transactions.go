package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ptrmh/bankbook/renderer"
)

// --- Deposit Command ---

type depositCmd struct {
	to     string
	amount string
	desc   string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `bkb deposit -to <account-id> -amount <amount> [-desc <description>]

  Deposits the amount into the account and records a transaction.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Account ID to deposit into")
	f.StringVar(&c.amount, "amount", "", "Amount to deposit")
	f.StringVar(&c.desc, "desc", "", "An optional note for the transaction")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	amount, err := parseAmount(c.amount, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := ledger.Deposit(c.to, amount, c.desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error depositing into %s: %v\n", c.to, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", c.to, renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// --- Withdraw Command ---

type withdrawCmd struct {
	from   string
	amount string
	desc   string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `bkb withdraw -from <account-id> -amount <amount> [-desc <description>]

  Withdraws the amount from the account and records a transaction. The
  withdrawal is rejected if it would overdraw the account.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Account ID to withdraw from")
	f.StringVar(&c.amount, "amount", "", "Amount to withdraw")
	f.StringVar(&c.desc, "desc", "", "An optional note for the transaction")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	amount, err := parseAmount(c.amount, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := ledger.Withdraw(c.from, amount, c.desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error withdrawing from %s: %v\n", c.from, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", c.from, renderer.Transaction(tx))
	return subcommands.ExitSuccess
}

// --- Transfer Command ---

type transferCmd struct {
	from   string
	to     string
	amount string
	desc   string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move money between two accounts" }
func (*transferCmd) Usage() string {
	return `bkb transfer -from <account-id> -to <account-id> -amount <amount> [-desc <description>]

  Moves the amount between two accounts atomically: either both the
  withdrawal and the deposit happen, or neither does.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account ID")
	f.StringVar(&c.to, "to", "", "Destination account ID")
	f.StringVar(&c.amount, "amount", "", "Amount to transfer")
	f.StringVar(&c.desc, "desc", "", "An optional note for both transactions")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	amount, err := parseAmount(c.amount, ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	out, in, err := ledger.Transfer(c.from, c.to, amount, c.desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error transferring from %s to %s: %v\n", c.from, c.to, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %s\n", c.from, renderer.Transaction(out))
	fmt.Printf("%s: %s\n", c.to, renderer.Transaction(in))
	return subcommands.ExitSuccess
}
