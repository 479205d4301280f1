package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ptrmh/bankbook/renderer"
)

type statementCmd struct {
	n int
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "show an account's recent transactions" }
func (*statementCmd) Usage() string {
	return `bkb statement [-n <count>] <account-id>

  Shows the account header and its most recent transactions, oldest first.
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 10, "Number of recent transactions to show")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	a, err := ledger.GetAccount(accountID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderStatement(renderer.NewStatement(a, c.n)))
	return subcommands.ExitSuccess
}
