package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"
	"github.com/ptrmh/bankbook"
	"github.com/ptrmh/bankbook/renderer"
)

// sortStrategies maps a -sort name to an account comparator. The zero value
// (no -sort flag) keeps the natural account-ID order.
var sortStrategies = map[string]func(a, b *bankbook.Account) int{
	"owner": func(a, b *bankbook.Account) int {
		return strings.Compare(a.Owner(), b.Owner())
	},
	"balance": func(a, b *bankbook.Account) int {
		// largest first
		return b.Balance().Decimal().Cmp(a.Balance().Decimal())
	},
	"created": func(a, b *bankbook.Account) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	},
}

type accountsCmd struct {
	sort string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts" }
func (*accountsCmd) Usage() string {
	return `bkb accounts [-sort owner|balance|created]

  Lists every account, one row each. By default rows are in account-ID
  order; -sort picks another ordering.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sort, "sort", "", "Sort order: owner, balance, or created")
}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var cmp func(a, b *bankbook.Account) int
	if c.sort != "" {
		var ok bool
		if cmp, ok = sortStrategies[c.sort]; !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown sort order %q\n", c.sort)
			f.Usage()
			return subcommands.ExitUsageError
		}
	}

	ledger, err := loadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	accounts := slices.Collect(ledger.Accounts())
	if cmp != nil {
		slices.SortStableFunc(accounts, cmp)
	}

	rows := make([]renderer.AccountRow, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, renderer.NewAccountRow(a))
	}

	printMarkdown(renderer.RenderAccounts(rows))
	return subcommands.ExitSuccess
}
