// Package cmd implements the CLI application to manage a bankbook ledger.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/ptrmh/bankbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")
	c.Register(&deactivateCmd{}, "accounts")
	c.Register(&activateCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")

	c.Register(&statementCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("f", "accounts.json", "Path to the ledger snapshot file (JSON)")

// loadLedger opens the app snapshot with write-through persistence attached.
// A corrupt snapshot is an error here: no command may overwrite it with a
// fresh ledger.
func loadLedger() (*bankbook.Ledger, error) {
	return bankbook.NewStore(*snapshotFile).LoadStrict()
}

// parseAmount parses a user-supplied amount in the ledger currency.
func parseAmount(s string, l *bankbook.Ledger) (bankbook.Money, error) {
	return bankbook.ParseMoney(s, l.Currency())
}
