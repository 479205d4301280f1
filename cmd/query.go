package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ptrmh/bankbook"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression against the snapshot" }
func (*queryCmd) Usage() string {
	return `bkb query <jsonpath>

  Evaluates a JSONPath expression against the raw snapshot document and
  prints the result as JSON.

Usage Examples:
$ bkb query '$.accounts.ACC-000001.balance'
$ bkb query '$.accounts.*.owner'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	expr := f.Arg(0)

	file, err := os.Open(*snapshotFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening snapshot %q: %v\n", *snapshotFile, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	result, err := bankbook.QuerySnapshot(file, expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
