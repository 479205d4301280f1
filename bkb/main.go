package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/ptrmh/bankbook/cmd"
)

func main() {
	completion().Complete("bkb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the CLI for shell completion. Complete only fires when
// the shell invokes the binary through the COMP_LINE protocol; otherwise it
// returns immediately and main proceeds normally.
func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"f": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"create": {Flags: map[string]complete.Predictor{
				"owner":   predict.Something,
				"deposit": predict.Something,
			}},
			"deposit": {Flags: map[string]complete.Predictor{
				"to":     predict.Something,
				"amount": predict.Something,
				"desc":   predict.Nothing,
			}},
			"withdraw": {Flags: map[string]complete.Predictor{
				"from":   predict.Something,
				"amount": predict.Something,
				"desc":   predict.Nothing,
			}},
			"transfer": {Flags: map[string]complete.Predictor{
				"from":   predict.Something,
				"to":     predict.Something,
				"amount": predict.Something,
				"desc":   predict.Nothing,
			}},
			"statement": {Flags: map[string]complete.Predictor{
				"n": predict.Something,
			}},
			"accounts": {Flags: map[string]complete.Predictor{
				"sort": predict.Set{"owner", "balance", "created"},
			}},
			"summary":    {},
			"deactivate": {},
			"activate":   {},
			"query":      {},
			"topic":      {},
		},
	}
}
