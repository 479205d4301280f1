package cmd

import (
	"testing"

	"github.com/google/subcommands"
)

func TestStatementCmd(t *testing.T) {
	withTempSnapshot(t)
	id := seedAccount(t, "Alice", 100)

	if status := run(t, &statementCmd{}, id); status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
}

func TestStatementCmdUnknownAccount(t *testing.T) {
	withTempSnapshot(t)
	seedAccount(t, "Alice", 100)

	if status := run(t, &statementCmd{}, "ACC-999999"); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure, got %v", status)
	}
}

func TestSummaryCmd(t *testing.T) {
	withTempSnapshot(t)
	seedAccount(t, "Alice", 100)
	seedAccount(t, "Bob", 200)

	if status := run(t, &summaryCmd{}); status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
}

func TestAccountsCmd(t *testing.T) {
	withTempSnapshot(t)
	seedAccount(t, "Alice", 100)
	seedAccount(t, "Bob", 200)

	for _, order := range []string{"", "owner", "balance", "created"} {
		args := []string{}
		if order != "" {
			args = append(args, "-sort", order)
		}
		if status := run(t, &accountsCmd{}, args...); status != subcommands.ExitSuccess {
			t.Errorf("accounts -sort %q: expected ExitSuccess, got %v", order, status)
		}
	}

	if status := run(t, &accountsCmd{}, "-sort", "bogus"); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError for unknown sort, got %v", status)
	}
}

func TestQueryCmd(t *testing.T) {
	withTempSnapshot(t)
	seedAccount(t, "Alice", 100)

	if status := run(t, &queryCmd{}, "$.accounts.*.owner"); status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}
	if status := run(t, &queryCmd{}, "$.["); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure for a bad expression, got %v", status)
	}
}

func TestTopicCmd(t *testing.T) {
	withTempSnapshot(t)

	if status := run(t, &topicCmd{}); status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess for the default topic, got %v", status)
	}
	if status := run(t, &topicCmd{}, "no-such-topic"); status != subcommands.ExitFailure {
		t.Errorf("Expected ExitFailure for an unknown topic, got %v", status)
	}
}
