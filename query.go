package bankbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// QuerySnapshot evaluates a JSONPath expression against a snapshot document,
// e.g. `$.accounts["ACC-000001"].balance` or `$.accounts.*.owner`. It reads
// the raw document rather than a decoded Ledger, so underscore-prefixed
// bookkeeping fields are reachable too.
func QuerySnapshot(r io.Reader, expr string) (any, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	jval, err := jsonpath.Get(expr, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", expr, err)
	}

	// jsonpath wraps some answers in a single-element list; unwrap so callers
	// get the value itself.
	if list, ok := jval.([]any); ok && len(list) == 1 {
		return list[0], nil
	}
	return jval, nil
}
