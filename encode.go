package bankbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeSnapshot writes the full ledger state as a single indented JSON
// document: every account with its complete transaction log and internal
// counter, plus the ledger's own account counter. The caller synchronizes
// access to the ledger; Store does so through the ledger mutex.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	var doc jsonObjectWriter
	doc.Append("accounts", l.accounts)
	doc.Append("_account_counter", l.counter)

	raw, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode ledger snapshot: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("could not encode ledger snapshot: %w", err)
	}
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write ledger snapshot: %w", err)
	}
	return nil
}

// Wire shapes for decoding. Encoding goes through the MarshalJSON methods on
// Account and Transaction to keep canonical key order.

type txDoc struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Timestamp    string          `json:"timestamp"`
	Description  *string         `json:"description"`
}

type accountDoc struct {
	AccountID    string          `json:"account_id"`
	Owner        string          `json:"owner"`
	Balance      decimal.Decimal `json:"balance"`
	IsActive     *bool           `json:"is_active"`
	Transactions []txDoc         `json:"transactions"`
	CreatedAt    string          `json:"created_at"`
	TxCounter    *int            `json:"_transaction_counter"`
}

type snapshotDoc struct {
	Accounts       map[string]accountDoc `json:"accounts"`
	AccountCounter *int                  `json:"_account_counter"`
}

// DecodeSnapshot reads a snapshot document and reconstructs a ledger
// observationally equivalent to the one that was encoded: same accounts, same
// transaction logs in the same order, same counters. Content that is not a
// valid ledger document fails with an error wrapping ErrCorruptSnapshot.
func DecodeSnapshot(r io.Reader) (*Ledger, error) {
	var doc snapshotDoc
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	l := NewLedger()
	for id, ad := range doc.Accounts {
		if ad.AccountID != "" && ad.AccountID != id {
			return nil, fmt.Errorf("%w: key %q does not match account_id %q", ErrCorruptSnapshot, id, ad.AccountID)
		}
		a, err := decodeAccount(id, ad, l.currency)
		if err != nil {
			return nil, err
		}
		l.accounts[id] = a
	}

	if doc.AccountCounter != nil {
		l.counter = *doc.AccountCounter
	} else {
		// Legacy documents without the counter: fall back to the account
		// count, which coincides as long as accounts are never deleted.
		l.counter = len(l.accounts)
	}
	return l, nil
}

func decodeAccount(id string, ad accountDoc, currency string) (*Account, error) {
	createdAt, err := parseTimestamp(ad.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: account %s: %v", ErrCorruptSnapshot, id, err)
	}

	a := &Account{
		id:        id,
		owner:     ad.Owner,
		balance:   M(ad.Balance, currency),
		active:    true,
		createdAt: createdAt,
	}
	if ad.IsActive != nil {
		a.active = *ad.IsActive
	}

	for _, td := range ad.Transactions {
		tx, err := decodeTransaction(td, currency)
		if err != nil {
			return nil, fmt.Errorf("%w: account %s: %v", ErrCorruptSnapshot, id, err)
		}
		a.transactions = append(a.transactions, tx)
	}

	if ad.TxCounter != nil {
		a.txCounter = *ad.TxCounter
	} else {
		a.txCounter = len(a.transactions)
	}
	return a, nil
}

func decodeTransaction(td txDoc, currency string) (Transaction, error) {
	kind, err := ParseTxKind(td.Type)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %s: %v", td.ID, err)
	}
	ts, err := parseTimestamp(td.Timestamp)
	if err != nil {
		return Transaction{}, fmt.Errorf("transaction %s: %v", td.ID, err)
	}
	tx := Transaction{
		ID:           td.ID,
		Kind:         kind,
		Amount:       M(td.Amount, currency),
		BalanceAfter: M(td.BalanceAfter, currency),
		Timestamp:    ts,
	}
	if td.Description != nil {
		tx.Description = *td.Description
	}
	return tx, nil
}

// parseTimestamp accepts RFC 3339 timestamps as written by EncodeSnapshot,
// and zone-less ISO 8601 timestamps found in documents written by earlier
// iterations of this tool.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}
