package bankbook

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "accounts.json"))
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := tempStore(t)

	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if l.AccountCount() != 0 {
		t.Errorf("account count = %d, want 0", l.AccountCount())
	}

	// The empty ledger is valid: the first account gets ACC-000001 and the
	// write-through save creates the file.
	a, err := l.CreateAccount("Alice", M(100, DefaultCurrency))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := a.ID(), "ACC-000001"; got != want {
		t.Errorf("first account ID = %q, want %q", got, want)
	}
	if _, err := os.Stat(s.Path); err != nil {
		t.Errorf("snapshot file was not created by the write-through save: %v", err)
	}
}

func TestStore_WriteThrough(t *testing.T) {
	s := tempStore(t)

	l, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := l.CreateAccount("Alice", M(1000, DefaultCurrency))
	b, _ := l.CreateAccount("Bob", M(500, DefaultCurrency))
	l.Deposit(a.ID(), M(250, DefaultCurrency), "Bonus")
	l.Transfer(a.ID(), b.ID(), M(200, DefaultCurrency), "Rent")
	l.Deactivate(b.ID())

	// A fresh load must see every mutation without an explicit Save.
	reloaded, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	ra, err := reloaded.GetAccount(a.ID())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ra.Balance(), M(1050, DefaultCurrency); !got.Equal(want) {
		t.Errorf("reloaded balance = %s, want %s", got, want)
	}
	if ra.TransactionCount() != 3 {
		t.Errorf("reloaded transaction count = %d, want 3", ra.TransactionCount())
	}
	rb, _ := reloaded.GetAccount(b.ID())
	if rb.IsActive() {
		t.Error("deactivation was not persisted")
	}
}

func TestStore_LoadCorrupt(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	// Lenient load falls back to an empty ledger.
	l, err := s.Load()
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}
	if l.AccountCount() != 0 {
		t.Errorf("account count = %d, want 0 after fallback", l.AccountCount())
	}

	// Strict load refuses.
	if _, err := s.LoadStrict(); !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("LoadStrict() error = %v, want ErrCorruptSnapshot", err)
	}
}

func TestStore_SaveAndReload(t *testing.T) {
	s := tempStore(t)

	l := NewLedger()
	l.CreateAccount("Alice", M(42, DefaultCurrency))
	if err := s.Save(l); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}

	reloaded, err := s.LoadStrict()
	if err != nil {
		t.Fatal(err)
	}
	a, err := reloaded.GetAccount("ACC-000001")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := a.Balance(), M(42, DefaultCurrency); !got.Equal(want) {
		t.Errorf("balance = %s, want %s", got, want)
	}
}

func TestStore_NoStrayTempFiles(t *testing.T) {
	s := tempStore(t)
	l, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	l.CreateAccount("Alice", M(1, DefaultCurrency))
	l.CreateAccount("Bob", M(2, DefaultCurrency))

	entries, err := os.ReadDir(filepath.Dir(s.Path))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != filepath.Base(s.Path) {
			t.Errorf("unexpected file left behind: %s", e.Name())
		}
	}
}
