package bankbook

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store persists the full ledger state to a single snapshot file. Every
// mutating operation on a ledger loaded through a store writes the whole
// document back (write-through: no batching, no write-ahead log). Writes are
// atomic at the file level: the document is written to a temporary file and
// renamed over the previous snapshot.
type Store struct {
	Path string
}

// NewStore returns a store bound to the given snapshot file path. The file
// does not need to exist yet.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load reads the snapshot and returns a ledger with write-through persistence
// attached. A missing file yields an empty, valid ledger rather than an
// error. Corrupt content also yields an empty ledger, after logging a
// warning; use LoadStrict to refuse instead.
func (s *Store) Load() (*Ledger, error) {
	l, err := s.load()
	if errors.Is(err, ErrCorruptSnapshot) {
		log.Printf("warning: %v; starting with an empty ledger", err)
		l, err = NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	l.attach(s)
	return l, nil
}

// LoadStrict reads the snapshot like Load but propagates decode failures, so
// a corrupt file is never silently replaced by the next write-through save.
func (s *Store) LoadStrict() (*Ledger, error) {
	l, err := s.load()
	if err != nil {
		return nil, err
	}
	l.attach(s)
	return l, nil
}

func (s *Store) load() (*Ledger, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", s.Path, err)
	}
	defer f.Close()

	l, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("snapshot %q: %w", s.Path, err)
	}
	return l, nil
}

// Save serializes the ledger and atomically replaces the snapshot file.
func (s *Store) Save(l *Ledger) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return s.write(l)
}

// write persists the ledger without locking; callers hold the ledger mutex.
func (s *Store) write(l *Ledger) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("could not create snapshot file in %q: %w", dir, err)
	}

	if err := EncodeSnapshot(tmp, l); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write snapshot %q: %w", s.Path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write snapshot %q: %w", s.Path, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace snapshot %q: %w", s.Path, err)
	}
	return nil
}
