// Package storage reads and writes the durable account snapshot. It only
// handles serialization and file I/O; balance rules live in ledger and the
// store orchestration in bank.
//
// Writes are atomic: the snapshot goes to a .tmp file first and then replaces
// the previous file via rename, so a crash mid-write never leaves a corrupt
// snapshot behind.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrCorruptSnapshot marks a snapshot file that exists but cannot be parsed.
// Callers fall back to an empty store and report it instead of crashing.
var ErrCorruptSnapshot = errors.New("snapshot file is not valid JSON")

// Load reads the snapshot at path. A missing or empty file is a fresh store,
// not an error.
func Load(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		return Snapshot{}, nil
	}

	snap := Snapshot{}
	if err := json.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return snap, nil
}

// Save writes the snapshot to path, replacing any previous snapshot in full.
func Save(path string, snap Snapshot) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	// Indented output so the file stays hand-inspectable.
	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}

	return os.Rename(tmp, path)
}
