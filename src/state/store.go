package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	jsonStatePath       = "pnode_state.json"
	jsonStateBackupPath = "pnode_state.json.bak"
)

// ErrNoState is returned by Load when neither the state file nor its backup
// exists. The caller treats this as a first run.
var ErrNoState = errors.New("no state file")

// Store provides baseline persistence on disk in the form of a JSON file
// with a backup copy of the previous version.
type Store struct {
	dir string
}

// NewStore creates a Store with reference to the base directory where the
// JSON files reside.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path of the state file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, jsonStatePath)
}

// BackupPath returns the full path of the backup state file.
func (s *Store) BackupPath() string {
	return filepath.Join(s.dir, jsonStateBackupPath)
}

// Load parses the underlying JSON file and returns the corresponding
// Baseline. When the main file is missing or unreadable, Load falls back to
// the backup copy. ErrNoState signals a clean first run; any other error
// means both copies are unusable and the caller should bootstrap.
func (s *Store) Load() (*Baseline, error) {
	b, mainErr := readBaseline(s.Path())
	if mainErr == nil {
		return b, nil
	}

	b, backupErr := readBaseline(s.BackupPath())
	if backupErr == nil {
		return b, nil
	}

	if os.IsNotExist(mainErr) && os.IsNotExist(backupErr) {
		return nil, ErrNoState
	}

	return nil, fmt.Errorf("state file unreadable: %v (backup: %v)", mainErr, backupErr)
}

// Commit persists a Baseline. The current state file, if any, is copied to
// the backup file first, and the new version lands via rename so a partial
// write cannot clobber the last good state.
func (s *Store) Commit(b *Baseline) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	if cur, err := os.ReadFile(s.Path()); err == nil {
		if err := os.WriteFile(s.BackupPath(), cur, 0644); err != nil {
			return err
		}
	}

	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return err
	}

	return os.Rename(tmp, s.Path())
}

func readBaseline(path string) (*Baseline, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Baseline
	if err := json.Unmarshal(buf, &b); err != nil {
		return nil, err
	}

	return &b, nil
}
