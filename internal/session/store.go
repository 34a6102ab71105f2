package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the session on disk, the CLI's stand-in for the app's
// device storage (same fixed keys: token / user). The file is created 0600 —
// it holds a bearer token.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session. A missing file is not an error: it just
// means nobody is signed in.
func (st *Store) Load() (Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: read %s: %w", st.path, err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// corrupted session file — treat as signed out rather than failing
		return Session{}, nil
	}
	return s, nil
}

// Save writes the session, creating the parent directory when needed.
func (st *Store) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("session: write %s: %w", st.path, err)
	}
	return nil
}

// Clear removes the persisted session (sign-out). Already gone is fine.
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
