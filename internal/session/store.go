package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/noshapp/nosh/internal/errors"
)

// DefaultStoreFilename is the default filename for session storage.
const DefaultStoreFilename = "session.json"

// storeMetadata describes the stored session file itself.
type storeMetadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// storeFile is the on-disk layout.
type storeFile struct {
	Metadata storeMetadata `json:"metadata"`
	Session  *Session      `json:"session"`
}

// Store handles reading and writing the session to JSON storage.
type Store struct {
	path string
	mu   sync.RWMutex
	file *storeFile
}

// NewStore creates a Store for the given path. It does not touch the
// filesystem; call Load() or Save() for that.
func NewStore(path string) *Store {
	now := time.Now()
	return &Store{
		path: path,
		file: &storeFile{
			Metadata: storeMetadata{Version: "1.0", CreatedAt: now, UpdatedAt: now},
			Session:  New(),
		},
	}
}

// NewStoreInDir creates a Store for the default session.json in dir.
func NewStoreInDir(dir string) *Store {
	return NewStore(filepath.Join(dir, DefaultStoreFilename))
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Load reads the session from disk. A missing file initializes an empty
// session rather than failing.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			now := time.Now()
			s.file = &storeFile{
				Metadata: storeMetadata{Version: "1.0", CreatedAt: now, UpdatedAt: now},
				Session:  New(),
			}
			return nil
		}
		return errors.SessionError("failed to read session store", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return errors.SessionError("failed to parse session store", err)
	}
	if file.Session == nil {
		file.Session = New()
	}
	if file.Session.Notes == nil {
		file.Session.Notes = make(map[string]string)
	}
	if file.Session.Reviews == nil {
		file.Session.Reviews = make(map[string][]Review)
	}

	s.file = &file
	return nil
}

// Save writes the session to disk, creating parent directories if needed.
// The caller must not mutate the session from another goroutine while Save
// runs; concurrent savers should use Snapshot and SaveSnapshot instead.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file.Metadata.UpdatedAt = time.Now()
	return s.write(s.file)
}

// Snapshot returns a deep copy of the current session, taken under the
// store lock.
func (s *Store) Snapshot() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.file.Session.Clone()
}

// SaveSnapshot writes a previously taken snapshot to disk. It never reads
// the live session, so it is safe to call from a goroutine that keeps
// mutating the session through Session().
func (s *Store) SaveSnapshot(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.file.Metadata.UpdatedAt = time.Now()
	file := storeFile{Metadata: s.file.Metadata, Session: sess}
	return s.write(&file)
}

// write marshals and persists a store file. Callers hold s.mu.
func (s *Store) write(file *storeFile) error {
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return errors.SessionError("failed to marshal session store", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.SessionError("failed to create session directory", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.SessionError("failed to write session store", err)
	}

	return nil
}

// Session returns the live session. Callers mutate it directly from a
// single goroutine and then call Save, or hand a Snapshot to SaveSnapshot
// when the write happens elsewhere.
func (s *Store) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.file.Session
}
