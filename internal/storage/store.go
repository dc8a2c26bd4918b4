// Package storage persists the note collection and reads and writes the
// plain text files notes are opened from and saved to.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"notepad/internal/models"
)

// Default location of the notes document under the user config directory.
const (
	AppDirName    = "NotepadApp"
	NotesFileName = "notes.json"
)

// ErrNoDocument is returned by Load when the notes document does not exist.
var ErrNoDocument = errors.New("notes document does not exist")

// JSONStore keeps the whole note collection in a single JSON array.
type JSONStore struct {
	path string
}

// DefaultPath returns <UserConfigDir>/NotepadApp/notes.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: resolve app data dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, NotesFileName), nil
}

// NewJSONStore creates a store writing to path. An empty path selects
// DefaultPath.
func NewJSONStore(path string) (*JSONStore, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve path: %w", err)
	}
	return &JSONStore{path: abs}, nil
}

// Path is the absolute location of the notes document.
func (s *JSONStore) Path() string {
	return s.path
}

// EnsureDir creates the directory holding the notes document.
func (s *JSONStore) EnsureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	return nil
}

// Load reads the notes document. A missing document yields ErrNoDocument.
// A document holding JSON null loads as an empty collection.
func (s *JSONStore) Load() ([]models.Note, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("storage: read %s: %w", s.path, err)
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("storage: parse %s: %w", s.path, err)
	}
	return notes, nil
}

// Save overwrites the notes document with notes as an indented JSON array.
func (s *JSONStore) Save(notes []models.Note) error {
	if notes == nil {
		notes = []models.Note{}
	}
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode notes: %w", err)
	}
	return writeAtomic(s.path, data)
}

// writeAtomic writes content through a temp file in the same directory,
// fsyncs it and renames it over path.
func writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".notes-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}
