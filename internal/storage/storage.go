package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/vscroll/internal/model"
)

// Storage defines the interface for persisting the dataset.
type Storage interface {
	Load() (*model.Dataset, error)
	Save(d *model.Dataset) error
}

// Backend names accepted by OpenStorage.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the dataset from the JSON file.
// Returns an empty dataset if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewDataset(), nil
		}
		return nil, err
	}

	var d model.Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if d.Entries == nil {
		d.Entries = []model.Entry{}
	}

	return &d, nil
}

// Save writes the dataset to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(d *model.Dataset) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DataDir returns ~/.config/vscroll.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vscroll"), nil
}

// DefaultJSONPath returns the default JSON dataset path: ~/.config/vscroll/entries.json
func DefaultJSONPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "entries.json"), nil
}

// OpenStorage opens the backend named in the config.
// An existing SQLite database always wins over the JSON file.
func OpenStorage(backend string) (Storage, error) {
	sqlitePath, err := DefaultSQLitePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(sqlitePath); err == nil || backend != BackendJSON {
		return NewSQLiteStorage(sqlitePath)
	}

	jsonPath, err := DefaultJSONPath()
	if err != nil {
		return nil, err
	}
	return NewJSONStorage(jsonPath), nil
}
