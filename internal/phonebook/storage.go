package phonebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kjk/common/atomicfile"
)

// Storage reads and writes the whole collection as one JSON file.
// The file is an indented array of record objects with Unicode kept
// literal, so an operator can eyeball or hand-edit it.
type Storage struct {
	path string
}

// NewStorage creates storage backed by the given file path. The file
// does not need to exist yet.
func NewStorage(path string) *Storage {
	return &Storage{path: path}
}

// Path returns the backing file path.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the collection from disk. A missing file is an empty
// phonebook, not an error. Unparseable content is also treated as an
// empty phonebook; the file gets overwritten on the next save.
func (s *Storage) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

// Save replaces the file with the serialized collection. The write goes
// to a temp file in the same directory and is renamed over the target,
// so readers never observe a half-written phonebook.
func (s *Storage) Save(records []Record) error {
	if records == nil {
		records = []Record{}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	defer f.RemoveIfNotClosed()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}
