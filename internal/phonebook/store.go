package phonebook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmpty is returned by Page when the phonebook has no records at
	// all. An in-range request against a non-empty phonebook never gets
	// this; a page past the end returns an empty slice and no error.
	ErrEmpty = errors.New("phonebook is empty")

	// ErrBadPage is returned for page numbers or page sizes below 1.
	ErrBadPage = errors.New("page number and page size must be positive")

	// ErrIndexOutOfRange is returned by Edit for an index outside the
	// collection.
	ErrIndexOutOfRange = errors.New("record index out of range")
)

// Store owns the in-memory collection and is the only path to it.
// Every mutation is persisted before the call returns, so the file and
// the memory copy never drift apart (barring a save error, which the
// caller sees and the memory copy survives).
//
// Store is single-owner, single-goroutine by design: the menu layers
// call it strictly sequentially.
type Store struct {
	storage *Storage
	records []Record
}

// NewStore loads the collection from storage once and wraps it.
func NewStore(storage *Storage) (*Store, error) {
	records, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{storage: storage, records: records}, nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Page returns the records on the given 1-based page. An empty
// phonebook yields ErrEmpty; a page past the last record yields an
// empty (non-nil) slice, which callers render as "nothing here" rather
// than "phonebook is empty".
func (s *Store) Page(pageNum, pageSize int) ([]Record, error) {
	if pageNum < 1 || pageSize < 1 {
		return nil, ErrBadPage
	}
	if len(s.records) == 0 {
		return nil, ErrEmpty
	}

	// compare against the last page before multiplying, so a huge page
	// number cannot overflow into a negative slice index
	lastPage := (len(s.records)-1)/pageSize + 1
	if pageNum > lastPage {
		return []Record{}, nil
	}

	start := (pageNum - 1) * pageSize
	end := start + pageSize
	if end > len(s.records) {
		end = len(s.records)
	}

	page := make([]Record, end-start)
	copy(page, s.records[start:end])
	return page, nil
}

// Add appends the record and persists. It returns the record's 1-based
// position. If the save fails the record is still in memory and the
// error tells the caller the file is behind.
func (s *Store) Add(r Record) (int, error) {
	s.records = append(s.records, r)
	if err := s.storage.Save(s.records); err != nil {
		return len(s.records), err
	}
	return len(s.records), nil
}

// Edit replaces the record at the zero-based index and persists. The
// index is validated here: an out-of-range index is an error, never a
// silent no-op or a clamp.
func (s *Store) Edit(idx int, r Record) error {
	if idx < 0 || idx >= len(s.records) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, len(s.records))
	}
	s.records[idx] = r
	return s.storage.Save(s.records)
}

// Search returns, in collection order, the records whose canonical
// rendering contains the term, case-insensitively. The match runs over
// the serialized record, keys and punctuation included, so a term like
// "last_name" matches everything; that quirk is load-bearing for
// existing users and stays. An empty term matches every record.
func (s *Store) Search(term string) []Record {
	term = strings.ToLower(term)
	var found []Record
	for _, r := range s.records {
		if strings.Contains(strings.ToLower(r.Render()), term) {
			found = append(found, r)
		}
	}
	return found
}

// Flush persists the current collection. Mutations already persist on
// their own; this exists for orderly shutdown and is cheap to repeat.
func (s *Store) Flush() error {
	return s.storage.Save(s.records)
}
