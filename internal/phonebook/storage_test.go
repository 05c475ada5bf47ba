package phonebook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStorage(t *testing.T) *Storage {
	t.Helper()
	return NewStorage(filepath.Join(t.TempDir(), "phonebook.json"))
}

func TestLoadMissingFile(t *testing.T) {
	st := tempStorage(t)

	records, err := st.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRoundTrip(t *testing.T) {
	st := tempStorage(t)

	want := []Record{
		{LastName: "Иванов", FirstName: "Иван", MiddleName: "Иванович", Organization: "Рога и Копыта", WorkPhone: "+7 495 123-45-67", PersonalPhone: "+7 916 000-11-22"},
		{LastName: "Smith", FirstName: "John", Organization: "ACME"},
		{}, // all fields empty is a legal record
	}

	require.NoError(t, st.Save(want))
	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveHumanReadable(t *testing.T) {
	st := tempStorage(t)

	require.NoError(t, st.Save([]Record{{LastName: "Иванов", Organization: "A & B"}}))

	data, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	content := string(data)

	// non-ASCII stays literal, HTML characters stay literal, output is indented
	assert.Contains(t, content, "Иванов")
	assert.Contains(t, content, "A & B")
	assert.NotContains(t, content, `\u`)
	assert.Contains(t, content, "\n    {")
}

func TestSaveNilCollection(t *testing.T) {
	st := tempStorage(t)

	require.NoError(t, st.Save(nil))

	data, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestLoadCorruptFile(t *testing.T) {
	st := tempStorage(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte("{{{ not json at all"), 0644))

	records, err := st.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoadNullFile(t *testing.T) {
	// a file containing JSON null decodes to a nil slice; Load must
	// still hand back a usable empty collection
	st := tempStorage(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte("null"), 0644))

	records, err := st.Load()
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveOverwrites(t *testing.T) {
	st := tempStorage(t)

	require.NoError(t, st.Save([]Record{{LastName: "first"}, {LastName: "second"}}))
	require.NoError(t, st.Save([]Record{{LastName: "third"}}))

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "third", got[0].LastName)
}

func TestSaveCreatesParentDir(t *testing.T) {
	st := NewStorage(filepath.Join(t.TempDir(), "deep", "nested", "phonebook.json"))

	require.NoError(t, st.Save([]Record{{LastName: "x"}}))
	got, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st := NewStorage(filepath.Join(dir, "phonebook.json"))
	require.NoError(t, st.Save([]Record{{LastName: "x"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "phonebook.json", entries[0].Name())
}
