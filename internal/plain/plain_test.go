package plain

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/rolodex/internal/phonebook"
)

func newTestApp(t *testing.T, script string) (*App, *bytes.Buffer, *phonebook.Storage) {
	t.Helper()
	storage := phonebook.NewStorage(filepath.Join(t.TempDir(), "phonebook.json"))
	store, err := phonebook.NewStore(storage)
	require.NoError(t, err)

	var out bytes.Buffer
	return New(store, 5, strings.NewReader(script), &out), &out, storage
}

func TestFullSession(t *testing.T) {
	script := strings.Join([]string{
		"2",             // add
		"Иванов", "Иван", "Иванович", "Рога и Копыта", "111", "222",
		"1", "1",        // list page 1
		"4", "иванов",   // search
		"3", "1",        // edit record 1
		"Петров", "Пётр", "", "", "", "",
		"5",             // quit
	}, "\n") + "\n"

	app, out, storage := newTestApp(t, script)
	require.NoError(t, app.Run())

	got := out.String()
	assert.Contains(t, got, "Record added at position 1!")
	assert.Contains(t, got, `1. {"last_name":"Иванов"`)
	assert.Contains(t, got, "Search results:")
	assert.Contains(t, got, "Record updated!")
	assert.Contains(t, got, "Saved. Bye.")

	// the edit replaced the whole record on disk
	onDisk, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, onDisk, 1)
	assert.Equal(t, "Петров", onDisk[0].LastName)
	assert.Equal(t, "", onDisk[0].Organization)
}

func TestListEmptyPhonebook(t *testing.T) {
	app, out, _ := newTestApp(t, "1\n1\n5\n")
	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Phonebook is empty!")
}

func TestListPagePastEnd(t *testing.T) {
	script := strings.Join([]string{
		"2", "a", "b", "c", "d", "e", "f", // one record
		"1", "9", // page way out of range
		"5",
	}, "\n") + "\n"

	app, out, _ := newTestApp(t, script)
	require.NoError(t, app.Run())

	got := out.String()
	assert.Contains(t, got, "No records on this page.")
	assert.NotContains(t, got, "Phonebook is empty!")
}

func TestInvalidMenuChoice(t *testing.T) {
	app, out, _ := newTestApp(t, "7\n5\n")
	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Invalid choice, try again.")
}

func TestEditInvalidNumber(t *testing.T) {
	script := strings.Join([]string{
		"2", "a", "b", "c", "d", "e", "f",
		"3", "2", // only one record, 2 is out of range
		"3", "zero", // not a number
		"5",
	}, "\n") + "\n"

	app, out, storage := newTestApp(t, script)
	require.NoError(t, app.Run())

	assert.Equal(t, 2, strings.Count(out.String(), "Invalid record number!"))

	onDisk, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, onDisk, 1)
	assert.Equal(t, "a", onDisk[0].LastName)
}

func TestSearchNoResults(t *testing.T) {
	app, out, _ := newTestApp(t, "4\nnothing-here\n5\n")
	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "No records found.")
}

func TestEOFFlushesAndExits(t *testing.T) {
	// stream ends mid-session: Run returns cleanly and the file exists
	script := "2\na\nb\nc\nd\ne\nf\n" // no quit, EOF after add
	app, _, storage := newTestApp(t, script)
	require.NoError(t, app.Run())

	onDisk, err := storage.Load()
	require.NoError(t, err)
	assert.Len(t, onDisk, 1)
}

func TestInvalidPageNumberInput(t *testing.T) {
	app, out, _ := newTestApp(t, "1\nabc\n5\n")
	require.NoError(t, app.Run())
	assert.Contains(t, out.String(), "Invalid page number!")
}
