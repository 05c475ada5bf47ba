// Package plain is the line-oriented fallback menu for pipes and dumb
// terminals: a numbered menu, one prompt per line, no screen control.
package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jeanpaul/rolodex/internal/phonebook"
)

type App struct {
	store    *phonebook.Store
	pageSize int
	in       *bufio.Scanner
	out      io.Writer
}

func New(store *phonebook.Store, pageSize int, in io.Reader, out io.Writer) *App {
	return &App{
		store:    store,
		pageSize: pageSize,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops the menu until quit or EOF. The phonebook is flushed on
// either way out.
func (a *App) Run() error {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Menu:")
		fmt.Fprintln(a.out, "1. List records")
		fmt.Fprintln(a.out, "2. Add record")
		fmt.Fprintln(a.out, "3. Edit record")
		fmt.Fprintln(a.out, "4. Search records")
		fmt.Fprintln(a.out, "5. Quit")

		choice, ok := a.readLine("Choose an action: ")
		if !ok {
			return a.store.Flush()
		}

		switch strings.TrimSpace(choice) {
		case "1":
			a.listPage()
		case "2":
			rec, ok := a.readRecord()
			if !ok {
				return a.store.Flush()
			}
			pos, err := a.store.Add(rec)
			if err != nil {
				fmt.Fprintf(a.out, "Record added in memory but not saved: %v\n", err)
				continue
			}
			fmt.Fprintf(a.out, "Record added at position %d!\n", pos)
		case "3":
			if !a.editRecord() {
				return a.store.Flush()
			}
		case "4":
			a.search()
		case "5":
			if err := a.store.Flush(); err != nil {
				fmt.Fprintf(a.out, "Could not save phonebook: %v\n", err)
				return err
			}
			fmt.Fprintln(a.out, "Saved. Bye.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice, try again.")
		}
	}
}

func (a *App) listPage() {
	line, ok := a.readLine("Page number: ")
	if !ok {
		return
	}
	page, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(a.out, "Invalid page number!")
		return
	}

	recs, err := a.store.Page(page, a.pageSize)
	switch {
	case errors.Is(err, phonebook.ErrEmpty):
		fmt.Fprintln(a.out, "Phonebook is empty!")
	case err != nil:
		fmt.Fprintf(a.out, "%v\n", err)
	case len(recs) == 0:
		fmt.Fprintln(a.out, "No records on this page.")
	default:
		offset := (page - 1) * a.pageSize
		for i, r := range recs {
			fmt.Fprintf(a.out, "%d. %s\n", offset+i+1, r.Render())
		}
	}
}

// editRecord does the presentation-side bounds check before calling
// the store; the store checks again on its own. Returns false on EOF.
func (a *App) editRecord() bool {
	line, ok := a.readLine("Record number to edit: ")
	if !ok {
		return false
	}
	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > a.store.Len() {
		fmt.Fprintln(a.out, "Invalid record number!")
		return true
	}

	rec, ok := a.readRecord()
	if !ok {
		return false
	}
	if err := a.store.Edit(num-1, rec); err != nil {
		fmt.Fprintf(a.out, "Record changed in memory but not saved: %v\n", err)
		return true
	}
	fmt.Fprintln(a.out, "Record updated!")
	return true
}

func (a *App) search() {
	term, ok := a.readLine("Search term: ")
	if !ok {
		return
	}
	found := a.store.Search(term)
	if len(found) == 0 {
		fmt.Fprintln(a.out, "No records found.")
		return
	}
	fmt.Fprintln(a.out, "Search results:")
	for i, r := range found {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, r.Render())
	}
}

func (a *App) readRecord() (phonebook.Record, bool) {
	var rec phonebook.Record
	fields := []struct {
		label string
		dst   *string
	}{
		{"Last name: ", &rec.LastName},
		{"First name: ", &rec.FirstName},
		{"Middle name: ", &rec.MiddleName},
		{"Organization: ", &rec.Organization},
		{"Work phone: ", &rec.WorkPhone},
		{"Personal phone: ", &rec.PersonalPhone},
	}

	for _, f := range fields {
		line, ok := a.readLine(f.label)
		if !ok {
			return rec, false
		}
		*f.dst = line
	}
	return rec, true
}

// readLine prompts and reads one line. ok is false on EOF.
func (a *App) readLine(prompt string) (string, bool) {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		fmt.Fprintln(a.out)
		return "", false
	}
	return a.in.Text(), true
}
