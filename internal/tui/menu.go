package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// menu actions
const (
	actionBrowse = "browse"
	actionAdd    = "add"
	actionEdit   = "edit"
	actionSearch = "search"
	actionQuit   = "quit"
)

type item struct {
	title, desc, action string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

func newMenu() list.Model {
	items := []list.Item{
		item{title: "Browse records", desc: "Page through the phonebook", action: actionBrowse},
		item{title: "Add record", desc: "Create a new contact", action: actionAdd},
		item{title: "Edit record", desc: "Replace a contact by its number", action: actionEdit},
		item{title: "Search", desc: "Find records by substring", action: actionSearch},
		item{title: "Quit", desc: "Save and exit", action: actionQuit},
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Green).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Green).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Copy().Foreground(DimGreen)

	l := list.New(items, d, 44, 14)
	l.Title = "Phonebook"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = TitleStyle

	return l
}
