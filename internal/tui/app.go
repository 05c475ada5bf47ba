package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeanpaul/rolodex/internal/phonebook"
)

// mode is which screen the app is on
type mode int

const (
	modeMenu mode = iota
	modeBrowse
	modeEditPick // asking which record number to edit
	modeForm     // add or edit entry form
	modeSearch   // asking for a search term
	modeResults
)

// Model is the top-level bubbletea model. It is the presentation
// caller of the record store: it owns prompts, the 1-based display
// numbering and the pre-call bounds check for edit; the store owns
// the data.
type Model struct {
	store    *phonebook.Store
	pageSize int

	mode mode
	menu list.Model

	// browse state
	page int

	// form state
	inputs  []textinput.Model
	focus   int
	editIdx int // zero-based target for edit, -1 means add

	// single-line prompt reused by edit-pick and search
	prompt textinput.Model

	// search state
	results []phonebook.Record
	term    string

	status      string
	statusIsErr bool
	quitting    bool
}

// NewModel wires the TUI to a loaded store.
func NewModel(store *phonebook.Store, pageSize int) Model {
	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.CharLimit = 128
	prompt.Width = 40

	return Model{
		store:    store,
		pageSize: pageSize,
		mode:     modeMenu,
		menu:     newMenu(),
		page:     1,
		editIdx:  -1,
		prompt:   prompt,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeEditPick:
			return m.updateEditPick(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeResults:
			if msg.String() == "esc" || msg.String() == "enter" || msg.String() == "q" {
				m.mode = modeMenu
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.mode == modeMenu {
		m.menu, cmd = m.menu.Update(msg)
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "enter":
		selected, ok := m.menu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		m.status = ""
		m.statusIsErr = false
		switch selected.action {
		case actionBrowse:
			m.page = 1
			m.mode = modeBrowse
		case actionAdd:
			m.editIdx = -1
			m.inputs = newRecordForm()
			m.focus = 0
			m.mode = modeForm
		case actionEdit:
			if m.store.Len() == 0 {
				m.setError("Phonebook is empty, nothing to edit")
				return m, nil
			}
			m.prompt.SetValue("")
			m.prompt.Placeholder = fmt.Sprintf("record number (1-%d)", m.store.Len())
			m.prompt.Focus()
			m.mode = modeEditPick
		case actionSearch:
			m.prompt.SetValue("")
			m.prompt.Placeholder = "search term"
			m.prompt.Focus()
			m.mode = modeSearch
		case actionQuit:
			return m.quit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.mode = modeMenu
	case "right", "l", "pgdown", "n":
		m.page++
	case "left", "h", "pgup", "p":
		if m.page > 1 {
			m.page--
		}
	}
	return m, nil
}

func (m Model) updateEditPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "enter":
		num, err := strconv.Atoi(strings.TrimSpace(m.prompt.Value()))
		// display numbers are 1-based, the store is 0-based
		if err != nil || num < 1 || num > m.store.Len() {
			m.setError(fmt.Sprintf("No record %q — pick 1-%d", m.prompt.Value(), m.store.Len()))
			m.mode = modeMenu
			return m, nil
		}
		m.editIdx = num - 1
		m.inputs = newRecordForm()
		m.focus = 0
		m.mode = modeForm
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "tab", "down":
		m.focus = (m.focus + 1) % len(m.inputs)
		return m.refocus()
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
		return m.refocus()
	case "enter":
		rec := formRecord(m.inputs)
		if m.editIdx < 0 {
			pos, err := m.store.Add(rec)
			if err != nil {
				m.setError("Record kept in memory but not saved: " + err.Error())
			} else {
				m.setStatus(fmt.Sprintf("Record added at position %d", pos))
			}
		} else {
			if err := m.store.Edit(m.editIdx, rec); err != nil {
				if errors.Is(err, phonebook.ErrIndexOutOfRange) {
					m.setError("Record number is no longer valid")
				} else {
					m.setError("Record changed in memory but not saved: " + err.Error())
				}
			} else {
				m.setStatus(fmt.Sprintf("Record %d updated", m.editIdx+1))
			}
		}
		m.mode = modeMenu
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) refocus() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmds = append(cmds, m.inputs[i].Focus())
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeMenu
		return m, nil
	case "enter":
		m.term = m.prompt.Value()
		m.results = m.store.Search(m.term)
		m.mode = modeResults
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if err := m.store.Flush(); err != nil {
		// still quit, but make the failure visible on the way out
		m.setError("Could not save phonebook: " + err.Error())
	}
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusIsErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusIsErr = true
}

func (m Model) View() string {
	if m.quitting {
		if m.statusIsErr {
			return ErrorStyle.Render(m.status) + "\n"
		}
		return HelpStyle.Render("Saved. Bye.") + "\n"
	}

	var body string
	switch m.mode {
	case modeMenu:
		body = m.menu.View()
	case modeBrowse:
		body = m.viewBrowse()
	case modeEditPick:
		body = TitleStyle.Render("Edit record") + "\n\n  " +
			InputBorderStyle.Render(m.prompt.View()) + "\n\n" +
			HelpStyle.Render("  Enter: pick | Esc: cancel")
	case modeForm:
		title := "Add record"
		if m.editIdx >= 0 {
			title = fmt.Sprintf("Edit record %d", m.editIdx+1)
		}
		body = renderForm(m.inputs, m.focus, title)
	case modeSearch:
		body = TitleStyle.Render("Search") + "\n\n  " +
			InputBorderStyle.Render(m.prompt.View()) + "\n\n" +
			HelpStyle.Render("  Enter: search | Esc: cancel")
	case modeResults:
		body = m.viewResults()
	}

	status := ""
	if m.status != "" {
		if m.statusIsErr {
			status = "\n" + ErrorStyle.Render("  "+m.status)
		} else {
			status = "\n" + StatusStyle.Render("  "+m.status)
		}
	}

	return BannerStyle.Render(Banner) + "\n" + body + status + "\n"
}

func (m Model) viewBrowse() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Records — page %d", m.page)) + "\n\n")

	recs, err := m.store.Page(m.page, m.pageSize)
	switch {
	case errors.Is(err, phonebook.ErrEmpty):
		b.WriteString(DimStyle.Render("  Phonebook is empty!") + "\n")
	case err != nil:
		b.WriteString(ErrorStyle.Render("  "+err.Error()) + "\n")
	case len(recs) == 0:
		// past the end, which is not the same thing as an empty phonebook
		b.WriteString(DimStyle.Render("  No records on this page") + "\n")
	default:
		offset := (m.page - 1) * m.pageSize
		for i, r := range recs {
			b.WriteString(renderRecordLine(offset+i+1, r) + "\n")
		}
	}

	b.WriteString("\n" + HelpStyle.Render("  ←/→: page | Esc: back"))
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	title := "Search results"
	if m.term != "" {
		title = fmt.Sprintf("Search results for %q", m.term)
	}
	b.WriteString(TitleStyle.Render(title) + "\n\n")

	if len(m.results) == 0 {
		b.WriteString(DimStyle.Render("  No records found") + "\n")
	}
	for i, r := range m.results {
		b.WriteString(renderRecordLine(i+1, r) + "\n")
	}

	b.WriteString("\n" + HelpStyle.Render("  Esc: back"))
	return b.String()
}

func renderRecordLine(num int, r phonebook.Record) string {
	name := strings.TrimSpace(strings.Join([]string{r.LastName, r.FirstName, r.MiddleName}, " "))
	if name == "" {
		name = "(no name)"
	}

	line := fmt.Sprintf("  %s %s",
		IndexStyle.Render(fmt.Sprintf("%d.", num)),
		NameStyle.Render(name),
	)
	if r.Organization != "" {
		line += DimStyle.Render(" │ ") + OrgStyle.Render(r.Organization)
	}
	if r.WorkPhone != "" {
		line += DimStyle.Render(" │ ") + PhoneStyle.Render("work "+r.WorkPhone)
	}
	if r.PersonalPhone != "" {
		line += DimStyle.Render(" │ ") + PhoneStyle.Render("personal "+r.PersonalPhone)
	}
	return line
}
