package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/jeanpaul/rolodex/internal/phonebook"
)

var fieldLabels = []string{
	"Last name",
	"First name",
	"Middle name",
	"Organization",
	"Work phone",
	"Personal phone",
}

// newRecordForm builds the six-field entry form. Field order matches
// the file format, which matches the order the old tool prompted in.
func newRecordForm() []textinput.Model {
	inputs := make([]textinput.Model, len(fieldLabels))
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[0].Focus()
	return inputs
}

func formRecord(inputs []textinput.Model) phonebook.Record {
	return phonebook.Record{
		LastName:      inputs[0].Value(),
		FirstName:     inputs[1].Value(),
		MiddleName:    inputs[2].Value(),
		Organization:  inputs[3].Value(),
		WorkPhone:     inputs[4].Value(),
		PersonalPhone: inputs[5].Value(),
	}
}

func renderForm(inputs []textinput.Model, focus int, title string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title) + "\n\n")
	for i, in := range inputs {
		label := LabelStyle.Render(fieldLabels[i])
		if i == focus {
			label = FocusedLabelStyle.Render(fieldLabels[i])
		}
		b.WriteString("  " + label + "\n")
		b.WriteString("  " + InputBorderStyle.Render(in.View()) + "\n")
	}
	b.WriteString("\n" + HelpStyle.Render("  Tab/Shift+Tab: move | Enter: save | Esc: cancel"))
	return b.String()
}
