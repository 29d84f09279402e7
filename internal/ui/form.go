package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/keysummon/keysummon/internal/ui/styles"
)

// form is a simple labeled-input dialog. Boolean fields use y/n text.
type form struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	err    string
	// submit receives the field values in label order and returns a command
	// that performs the save.
	submit func(values []string) tea.Cmd
}

// newForm creates a form with one input per label, prefilled with values.
func newForm(title string, labels, values []string, submit func([]string) tea.Cmd) *form {
	inputs := make([]textinput.Model, len(labels))
	for i := range labels {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 512
		if i < len(values) {
			in.SetValue(values[i])
		}
		inputs[i] = in
	}
	if len(inputs) > 0 {
		inputs[0].Focus()
	}
	return &form{
		title:  title,
		labels: labels,
		inputs: inputs,
		submit: submit,
	}
}

// Update handles form key input. It returns false when the form was closed.
func (f *form) Update(msg tea.Msg) (tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg), true
	}

	switch keyMsg.String() {
	case "esc":
		return nil, false
	case "enter":
		values := make([]string, len(f.inputs))
		for i := range f.inputs {
			values[i] = strings.TrimSpace(f.inputs[i].Value())
		}
		return f.submit(values), true
	case "tab", "down":
		f.setFocus(f.focus + 1)
		return nil, true
	case "shift+tab", "up":
		f.setFocus(f.focus - 1)
		return nil, true
	}
	return f.updateInputs(msg), true
}

func (f *form) setFocus(i int) {
	if len(f.inputs) == 0 {
		return
	}
	if i < 0 {
		i = len(f.inputs) - 1
	}
	if i >= len(f.inputs) {
		i = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *form) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders the form.
func (f *form) View() string {
	var b strings.Builder
	b.WriteString(styles.PanelTitleFocused.Render(f.title))
	b.WriteString("\n\n")
	for i := range f.labels {
		label := styles.FormLabel
		if i == f.focus {
			label = styles.FormLabelFocused
		}
		b.WriteString(label.Render(f.labels[i] + ": "))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(styles.FormError.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.MsgInfo.Render("enter save · esc cancel · tab next field"))
	return b.String()
}

// boolField parses a y/n form value; empty means false.
func boolField(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "y", "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}

// boolValue renders a bool as a y/n form value.
func boolValue(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
