package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"retaildash/internal/validate"
)

// Field declares one form input.
type Field struct {
	Key   string
	Label string
}

// formAction is the outcome of routing a keystroke into a form.
type formAction int

const (
	formNone formAction = iota
	formCancel
	formSubmit
)

// Form is a vertical stack of labelled text inputs with inline validation
// messages. Validation failures stay in the form; they never become
// toasts.
type Form struct {
	title  string
	fields []Field
	inputs []textinput.Model
	errs   map[string]string
	focus  int
	rules  validate.RuleSet
}

// NewForm creates a form with the first field focused.
func NewForm(title string, fields []Field, rules validate.RuleSet) *Form {
	f := &Form{
		title:  title,
		fields: fields,
		errs:   make(map[string]string),
		rules:  rules,
	}
	for i := range fields {
		in := textinput.New()
		in.CharLimit = 64
		in.Prompt = "> "
		if i == 0 {
			in.Focus()
		}
		f.inputs = append(f.inputs, in)
	}
	return f
}

// SetValues preloads field values (edit flows).
func (f *Form) SetValues(values map[string]string) {
	for i, field := range f.fields {
		if v, ok := values[field.Key]; ok {
			f.inputs[i].SetValue(v)
		}
	}
}

// Values returns the current field values keyed by field key.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		out[field.Key] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

// Update routes one keystroke. Enter on the last field (or ctrl+s
// anywhere) validates and submits; Esc cancels.
func (f *Form) Update(msg tea.KeyMsg) (formAction, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return formCancel, nil
	case "ctrl+s":
		return f.submit()
	case "enter":
		if f.focus == len(f.inputs)-1 {
			return f.submit()
		}
		return formNone, f.setFocus(f.focus + 1)
	case "tab", "down":
		return formNone, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return formNone, f.setFocus(f.focus - 1)
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formNone, cmd
}

// submit validates and either signals submission or records the first
// failing message per field for inline display.
func (f *Form) submit() (formAction, tea.Cmd) {
	res := f.rules.Validate(f.Values())
	f.errs = res.Errors
	if !res.OK {
		return formNone, nil
	}
	return formSubmit, nil
}

func (f *Form) setFocus(i int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

// View renders the form with inline errors under their fields.
func (f *Form) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(f.title) + "\n\n")
	for i, field := range f.fields {
		b.WriteString(Styles.FieldLabel.Render(field.Label) + "\n")
		b.WriteString(f.inputs[i].View() + "\n")
		if msg, ok := f.errs[field.Key]; ok {
			b.WriteString(Styles.FieldError.Render("  "+msg) + "\n")
		}
	}
	b.WriteString("\n" + Styles.Hint.Render("Enter: next/save  ctrl+s: save  Esc: cancel"))
	return b.String()
}
