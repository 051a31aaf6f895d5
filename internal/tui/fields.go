package tui

import (
	"strings"

	"claimguide/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

type controlKind int

const (
	controlText controlKind = iota
	controlArea
	controlChoice
	controlCheck
)

type choiceOption struct {
	value string
	label string
	desc  string
}

// control is one interactive element on a form-bearing (or checklist) step.
// Text widgets own their edit state; the bound form field is written back on
// every keystroke so the form is always current.
type control struct {
	kind     controlKind
	label    string
	required bool
	hint     string

	input textinput.Model
	area  textarea.Model

	options []choiceOption

	get func(*model.ClaimForm) string
	set func(*model.ClaimForm, string)

	docKey model.DocKey

	// reshapes marks selector controls (residence/claim type) whose value
	// changes which sections are visible; changing them rebuilds the step's
	// control list.
	reshapes bool
}

func newTextControl(label string, required bool, placeholder string,
	get func(*model.ClaimForm) string, set func(*model.ClaimForm, string)) control {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 40
	return control{kind: controlText, label: label, required: required, input: in, get: get, set: set}
}

func newAreaControl(label string, required bool, placeholder string,
	get func(*model.ClaimForm) string, set func(*model.ClaimForm, string)) control {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.SetWidth(64)
	ta.SetHeight(5)
	ta.ShowLineNumbers = false
	return control{kind: controlArea, label: label, required: required, area: ta, get: get, set: set}
}

func newChoiceControl(label string, required bool, options []choiceOption,
	get func(*model.ClaimForm) string, set func(*model.ClaimForm, string)) control {
	return control{kind: controlChoice, label: label, required: required, options: options, get: get, set: set}
}

func newCheckControl(key model.DocKey, label string) control {
	return control{kind: controlCheck, label: label, docKey: key}
}

// seed loads the bound form value into the widget. Called when a step's
// controls are (re)built so hidden-then-revealed fields come back with their
// retained values.
func (c *control) seed(f *model.ClaimForm) {
	if c.get == nil {
		return
	}
	switch c.kind {
	case controlText:
		c.input.SetValue(c.get(f))
	case controlArea:
		c.area.SetValue(c.get(f))
	}
}

func (c *control) focus() {
	switch c.kind {
	case controlText:
		c.input.Focus()
	case controlArea:
		c.area.Focus()
	}
}

func (c *control) blur() {
	switch c.kind {
	case controlText:
		c.input.Blur()
	case controlArea:
		c.area.Blur()
	}
}

// editsText reports whether the control consumes printable keys when focused.
func (c *control) editsText() bool {
	return c.kind == controlText || c.kind == controlArea
}

// choiceIndex returns the selected option index, or -1.
func (c *control) choiceIndex(f *model.ClaimForm) int {
	if c.kind != controlChoice || c.get == nil {
		return -1
	}
	v := c.get(f)
	for i, opt := range c.options {
		if opt.value == v {
			return i
		}
	}
	return -1
}

// cycleChoice selects the next (or previous) option and writes it back.
func (c *control) cycleChoice(f *model.ClaimForm, delta int) {
	if c.kind != controlChoice || len(c.options) == 0 {
		return
	}
	i := c.choiceIndex(f)
	i += delta
	if i < 0 {
		i = len(c.options) - 1
	}
	if i >= len(c.options) {
		i = 0
	}
	c.set(f, c.options[i].value)
}

// render draws the control, highlighting it when focused.
func (c *control) render(f *model.ClaimForm, checklist model.Checklist, focused bool, width int) string {
	var b strings.Builder

	if c.kind != controlCheck {
		label := c.label
		if c.required {
			label += styleWarn().Render(" *")
		}
		st := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg)
		if focused {
			st = st.Foreground(colorAccent)
		}
		b.WriteString(st.Render(label))
		b.WriteString("\n")
	}

	switch c.kind {
	case controlText:
		b.WriteString(c.input.View())
	case controlArea:
		b.WriteString(c.area.View())
	case controlChoice:
		sel := c.choiceIndex(f)
		rows := make([]string, 0, len(c.options))
		for i, opt := range c.options {
			mark := glyphRadioOff()
			st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
			if i == sel {
				mark = glyphRadioOn()
				st = styleAccent()
			}
			row := "  " + mark + " " + st.Render(opt.label)
			if opt.desc != "" {
				row += "\n      " + styleMuted().Render(opt.desc)
			}
			rows = append(rows, row)
		}
		b.WriteString(strings.Join(rows, "\n"))
		if focused {
			b.WriteString("\n" + styleMuted().Render("  space/←/→: choose"))
		}
	case controlCheck:
		mark := glyphUnchecked()
		st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
		if checklist.Have(c.docKey) {
			mark = styleOK().Render(glyphChecked())
			st = styleMuted().Strikethrough(true)
		}
		row := mark + " " + st.Render(c.label)
		if focused {
			row = styleAccent().Render("> ") + row
		} else {
			row = "  " + row
		}
		b.WriteString(row)
	}

	if c.hint != "" {
		b.WriteString("\n" + styleMuted().Render(c.hint))
	}

	return fitLines(b.String(), width)
}
