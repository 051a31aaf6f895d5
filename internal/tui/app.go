package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"claimguide/internal/model"
	"claimguide/internal/report"
	"claimguide/internal/wizard"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// presentDoneMsg reports the outcome of handing a generated report to the
// presenter (browser open or file write).
type presentDoneMsg struct {
	err error
}

type appModel struct {
	form      model.ClaimForm
	checklist model.Checklist
	nav       *wizard.Navigator

	// controls are rebuilt whenever the step changes or a reshaping
	// selector (residence, claim type) changes value. Form values live in
	// form, so rebuilt controls come back pre-seeded.
	controls []control
	focus    int

	viewport viewport.Model

	width  int
	height int
	// The first WindowSizeMsg is initial sizing, not a user resize.
	seenWindowSize bool

	confirmRestart bool
	confirmSel     confirmModalFocus

	minibuffer string

	debugEnabled bool
	debugLogPath string

	presenter report.Presenter
}

func newAppModel() appModel {
	m := appModel{
		checklist: model.Checklist{},
		nav:       wizard.NewNavigator(),
		viewport:  viewport.New(0, 0),
		presenter: report.BrowserPresenter{},
	}
	if strings.TrimSpace(os.Getenv("CLAIMGUIDE_TUI_DEBUG")) != "" {
		m.debugEnabled = true
	}
	m.debugLogPath = strings.TrimSpace(os.Getenv("CLAIMGUIDE_TUI_DEBUG_LOG"))
	m.rebuildControls(true)
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// rebuildControls recomputes the current step's controls. resetFocus moves
// focus to the first control (step change); otherwise the old focus index is
// clamped so a reshaping selector keeps focus in place.
func (m *appModel) rebuildControls(resetFocus bool) {
	old := m.focus
	m.controls = buildControls(m.nav.Step(), &m.form)
	if len(m.controls) == 0 {
		m.focus = -1
		m.refreshContent()
		return
	}
	if resetFocus || old < 0 {
		m.focus = 0
	} else if old >= len(m.controls) {
		m.focus = len(m.controls) - 1
	} else {
		m.focus = old
	}
	m.controls[m.focus].focus()
	m.refreshContent()
}

func (m *appModel) moveFocus(delta int) {
	if len(m.controls) == 0 {
		return
	}
	if m.focus >= 0 {
		m.controls[m.focus].blur()
	}
	m.focus += delta
	if m.focus < 0 {
		m.focus = len(m.controls) - 1
	}
	if m.focus >= len(m.controls) {
		m.focus = 0
	}
	m.controls[m.focus].focus()
	m.refreshContent()
	m.ensureFocusVisible()
}

func (m *appModel) gotoStep(fn func() bool) {
	if !fn() {
		return
	}
	m.rebuildControls(true)
	m.viewport.GotoTop()
}

func (m *appModel) restart() {
	m.form = model.ClaimForm{}
	m.checklist = model.Checklist{}
	m.nav = wizard.NewNavigator()
	m.rebuildControls(true)
	m.viewport.GotoTop()
	m.minibuffer = "Starting over. Previous answers were discarded."
}

func (m appModel) focusedControl() *control {
	if m.focus < 0 || m.focus >= len(m.controls) {
		return nil
	}
	return &m.controls[m.focus]
}

func (m *appModel) generateReport() tea.Cmd {
	r := report.Generate(m.form, m.checklist, time.Now())
	doc := report.RenderHTML(r)
	p := m.presenter
	return func() tea.Msg {
		return presentDoneMsg{err: p.Present(doc)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.viewport.Width = m.bodyWidth()
		m.viewport.Height = m.bodyHeight()
		m.refreshContent()
		return m, nil

	case presentDoneMsg:
		if msg.err != nil {
			m.minibuffer = "Report: " + msg.err.Error()
		} else {
			m.minibuffer = "Report generated."
		}
		return m, nil

	case tea.KeyMsg:
		m.debugKeyMsg(msg)
		m.minibuffer = ""

		if m.confirmRestart {
			return m.updateConfirm(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+n", "pgdown":
			m.gotoStep(m.nav.Next)
			return m, nil
		case "ctrl+p", "pgup":
			m.gotoStep(m.nav.Back)
			return m, nil
		case "tab":
			m.moveFocus(1)
			return m, nil
		case "shift+tab":
			m.moveFocus(-1)
			return m, nil
		}

		c := m.focusedControl()

		// Printable keys belong to a focused text widget.
		if c != nil && c.editsText() {
			switch msg.String() {
			case "enter":
				if c.kind == controlText {
					m.moveFocus(1)
					return m, nil
				}
			case "esc":
				c.blur()
				m.focus = -1
				m.refreshContent()
				return m, nil
			}
			var cmd tea.Cmd
			switch c.kind {
			case controlText:
				c.input, cmd = c.input.Update(msg)
				c.set(&m.form, c.input.Value())
			case controlArea:
				c.area, cmd = c.area.Update(msg)
				c.set(&m.form, c.area.Value())
			}
			m.refreshContent()
			return m, cmd
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			n, _ := strconv.Atoi(msg.String())
			// Leaving the summary for the very beginning means starting
			// over, which discards answers, so it gets the same confirm
			// as an explicit restart.
			if m.nav.IsLast() && n == 1 {
				m.confirmRestart = true
				m.confirmSel = confirmFocusCancel
				return m, nil
			}
			m.gotoStep(func() bool { return m.nav.JumpTo(n - 1) })
			return m, nil
		case "g":
			if m.nav.Step().ID == wizard.StepSummary {
				m.minibuffer = "Generating report…"
				return m, m.generateReport()
			}
		case "r":
			if m.nav.Step().ID == wizard.StepSummary {
				m.confirmRestart = true
				m.confirmSel = confirmFocusCancel
				return m, nil
			}
		}

		if c != nil && c.kind == controlChoice {
			switch msg.String() {
			case "left", "right", " ":
				delta := 1
				if msg.String() == "left" {
					delta = -1
				}
				c.cycleChoice(&m.form, delta)
				if c.reshapes {
					m.rebuildControls(false)
				} else {
					m.refreshContent()
				}
				return m, nil
			}
		}
		if c != nil && c.kind == controlCheck {
			switch msg.String() {
			case " ", "enter":
				m.checklist.Toggle(c.docKey)
				m.refreshContent()
				return m, nil
			case "up", "k":
				m.moveFocus(-1)
				return m, nil
			case "down", "j":
				m.moveFocus(1)
				return m, nil
			}
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmSel == confirmFocusConfirm {
			m.confirmSel = confirmFocusCancel
		} else {
			m.confirmSel = confirmFocusConfirm
		}
	case "enter":
		confirmed := m.confirmSel == confirmFocusConfirm
		m.confirmRestart = false
		if confirmed {
			m.restart()
		}
	case "esc", "ctrl+g":
		m.confirmRestart = false
	}
	return *m, nil
}

func (m appModel) bodyWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m appModel) bodyHeight() int {
	// Header is four lines, footer two; keep a sane floor for tiny terms.
	h := m.height - 7
	if h < 6 {
		h = 6
	}
	return h
}

// refreshContent re-renders the current step into the viewport, keeping the
// scroll position except when the content shrank past it.
func (m *appModel) refreshContent() {
	content, _ := m.stepBody()
	m.viewport.SetContent(content)
}

// ensureFocusVisible scrolls the viewport so the focused control's first
// line is on screen.
func (m *appModel) ensureFocusVisible() {
	if m.focus < 0 {
		return
	}
	_, offsets := m.stepBody()
	if m.focus >= len(offsets) {
		return
	}
	line := offsets[m.focus]
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if bottom := m.viewport.YOffset + m.viewport.Height - 1; line > bottom {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// stepBody renders the current step's body and returns the starting line of
// each control within it.
func (m appModel) stepBody() (string, []int) {
	w := m.bodyWidth()
	step := m.nav.Step()

	var intro string
	switch step.ID {
	case wizard.StepWelcome:
		intro = renderMarkdown(welcomeMarkdown, w)
	case wizard.StepChecklist:
		intro = renderMarkdown(checklistIntroMarkdown, w)
	case wizard.StepMedical:
		intro = renderMarkdown(medicalExplainerMarkdown(m.form), w)
	case wizard.StepAttachments:
		intro = renderMarkdown(attachmentsMarkdown(m.form), w)
	case wizard.StepSummary:
		intro = renderMarkdown(summaryMarkdown(m.form, m.checklist), w)
	}

	var b strings.Builder
	var offsets []int
	lines := 0
	writePart := func(s string) {
		if b.Len() > 0 {
			b.WriteString("\n")
			lines++
		}
		b.WriteString(s)
		lines += strings.Count(s, "\n") + 1
	}

	if intro != "" {
		writePart(intro)
	}
	for i := range m.controls {
		offsets = append(offsets, lines)
		c := &m.controls[i]
		writePart(c.render(&m.form, m.checklist, i == m.focus, w))
		// Checklist rows read better packed; forms breathe.
		if c.kind != controlCheck {
			writePart("")
		}
	}
	return b.String(), offsets
}

func (m appModel) headerView() string {
	step := m.nav.Step()
	w := m.bodyWidth()

	title := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
		Render(fmt.Sprintf("Step %d of %d: %s", m.nav.Current()+1, len(wizard.Steps), step.Title))

	sub := ""
	if step.Subtitle != "" {
		sub = styleChrome().Render(truncateLine(step.Subtitle, w))
	}

	dots := make([]string, 0, len(wizard.Steps))
	for i := range wizard.Steps {
		if i == m.nav.Current() {
			dots = append(dots, styleAccent().Render(glyphDotCurrent()))
		} else {
			dots = append(dots, styleMuted().Render(glyphDot()))
		}
	}
	barW := w - len(wizard.Steps)*2 - 4
	if barW < 10 {
		barW = 10
	}
	progress := strings.Join(dots, " ") + "  " + barLine(barW, m.nav.ProgressPercent())

	return strings.Join([]string{title, sub, progress, ""}, "\n")
}

func (m appModel) footerView() string {
	step := m.nav.Step()
	parts := []string{"ctrl+n/ctrl+p: next/back", "1-9: jump"}
	switch {
	case step.ID == wizard.StepSummary:
		parts = append(parts, "g: report", "r: start over")
	case step.ID == wizard.StepChecklist:
		parts = append(parts, "space: mark", "↑/↓: move")
	case step.Kind == wizard.StepForm:
		parts = append(parts, "tab: next field")
	}
	parts = append(parts, "ctrl+c: quit")
	sep := " " + glyphBullet() + " "
	help := styleMuted().Render(truncateLine(strings.Join(parts, sep), m.bodyWidth()))

	if m.minibuffer != "" {
		return styleStatusBar().Render(truncateLine(m.minibuffer, m.bodyWidth()-2)) + "\n" + help
	}
	return "\n" + help
}

func (m appModel) View() string {
	if !m.seenWindowSize {
		return "Loading…"
	}

	vp := m.viewport
	body := vp.View()

	screen := strings.Join([]string{m.headerView(), body, m.footerView()}, "\n")

	if m.confirmRestart {
		modal := renderConfirmModal(m.bodyWidth(),
			"Start over?",
			"All answers and checklist marks will be erased.",
			"Start over", "Stay here", m.confirmSel)
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return screen
}
