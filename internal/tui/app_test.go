package tui

import (
	"errors"
	"strings"
	"testing"

	"claimguide/internal/model"
	"claimguide/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() appModel {
	m := newAppModel()
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(appModel)
}

func press(t *testing.T, m appModel, msg tea.KeyMsg) appModel {
	t.Helper()
	mm, _ := m.Update(msg)
	return mm.(appModel)
}

func pressRunes(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestUpdate_StepNavigation(t *testing.T) {
	m := newTestModel()
	if m.nav.Current() != 0 {
		t.Fatalf("expected start on first step, got %d", m.nav.Current())
	}

	m = press(t, m, key(tea.KeyCtrlN))
	if m.nav.Current() != 1 {
		t.Fatalf("ctrl+n should advance, got %d", m.nav.Current())
	}
	m = press(t, m, key(tea.KeyCtrlP))
	m = press(t, m, key(tea.KeyCtrlP))
	if m.nav.Current() != 0 {
		t.Fatalf("ctrl+p on first step must stay put, got %d", m.nav.Current())
	}
}

func TestUpdate_DigitJumpFromInfoStep(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "9")
	if m.nav.Step().ID != wizard.StepSummary {
		t.Fatalf("expected summary after jump, got %q", m.nav.Step().ID)
	}
	m = pressRunes(t, m, "5")
	if m.nav.Step().ID != wizard.StepResidence {
		t.Fatalf("expected residence after jump back, got %q", m.nav.Step().ID)
	}
	m = pressRunes(t, m, "1")
	if m.nav.Step().ID != wizard.StepWelcome {
		t.Fatalf("expected welcome after jump, got %q", m.nav.Step().ID)
	}
}

func TestUpdate_JumpToStartFromSummaryNeedsConfirm(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "9")
	m = pressRunes(t, m, "1")
	if !m.confirmRestart {
		t.Fatalf("jumping to the first step from the summary should ask first")
	}
	if m.nav.Step().ID != wizard.StepSummary {
		t.Fatalf("navigation must wait for the confirm, at %q", m.nav.Step().ID)
	}
	m = press(t, m, key(tea.KeyTab))
	m = press(t, m, key(tea.KeyEnter))
	if m.nav.Current() != 0 {
		t.Fatalf("confirmed jump should land on the first step, got %d", m.nav.Current())
	}
}

func TestUpdate_DigitsTypeIntoFocusedField(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "3") // personal details
	if m.nav.Step().ID != wizard.StepPersonal {
		t.Fatalf("expected personal step, got %q", m.nav.Step().ID)
	}
	// The first field has focus; digits are input, not navigation.
	m = pressRunes(t, m, "5")
	if m.nav.Step().ID != wizard.StepPersonal {
		t.Fatalf("digit should not navigate while a field has focus")
	}
	if m.form.LastName != "5" {
		t.Fatalf("digit should land in the focused field, form has %q", m.form.LastName)
	}
}

func TestUpdate_TextEntryWritesThroughToForm(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "3")
	m = pressRunes(t, m, "Cohen")
	if m.form.LastName != "Cohen" {
		t.Fatalf("form.LastName = %q", m.form.LastName)
	}
	// enter moves to the next field.
	m = press(t, m, key(tea.KeyEnter))
	m = pressRunes(t, m, "Sara")
	if m.form.FirstName != "Sara" {
		t.Fatalf("form.FirstName = %q", m.form.FirstName)
	}
	// Values survive navigating away and back.
	m = press(t, m, key(tea.KeyCtrlN))
	m = press(t, m, key(tea.KeyCtrlP))
	if m.form.LastName != "Cohen" || m.form.FirstName != "Sara" {
		t.Fatalf("values lost on navigation: %q %q", m.form.LastName, m.form.FirstName)
	}
}

func TestUpdate_ChecklistToggle(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "2") // document checklist
	if len(m.controls) != 11 {
		t.Fatalf("expected 11 checklist rows, got %d", len(m.controls))
	}

	m = press(t, m, key(tea.KeySpace))
	if !m.checklist.Have(model.DocIDCopy) {
		t.Fatalf("space should mark the focused document")
	}
	m = press(t, m, key(tea.KeyDown))
	m = press(t, m, key(tea.KeySpace))
	if !m.checklist.Have(model.DocVoidedCheque) {
		t.Fatalf("second document not marked")
	}
	m = press(t, m, key(tea.KeySpace))
	if m.checklist.Have(model.DocVoidedCheque) {
		t.Fatalf("space should toggle off")
	}
}

func TestUpdate_ResidenceReshapeKeepsValues(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "5") // place of residence
	if len(m.controls) != 1 {
		t.Fatalf("expected only the selector before a choice, got %d controls", len(m.controls))
	}

	// First option: at home. Address fields appear.
	m = press(t, m, key(tea.KeySpace))
	if m.form.Residence != model.ResidenceHome {
		t.Fatalf("residence = %q", m.form.Residence)
	}
	if len(m.controls) != 5 {
		t.Fatalf("expected selector + 4 address fields, got %d", len(m.controls))
	}

	m = press(t, m, key(tea.KeyTab))
	m = pressRunes(t, m, "Herzl")
	if m.form.HomeStreet != "Herzl" {
		t.Fatalf("home street = %q", m.form.HomeStreet)
	}

	// Switch to assisted living: address fields hide, institution fields show.
	m = press(t, m, key(tea.KeyShiftTab))
	m = press(t, m, key(tea.KeyRight))
	if m.form.Residence != model.ResidenceAssisted {
		t.Fatalf("residence = %q", m.form.Residence)
	}
	if len(m.controls) != 4 {
		t.Fatalf("expected selector + 3 institution fields, got %d", len(m.controls))
	}
	if m.form.HomeStreet != "Herzl" {
		t.Fatalf("hidden field value must be retained, got %q", m.form.HomeStreet)
	}

	// Switch back: the street input comes back pre-seeded.
	m = press(t, m, key(tea.KeyLeft))
	if m.form.Residence != model.ResidenceHome {
		t.Fatalf("residence = %q", m.form.Residence)
	}
	street := m.controls[1]
	if street.input.Value() != "Herzl" {
		t.Fatalf("re-shown field not seeded, widget has %q", street.input.Value())
	}
}

func TestUpdate_RestartNeedsConfirmation(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "3")
	m = pressRunes(t, m, "Cohen")
	m = press(t, m, key(tea.KeyEsc)) // release the field before navigating
	m = pressRunes(t, m, "9")        // summary

	m = pressRunes(t, m, "r")
	if !m.confirmRestart {
		t.Fatalf("r on summary should open the confirm modal")
	}
	// Default focus is on cancel; enter keeps everything.
	m = press(t, m, key(tea.KeyEnter))
	if m.confirmRestart {
		t.Fatalf("modal should close on enter")
	}
	if m.form.LastName != "Cohen" || m.nav.Step().ID != wizard.StepSummary {
		t.Fatalf("cancel must not discard anything")
	}

	// Confirm path: tab moves to the confirm button.
	m = pressRunes(t, m, "r")
	m = press(t, m, key(tea.KeyTab))
	m = press(t, m, key(tea.KeyEnter))
	if m.form.LastName != "" {
		t.Fatalf("confirmed restart should clear the form, got %q", m.form.LastName)
	}
	if m.nav.Current() != 0 {
		t.Fatalf("confirmed restart should return to the first step, got %d", m.nav.Current())
	}

	// Esc also cancels.
	m = pressRunes(t, m, "9")
	m = pressRunes(t, m, "r")
	m = press(t, m, key(tea.KeyEsc))
	if m.confirmRestart {
		t.Fatalf("esc should close the modal")
	}
}

func TestUpdate_RestartOnlyOffersOnSummary(t *testing.T) {
	m := newTestModel()
	m = pressRunes(t, m, "r")
	if m.confirmRestart {
		t.Fatalf("r outside the summary should not open the modal")
	}
}

type recordingPresenter struct {
	docs *[]string
	err  error
}

func (p recordingPresenter) Present(htmlDoc string) error {
	*p.docs = append(*p.docs, htmlDoc)
	return p.err
}

func TestUpdate_GenerateReportFromSummary(t *testing.T) {
	var docs []string
	m := newTestModel()
	m.presenter = recordingPresenter{docs: &docs}

	m = pressRunes(t, m, "3")
	m = pressRunes(t, m, "Cohen")
	m = press(t, m, key(tea.KeyEsc))
	m = pressRunes(t, m, "9")

	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = mm.(appModel)
	if cmd == nil {
		t.Fatalf("g on summary should produce a command")
	}
	msg := cmd()
	done, ok := msg.(presentDoneMsg)
	if !ok {
		t.Fatalf("expected presentDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("present failed: %v", done.err)
	}
	if len(docs) != 1 || docs[0] == "" {
		t.Fatalf("expected one rendered document")
	}

	mm, _ = m.Update(done)
	m = mm.(appModel)
	if m.minibuffer != "Report generated." {
		t.Fatalf("minibuffer = %q", m.minibuffer)
	}
}

func TestUpdate_PresentFailureSurfaces(t *testing.T) {
	var docs []string
	m := newTestModel()
	m.presenter = recordingPresenter{docs: &docs, err: errors.New("no browser")}
	m = pressRunes(t, m, "9")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	done := cmd().(presentDoneMsg)
	if done.err == nil {
		t.Fatalf("presenter error should propagate")
	}
	mm, _ := m.Update(done)
	m = mm.(appModel)
	if m.minibuffer == "" {
		t.Fatalf("failure should be reported in the minibuffer")
	}
}

func TestUpdate_GenerateIgnoredOffSummary(t *testing.T) {
	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	if cmd != nil {
		t.Fatalf("g outside the summary should be inert")
	}
}

func TestFooter_HelpSeparatorFollowsGlyphSet(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	m := newTestModel()
	footer := m.footerView()
	if !strings.Contains(footer, " * ") {
		t.Fatalf("expected ascii bullet between help entries:\n%s", footer)
	}

	m.minibuffer = "Report generated."
	if !strings.Contains(m.footerView(), "Report generated.") {
		t.Fatalf("status message missing from footer")
	}
}

func TestView_RendersWithoutPanicking(t *testing.T) {
	m := newTestModel()
	for i := 0; i < len(wizard.Steps); i++ {
		if out := m.View(); out == "" {
			t.Fatalf("empty view on step %d", m.nav.Current())
		}
		m = press(t, m, key(tea.KeyCtrlN))
	}
	// Modal view.
	m = pressRunes(t, m, "r")
	if out := m.View(); out == "" {
		t.Fatalf("empty modal view")
	}
}
