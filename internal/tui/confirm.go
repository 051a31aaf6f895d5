package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

func modalBodyWidth(width int) int {
	w := width - 10
	if w > 60 {
		w = 60
	}
	if w < 24 {
		w = 24
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)
	titleLn := lipgloss.NewStyle().Bold(true).Foreground(colorAccent).
		Width(bodyW).Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(1, 2).
		Width(bodyW + 4)
	return box.Render(titleLn + "\n\n" + content)
}

// modalButton renders one confirm-modal button. No borders: nested bordered
// components can leave background artifacts on some terminals.
func modalButton(label string, active bool) string {
	st := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	if active {
		st = st.
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}
	return st.Render(label)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	bodyW := modalBodyWidth(width)

	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		modalButton(confirmLabel, focus == confirmFocusConfirm),
		lipgloss.NewStyle().Background(colorControlBg).Render(" "),
		modalButton(cancelLabel, focus == confirmFocusCancel),
	)

	content := strings.Join([]string{
		lipgloss.NewStyle().Width(bodyW).Render(body),
		"",
		controls,
		"",
		styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc/ctrl+g: cancel"),
	}, "\n")
	return renderModalBox(width, title, content)
}
