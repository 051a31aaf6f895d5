package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncateLine cuts a styled line to width columns (ANSI-aware), appending an
// ellipsis when something was dropped.
func truncateLine(ln string, width int) string {
	if width <= 0 {
		return ""
	}
	if xansi.StringWidth(ln) <= width {
		return ln
	}
	if width == 1 {
		return xansi.Cut(ln, 0, 1)
	}
	return xansi.Cut(ln, 0, width-1) + "…"
}

// fitLines forces every line of s to at most width columns so viewport
// content never wraps unexpectedly.
func fitLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		// Fast path: skip width computation for short raw strings.
		if len(ln) <= width {
			continue
		}
		lines[i] = truncateLine(ln, width)
	}
	return strings.Join(lines, "\n")
}

// barLine renders a progress bar of the given width with pct in [0,100].
func barLine(width int, pct float64) string {
	if width < 1 {
		width = 1
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return styleAccent().Render(strings.Repeat(glyphBarFull(), filled)) +
		styleMuted().Render(strings.Repeat(glyphBarEmpty(), width-filled))
}
