package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debugLogf appends one line to the debug log. No-op unless both
// CLAIMGUIDE_TUI_DEBUG and CLAIMGUIDE_TUI_DEBUG_LOG are set.
func (m *appModel) debugLogf(format string, args ...any) {
	if !m.debugEnabled || strings.TrimSpace(m.debugLogPath) == "" {
		return
	}
	f, err := os.OpenFile(m.debugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Keep compact but high-signal for diagnosing modifier keys.
func (m appModel) debugKeyMsg(k tea.KeyMsg) {
	if !m.debugEnabled {
		return
	}
	(&m).debugLogf("key step=%d focus=%d modal=%v str=%q type=%v alt=%v runes=%q",
		m.nav.Current(), m.focus, m.confirmRestart, k.String(), k.Type, k.Alt, string(k.Runes))
}
