package wizard

// Navigator tracks the current position in the step sequence. All moves are
// bounds-clamped index mutations; there are no error conditions.
type Navigator struct {
	current int
}

// NewNavigator starts at the first step.
func NewNavigator() *Navigator { return &Navigator{} }

// Current returns the current step index.
func (n *Navigator) Current() int { return n.current }

// Step returns the current step definition.
func (n *Navigator) Step() Step { return Steps[n.current] }

// Next advances one step. At the last step it is a no-op. Returns whether
// the position changed (callers reset the content scroll on movement).
func (n *Navigator) Next() bool {
	if n.current >= len(Steps)-1 {
		return false
	}
	n.current++
	return true
}

// Back retreats one step; no-op at the first step.
func (n *Navigator) Back() bool {
	if n.current <= 0 {
		return false
	}
	n.current--
	return true
}

// JumpTo sets the position unconditionally when the index is in range.
// Out-of-range indices are ignored. Confirmation for jumping home from the
// terminal step is a UI concern, not a navigator one.
func (n *Navigator) JumpTo(i int) bool {
	if i < 0 || i >= len(Steps) {
		return false
	}
	n.current = i
	return true
}

// IsFirst reports whether we are at the first step.
func (n *Navigator) IsFirst() bool { return n.current == 0 }

// IsLast reports whether we are at the terminal step.
func (n *Navigator) IsLast() bool { return n.current == len(Steps)-1 }

// ProgressPercent is 0 on the first step, 100 on the last, linear between.
// len(Steps) >= 2 is a registry invariant, so the division is safe.
func (n *Navigator) ProgressPercent() float64 {
	return float64(n.current) / float64(len(Steps)-1) * 100
}
