package wizard

import "testing"

func TestNavigator_NextBackBounds(t *testing.T) {
	n := NewNavigator()
	if !n.IsFirst() {
		t.Fatalf("expected new navigator on first step")
	}
	if n.Back() {
		t.Fatalf("Back on first step should be a no-op")
	}
	if n.Current() != 0 {
		t.Fatalf("Back must not move; got %d", n.Current())
	}

	for i := 0; i < len(Steps)-1; i++ {
		if !n.Next() {
			t.Fatalf("Next failed at step %d", i)
		}
	}
	if !n.IsLast() {
		t.Fatalf("expected last step after %d Nexts; at %d", len(Steps)-1, n.Current())
	}
	if n.Next() {
		t.Fatalf("Next on last step should be a no-op")
	}
	if n.Current() != len(Steps)-1 {
		t.Fatalf("Next must not move past end; got %d", n.Current())
	}
}

func TestNavigator_JumpTo(t *testing.T) {
	n := NewNavigator()
	if !n.JumpTo(5) {
		t.Fatalf("in-range jump should succeed")
	}
	if n.Current() != 5 {
		t.Fatalf("expected step 5, got %d", n.Current())
	}
	if n.JumpTo(-1) || n.JumpTo(len(Steps)) {
		t.Fatalf("out-of-range jump should fail")
	}
	if n.Current() != 5 {
		t.Fatalf("failed jump must not move; got %d", n.Current())
	}
	// Backward jumps are always allowed.
	if !n.JumpTo(0) {
		t.Fatalf("jump back to start should succeed")
	}
}

func TestNavigator_ProgressPercent(t *testing.T) {
	n := NewNavigator()
	if got := n.ProgressPercent(); got != 0 {
		t.Fatalf("expected 0%% at start, got %v", got)
	}
	n.JumpTo(len(Steps) - 1)
	if got := n.ProgressPercent(); got != 100 {
		t.Fatalf("expected 100%% at end, got %v", got)
	}
	n.JumpTo(4)
	want := float64(4) / float64(len(Steps)-1) * 100
	if got := n.ProgressPercent(); got != want {
		t.Fatalf("expected %v%% at step 4, got %v", want, got)
	}
}

func TestIndexOf(t *testing.T) {
	if got := IndexOf(StepWelcome); got != 0 {
		t.Fatalf("welcome should be first, got %d", got)
	}
	if got := IndexOf(StepSummary); got != len(Steps)-1 {
		t.Fatalf("summary should be last, got %d", got)
	}
	if got := IndexOf(StepID("nope")); got != -1 {
		t.Fatalf("unknown id should give -1, got %d", got)
	}
}
