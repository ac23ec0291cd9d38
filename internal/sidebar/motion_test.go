package sidebar

import (
	"testing"

	"github.com/tinytelemetry/pulse/internal/model"
)

func runToRest(t *testing.T, m *Motion) int {
	t.Helper()

	frames := 0
	for m.Step() {
		frames++
		if frames > 10_000 {
			t.Fatal("animation did not settle")
		}
	}
	return frames
}

func TestMotion_StartsSettledExpanded(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: true})
	if m.Animating() {
		t.Fatal("new motion should be settled")
	}
	if got := m.Width(); got != model.ExpandedWidth {
		t.Fatalf("width = %d, want %d", got, model.ExpandedWidth)
	}
	if !m.TextVisible() {
		t.Fatal("text should be visible when expanded")
	}
}

func TestMotion_CollapseHidesTextImmediately(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: true})
	if !m.Retarget(false) {
		t.Fatal("collapse should schedule frames")
	}
	if m.TextVisible() {
		t.Fatal("text must hide as soon as collapse starts")
	}

	frames := runToRest(t, m)
	if frames == 0 {
		t.Fatal("expected at least one frame")
	}
	if got := m.Width(); got != model.CollapsedWidth {
		t.Fatalf("width = %d, want %d", got, model.CollapsedWidth)
	}
	if m.TextVisible() {
		t.Fatal("text visible after collapse settled")
	}
}

func TestMotion_ExpandRevealsTextAfterWidthCatchesUp(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: true})
	m.Retarget(false)
	runToRest(t, m)

	m.Retarget(true)
	if m.TextVisible() {
		t.Fatal("text should stay hidden at the start of expand")
	}

	for m.Step() {
		if m.TextVisible() && m.Width() < model.ExpandedWidth-1 {
			t.Fatalf("text visible at width %d", m.Width())
		}
	}
	if got := m.Width(); got != model.ExpandedWidth {
		t.Fatalf("width = %d, want %d", got, model.ExpandedWidth)
	}
	if !m.TextVisible() {
		t.Fatal("text hidden after expand settled")
	}
}

func TestMotion_WidthStaysInBounds(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: true, FrameRate: 30})
	for _, expanded := range []bool{false, true, false} {
		m.Retarget(expanded)
		for m.Step() {
			if w := m.Width(); w < model.CollapsedWidth || w > model.ExpandedWidth {
				t.Fatalf("width %d out of [%d, %d]", w, model.CollapsedWidth, model.ExpandedWidth)
			}
		}
	}
}

func TestMotion_RetargetMidFlight(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: true})
	m.Retarget(false)
	for i := 0; i < 3; i++ {
		m.Step()
	}
	m.Retarget(true)
	runToRest(t, m)

	if got := m.Width(); got != model.ExpandedWidth {
		t.Fatalf("width = %d, want %d", got, model.ExpandedWidth)
	}
}

func TestMotion_DisabledSnaps(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: false})
	if m.Retarget(false) {
		t.Fatal("disabled motion should not schedule frames")
	}
	if got := m.Width(); got != model.CollapsedWidth {
		t.Fatalf("width = %d, want %d", got, model.CollapsedWidth)
	}
	if m.Step() {
		t.Fatal("disabled motion stepped")
	}
}

func TestMotion_VisibilityMatchesStateWhenSettled(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	m := NewMotion(MotionOptions{Enabled: true})
	for i := 0; i < 6; i++ {
		m.Retarget(s.Toggle())
		runToRest(t, m)
		if m.TextVisible() != s.Expanded() {
			t.Fatalf("toggle %d: text visible = %v, expanded = %v", i, m.TextVisible(), s.Expanded())
		}
	}
}

func TestMotion_Settle(t *testing.T) {
	t.Parallel()

	m := NewMotion(MotionOptions{Enabled: true})
	m.Retarget(false)
	m.Step()
	m.Settle()
	if m.Animating() || m.Width() != model.CollapsedWidth {
		t.Fatalf("settle left animating=%v width=%d", m.Animating(), m.Width())
	}
}
