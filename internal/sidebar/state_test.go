package sidebar

import (
	"errors"
	"testing"

	"github.com/tinytelemetry/pulse/internal/model"
)

func activeCount(s *State) int {
	n := 0
	for _, e := range s.Entries() {
		if s.IsActive(e.Label) {
			n++
		}
	}
	return n
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	if !s.Expanded() {
		t.Fatal("expected sidebar to start expanded")
	}
	if got := s.Active(); got != "Overview" {
		t.Fatalf("active = %q, want Overview", got)
	}
	if got := s.ToggleLabel(); got != "Collapse sidebar" {
		t.Fatalf("toggle label = %q, want Collapse sidebar", got)
	}
}

func TestNew_PanicsOnDuplicateLabels(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for duplicate labels")
		}
	}()
	New([]model.NavEntry{{Label: "A"}, {Label: "A"}})
}

func TestToggle_Parity(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 9; n++ {
		s := New(model.NavEntries())
		initial := s.Expanded()
		for i := 0; i < n; i++ {
			s.Toggle()
		}
		want := initial != (n%2 == 1)
		if got := s.Expanded(); got != want {
			t.Fatalf("after %d toggles expanded = %v, want %v", n, got, want)
		}
		if got := s.Active(); got != "Overview" {
			t.Fatalf("toggle changed active entry to %q", got)
		}
	}
}

func TestToggle_LabelFollowsState(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	s.Toggle()
	if got := s.ToggleLabel(); got != "Expand sidebar" {
		t.Fatalf("toggle label = %q, want Expand sidebar", got)
	}
	if got := s.ToggleAction(); got != "expand" {
		t.Fatalf("toggle action = %q, want expand", got)
	}
}

func TestSelect_EveryEntryExactlyOneActive(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	for i, e := range model.NavEntries() {
		if _, err := s.Select(e.Label); err != nil {
			t.Fatalf("select %q: %v", e.Label, err)
		}
		if got := s.Active(); got != e.Label {
			t.Fatalf("active = %q, want %q", got, e.Label)
		}
		if got := s.ActiveIndex(); got != i {
			t.Fatalf("active index = %d, want %d", got, i)
		}
		if got := activeCount(s); got != 1 {
			t.Fatalf("active entries = %d, want 1", got)
		}
	}
}

func TestSelect_ReselectIsNoop(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	if _, err := s.Select("Teams"); err != nil {
		t.Fatalf("select: %v", err)
	}
	expanded := s.Expanded()

	changed, err := s.Select(s.Active())
	if err != nil {
		t.Fatalf("reselect: %v", err)
	}
	if changed {
		t.Fatal("reselecting the active entry reported a change")
	}
	if s.Active() != "Teams" || s.Expanded() != expanded {
		t.Fatalf("state changed on reselect: active=%q expanded=%v", s.Active(), s.Expanded())
	}
}

func TestSelect_UnknownLabelRejected(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	_, err := s.Select("Billing")
	if !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("err = %v, want ErrUnknownEntry", err)
	}
	if got := s.Active(); got != "Overview" {
		t.Fatalf("active = %q after rejected select, want Overview", got)
	}

	if _, err := s.SelectIndex(8); !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("select index 8 err = %v, want ErrUnknownEntry", err)
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	s, err := Restore(model.NavEntries(), false, "Messages")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if s.Expanded() || s.Active() != "Messages" {
		t.Fatalf("restored expanded=%v active=%q", s.Expanded(), s.Active())
	}

	s, err = Restore(model.NavEntries(), true, "")
	if err != nil {
		t.Fatalf("restore default: %v", err)
	}
	if s.Active() != "Overview" {
		t.Fatalf("default active = %q, want Overview", s.Active())
	}

	if _, err := Restore(model.NavEntries(), true, "nope"); !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("restore unknown err = %v, want ErrUnknownEntry", err)
	}
}

func TestScenario_SelectMessagesThenToggleTwice(t *testing.T) {
	t.Parallel()

	s := New(model.NavEntries())
	m := NewMotion(MotionOptions{Enabled: false})

	if _, err := s.Select("Messages"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !s.ActiveEntry().HasBadge() || !m.TextVisible() {
		t.Fatal("expected Messages badge visible while expanded")
	}

	m.Retarget(s.Toggle())
	if s.Expanded() || m.TextVisible() {
		t.Fatal("expected collapsed sidebar with hidden text")
	}

	m.Retarget(s.Toggle())
	if !s.Expanded() || !m.TextVisible() {
		t.Fatal("expected expanded sidebar with visible text")
	}
	if got := s.Active(); got != "Messages" {
		t.Fatalf("active = %q, want Messages", got)
	}
}
