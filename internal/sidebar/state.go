// Package sidebar holds the navigation panel's state machine and its width
// animation. Rendering lives with each front end.
package sidebar

import (
	"errors"
	"fmt"

	"github.com/tinytelemetry/pulse/internal/model"
)

// ErrUnknownEntry is returned when a label is not part of the catalog.
var ErrUnknownEntry = errors.New("unknown navigation entry")

const (
	toggleLabelCollapse = "Collapse sidebar"
	toggleLabelExpand   = "Expand sidebar"
)

// State is the sidebar's expanded flag and active entry. The active label
// always names an entry of the list the state was built with.
type State struct {
	entries  []model.NavEntry
	index    map[string]int
	expanded bool
	active   int
}

// New creates a state over entries, expanded with the first entry active.
// It panics on an empty or duplicated list since the catalog is fixed at
// build time.
func New(entries []model.NavEntry) *State {
	if len(entries) == 0 {
		panic("sidebar: empty entry list")
	}
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := index[e.Label]; dup {
			panic(fmt.Sprintf("sidebar: duplicate entry label %q", e.Label))
		}
		index[e.Label] = i
	}
	return &State{
		entries:  append([]model.NavEntry(nil), entries...),
		index:    index,
		expanded: true,
	}
}

// Restore creates a state from external input, validating active.
// An empty active keeps the default first entry.
func Restore(entries []model.NavEntry, expanded bool, active string) (*State, error) {
	s := New(entries)
	s.expanded = expanded
	if active == "" {
		return s, nil
	}
	if _, err := s.Select(active); err != nil {
		return nil, err
	}
	return s, nil
}

// Toggle flips between expanded and collapsed and returns the new value.
func (s *State) Toggle() bool {
	s.expanded = !s.expanded
	return s.expanded
}

// Select makes label the active entry. changed is false when label was
// already active. Unknown labels leave the state untouched.
func (s *State) Select(label string) (changed bool, err error) {
	idx, ok := s.index[label]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownEntry, label)
	}
	if idx == s.active {
		return false, nil
	}
	s.active = idx
	return true, nil
}

// SelectIndex selects the entry at position idx.
func (s *State) SelectIndex(idx int) (bool, error) {
	if idx < 0 || idx >= len(s.entries) {
		return false, fmt.Errorf("%w: index %d", ErrUnknownEntry, idx)
	}
	return s.Select(s.entries[idx].Label)
}

// Expanded reports whether the panel is expanded.
func (s *State) Expanded() bool { return s.expanded }

// Active returns the active entry's label.
func (s *State) Active() string { return s.entries[s.active].Label }

// ActiveIndex returns the active entry's position in the list.
func (s *State) ActiveIndex() int { return s.active }

// ActiveEntry returns the active entry.
func (s *State) ActiveEntry() model.NavEntry { return s.entries[s.active] }

// IsActive reports whether label is the active entry.
func (s *State) IsActive(label string) bool {
	idx, ok := s.index[label]
	return ok && idx == s.active
}

// Entries returns a copy of the entry list in display order.
func (s *State) Entries() []model.NavEntry {
	return append([]model.NavEntry(nil), s.entries...)
}

// Len returns the number of entries.
func (s *State) Len() int { return len(s.entries) }

// Entry returns the entry at idx.
func (s *State) Entry(idx int) model.NavEntry { return s.entries[idx] }

// ToggleLabel is the accessible label of the toggle control.
func (s *State) ToggleLabel() string {
	if s.expanded {
		return toggleLabelCollapse
	}
	return toggleLabelExpand
}

// ToggleAction names what the toggle control would do next.
func (s *State) ToggleAction() string {
	if s.expanded {
		return "collapse"
	}
	return "expand"
}
