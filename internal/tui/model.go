package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/tinytelemetry/pulse/internal/model"
	"github.com/tinytelemetry/pulse/internal/sidebar"
)

// Section represents which part of the dashboard has keyboard focus.
type Section int

const (
	SectionSidebar Section = iota // navigation entries
	SectionContent                // host page
)

// SidebarState holds the navigation panel: its state machine, width
// animation and the keyboard focus ring.
type SidebarState struct {
	nav           *sidebar.State
	motion        *sidebar.Motion
	focusIdx      int  // focus ring position; moving it does not select
	frameInFlight bool // an animation frame tick is scheduled
}

// ModalStackState holds the modal stack.
type ModalStackState struct {
	modalStack []Modal
}

// Options configures a DashboardModel.
type Options struct {
	Animations         bool
	FrameRate          int
	ReverseScrollWheel bool
}

// DefaultOptions returns the options used when no config is present.
func DefaultOptions() Options {
	return Options{
		Animations: true,
		FrameRate:  model.DefaultFrameRate,
	}
}

// DashboardModel represents the main TUI model: sidebar plus host page.
// Sub-state is organized into embedded structs for readability.
type DashboardModel struct {
	SidebarState
	ModalStackState

	// Window dimensions
	width  int
	height int

	activeSection Section
	keys          KeyMap
	zones         *zone.Manager
	zonePrefix    string

	// Static content
	brand   model.Brand
	profile model.Profile
	page    model.HostPage
	meta    model.PageMeta

	markdown *markdownRenderer // help pane, built on first use

	reverseScrollWheel bool
}

// motionFrameMsg advances the sidebar width animation by one frame.
type motionFrameMsg time.Time

// NewDashboardModel creates a new dashboard model over the fixed catalog.
func NewDashboardModel(opts Options) *DashboardModel {
	nav := sidebar.New(model.NavEntries())
	motion := sidebar.NewMotion(sidebar.MotionOptions{
		ExpandedWidth:  model.ExpandedWidth,
		CollapsedWidth: model.CollapsedWidth,
		FrameRate:      opts.FrameRate,
		Enabled:        opts.Animations,
	})

	zones := zone.New()

	return &DashboardModel{
		SidebarState: SidebarState{
			nav:    nav,
			motion: motion,
		},
		activeSection:      SectionSidebar,
		keys:               DefaultKeyMap(),
		zones:              zones,
		zonePrefix:         zones.NewPrefix(),
		brand:              model.DefaultBrand,
		profile:            model.DefaultProfile,
		page:               model.DefaultHostPage(),
		meta:               model.DefaultMeta,
		reverseScrollWheel: opts.ReverseScrollWheel,
	}
}

// Init initializes the model
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.meta.Title),
		tea.EnableMouseCellMotion,
	)
}

// Close releases the mouse zone manager.
func (m *DashboardModel) Close() {
	if m.zones != nil {
		m.zones.Close()
	}
}

// toggleSidebar flips the panel and starts the width animation.
func (m *DashboardModel) toggleSidebar() tea.Cmd {
	expanded := m.nav.Toggle()
	if !m.motion.Retarget(expanded) {
		return nil
	}
	return m.scheduleFrame()
}

// selectEntry activates the entry at idx and moves the focus ring to it.
func (m *DashboardModel) selectEntry(idx int) tea.Cmd {
	if _, err := m.nav.SelectIndex(idx); err != nil {
		return nil
	}
	m.focusIdx = idx
	m.activeSection = SectionSidebar
	return nil
}

func (m *DashboardModel) moveFocus(delta int) {
	n := m.nav.Len()
	m.focusIdx = max(0, min(n-1, m.focusIdx+delta))
}

func (m *DashboardModel) scheduleFrame() tea.Cmd {
	if m.frameInFlight {
		return nil
	}
	m.frameInFlight = true
	return tea.Tick(m.motion.FrameInterval(), func(t time.Time) tea.Msg {
		return motionFrameMsg(t)
	})
}

// handleMotionFrame steps the animation and keeps ticking until it settles.
func (m *DashboardModel) handleMotionFrame() tea.Cmd {
	m.frameInFlight = false
	if m.motion.Step() {
		return m.scheduleFrame()
	}
	return nil
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *DashboardModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *DashboardModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *DashboardModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// HasModal returns true if any modal is on the stack.
func (m *DashboardModel) HasModal() bool {
	return len(m.modalStack) > 0
}

// modalContext builds a read-only snapshot for modals.
func (m *DashboardModel) modalContext() ModalContext {
	return ModalContext{ReverseScrollWheel: m.reverseScrollWheel}
}
