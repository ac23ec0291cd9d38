package tui

import tea "github.com/charmbracelet/bubbletea"

// ModalContext provides read-only context to modals, replacing direct
// access to *DashboardModel.
type ModalContext struct {
	ReverseScrollWheel bool
}

// Modal owns its input and rendering while it is on top of the dashboard's
// modal stack.
type Modal interface {
	// ID deduplicates pushes.
	ID() string
	// Update handles a message; pop=true closes the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	View(width, height int) string
}
