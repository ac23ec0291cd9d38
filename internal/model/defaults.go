package model

import "time"

// Shared defaults used by both the terminal and web binaries.
const (
	DefaultSkin      = "default"
	DefaultFrameRate = 60
	DefaultAPIHost   = "127.0.0.1"
	DefaultAPIPort   = 3000

	// Terminal column widths of the sidebar panel.
	ExpandedWidth  = 38
	CollapsedWidth = 9

	// Pixel widths of the web sidebar panel.
	ExpandedWidthPx  = 280
	CollapsedWidthPx = 92

	DefaultShutdownTimeout = 5 * time.Second
)

// Spring describes a mass-1 spring in stiffness/damping form.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// Panel springs: opening is softer than closing.
var (
	OpenSpring   = Spring{Stiffness: 140, Damping: 16}
	ClosedSpring = Spring{Stiffness: 200, Damping: 22}
)
