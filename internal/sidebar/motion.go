package sidebar

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/tinytelemetry/pulse/internal/model"
)

const (
	settleEpsilon = 0.01
	// Text fades back in once the panel is this close to its expanded width.
	revealSlack = 1.0
)

// Motion animates the panel width toward the width of the current state
// and decides whether text (labels, descriptions, badges, brand, profile)
// is drawn on the current frame.
type Motion struct {
	expandedWidth  float64
	collapsedWidth float64

	openSpring   harmonica.Spring
	closedSpring harmonica.Spring
	fps          int
	enabled      bool

	expanded  bool
	pos       float64
	vel       float64
	animating bool
}

// MotionOptions configures a Motion.
type MotionOptions struct {
	ExpandedWidth  int
	CollapsedWidth int
	FrameRate      int
	Enabled        bool
}

// NewMotion creates a settled, expanded Motion.
func NewMotion(opts MotionOptions) *Motion {
	if opts.ExpandedWidth <= 0 {
		opts.ExpandedWidth = model.ExpandedWidth
	}
	if opts.CollapsedWidth <= 0 || opts.CollapsedWidth > opts.ExpandedWidth {
		opts.CollapsedWidth = model.CollapsedWidth
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = model.DefaultFrameRate
	}

	dt := harmonica.FPS(opts.FrameRate)
	return &Motion{
		expandedWidth:  float64(opts.ExpandedWidth),
		collapsedWidth: float64(opts.CollapsedWidth),
		openSpring:     springFor(dt, model.OpenSpring),
		closedSpring:   springFor(dt, model.ClosedSpring),
		fps:            opts.FrameRate,
		enabled:        opts.Enabled,
		expanded:       true,
		pos:            float64(opts.ExpandedWidth),
	}
}

// springFor converts stiffness/damping (mass 1) to harmonica's angular
// frequency and damping ratio.
func springFor(dt float64, s model.Spring) harmonica.Spring {
	omega := math.Sqrt(s.Stiffness)
	ratio := s.Damping / (2 * omega)
	return harmonica.NewSpring(dt, omega, ratio)
}

// Retarget points the animation at the width for expanded. It returns true
// when frames need to be scheduled.
func (m *Motion) Retarget(expanded bool) bool {
	m.expanded = expanded
	if !m.enabled {
		m.pos = m.target()
		m.vel = 0
		m.animating = false
		return false
	}
	m.animating = !m.settled()
	return m.animating
}

// Step advances one frame and reports whether the animation continues.
func (m *Motion) Step() bool {
	if !m.animating {
		return false
	}
	spring := m.closedSpring
	if m.expanded {
		spring = m.openSpring
	}
	m.pos, m.vel = spring.Update(m.pos, m.vel, m.target())
	if m.settled() {
		m.pos = m.target()
		m.vel = 0
		m.animating = false
	}
	return m.animating
}

// Settle jumps to the end of the current animation.
func (m *Motion) Settle() {
	m.pos = m.target()
	m.vel = 0
	m.animating = false
}

// Width is the panel width in columns for the current frame. Spring
// overshoot is clamped to the two configured widths.
func (m *Motion) Width() int {
	w := math.Round(m.pos)
	w = math.Max(w, m.collapsedWidth)
	w = math.Min(w, m.expandedWidth)
	return int(w)
}

// TextVisible reports whether labels and other text are drawn. Collapsing
// hides text at once; expanding reveals it once the width has caught up.
func (m *Motion) TextVisible() bool {
	if !m.expanded {
		return false
	}
	if !m.animating {
		return true
	}
	return m.pos >= m.expandedWidth-revealSlack
}

// Animating reports whether frames are still pending.
func (m *Motion) Animating() bool { return m.animating }

// Enabled reports whether transitions animate at all.
func (m *Motion) Enabled() bool { return m.enabled }

// FrameInterval is the delay between animation frames.
func (m *Motion) FrameInterval() time.Duration {
	return time.Second / time.Duration(m.fps)
}

func (m *Motion) target() float64 {
	if m.expanded {
		return m.expandedWidth
	}
	return m.collapsedWidth
}

func (m *Motion) settled() bool {
	return math.Abs(m.pos-m.target()) < settleEpsilon && math.Abs(m.vel) < settleEpsilon
}
