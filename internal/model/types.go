package model

// Icon is a symbolic icon reference resolved to a glyph by each renderer.
type Icon string

const (
	IconHome          Icon = "home"
	IconBriefcase     Icon = "briefcase"
	IconUsers         Icon = "users"
	IconCalendarRange Icon = "calendar-range"
	IconMessageCircle Icon = "message-circle"
	IconGauge         Icon = "gauge"
	IconBell          Icon = "bell"
	IconSettings      Icon = "settings"
)

var iconGlyphs = map[Icon]string{
	IconHome:          "⌂",
	IconBriefcase:     "▣",
	IconUsers:         "☺",
	IconCalendarRange: "▦",
	IconMessageCircle: "✉",
	IconGauge:         "◔",
	IconBell:          "◉",
	IconSettings:      "⚙",
}

// Glyph returns a single-cell glyph for the icon, or a bullet for unknown icons.
func (i Icon) Glyph() string {
	if g, ok := iconGlyphs[i]; ok {
		return g
	}
	return "•"
}

// NavEntry is one fixed navigation item. Label is its stable identifier.
type NavEntry struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        Icon   `json:"icon"`
	Badge       string `json:"badge,omitempty"` // empty means no badge
}

// HasBadge reports whether the entry carries a badge.
func (e NavEntry) HasBadge() bool {
	return e.Badge != ""
}

// Brand is the sidebar header.
type Brand struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Profile is the signed-in user shown in the sidebar footer.
type Profile struct {
	Initials string `json:"initials"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Metric is one headline card on the host page.
type Metric struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Delta       string `json:"delta"`
	Description string `json:"description"`
}

// TimelineEntry is one upcoming event card on the host page.
type TimelineEntry struct {
	Title       string `json:"title"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Pill        string `json:"pill"`
}

// PageMeta is the document title and description.
type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Action is an inert button on the host page.
type Action struct {
	Label   string `json:"label"`
	Primary bool   `json:"primary"`
}

// HostPage groups the static content rendered beside the sidebar.
type HostPage struct {
	Eyebrow        string          `json:"eyebrow"`
	Heading        string          `json:"heading"`
	Blurb          string          `json:"blurb"`
	Actions        []Action        `json:"actions"`
	Metrics        []Metric        `json:"metrics"`
	TimelineLabel  string          `json:"timeline_label"`
	TimelineTitle  string          `json:"timeline_title"`
	TimelineAction Action          `json:"timeline_action"`
	Timeline       []TimelineEntry `json:"timeline"`
}
