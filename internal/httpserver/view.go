package httpserver

import (
	"net/url"

	"github.com/tinytelemetry/pulse/internal/model"
	"github.com/tinytelemetry/pulse/internal/sidebar"
)

const (
	queryPanel     = "panel"
	queryActive    = "active"
	panelCollapsed = "collapsed"
)

// entryView is one navigation entry as rendered: its data, its pressed
// state and the link that selects it.
type entryView struct {
	model.NavEntry
	Glyph       string `json:"glyph"`
	Active      bool   `json:"active"`
	TextVisible bool   `json:"text_visible"`
	Href        string `json:"href"`
}

// sidebarView is the rendered accessibility tree of the sidebar.
type sidebarView struct {
	Expanded     bool          `json:"expanded"`
	Active       string        `json:"active"`
	ToggleLabel  string        `json:"toggle_label"`
	ToggleAction string        `json:"toggle_action"`
	ToggleGlyph  string        `json:"toggle_glyph"`
	ToggleHref   string        `json:"toggle_href"`
	WidthPx      int           `json:"width_px"`
	TextVisible  bool          `json:"text_visible"`
	Brand        model.Brand   `json:"brand"`
	Profile      model.Profile `json:"profile"`
	Entries      []entryView   `json:"entries"`
}

// pageView is the template data for the full page.
type pageView struct {
	Meta    model.PageMeta
	Sidebar sidebarView
	Page    model.HostPage
}

// stateFromQuery rebuilds sidebar state from the request query.
func stateFromQuery(q url.Values) (*sidebar.State, error) {
	expanded := q.Get(queryPanel) != panelCollapsed
	return sidebar.Restore(model.NavEntries(), expanded, q.Get(queryActive))
}

// stateHref links to the page for the given state.
func stateHref(expanded bool, active string) string {
	q := url.Values{}
	if !expanded {
		q.Set(queryPanel, panelCollapsed)
	}
	q.Set(queryActive, active)
	return "/?" + q.Encode()
}

func buildSidebarView(s *sidebar.State) sidebarView {
	expanded := s.Expanded()

	v := sidebarView{
		Expanded:     expanded,
		Active:       s.Active(),
		ToggleLabel:  s.ToggleLabel(),
		ToggleAction: s.ToggleAction(),
		ToggleGlyph:  "»",
		ToggleHref:   stateHref(!expanded, s.Active()),
		WidthPx:      model.CollapsedWidthPx,
		TextVisible:  expanded,
		Brand:        model.DefaultBrand,
		Profile:      model.DefaultProfile,
	}
	if expanded {
		v.ToggleGlyph = "«"
		v.WidthPx = model.ExpandedWidthPx
	}

	for _, e := range s.Entries() {
		v.Entries = append(v.Entries, entryView{
			NavEntry:    e,
			Glyph:       e.Icon.Glyph(),
			Active:      s.IsActive(e.Label),
			TextVisible: expanded,
			Href:        stateHref(expanded, e.Label),
		})
	}
	return v
}
