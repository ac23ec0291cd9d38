package model

var navEntries = []NavEntry{
	{Label: "Overview", Description: "Realtime analytics dashboard", Icon: IconHome, Badge: "Live"},
	{Label: "Projects", Description: "Track progress & velocity", Icon: IconBriefcase, Badge: "12"},
	{Label: "Teams", Description: "Collaborate with squads", Icon: IconUsers},
	{Label: "Timeline", Description: "Plan sprints & releases", Icon: IconCalendarRange},
	{Label: "Messages", Description: "Stay in sync", Icon: IconMessageCircle, Badge: "5"},
	{Label: "Insights", Description: "Performance breakdown", Icon: IconGauge},
	{Label: "Notifications", Description: "System level updates", Icon: IconBell},
	{Label: "Settings", Description: "Automation & preferences", Icon: IconSettings},
}

// NavEntries returns a copy of the fixed, ordered navigation list.
func NavEntries() []NavEntry {
	return append([]NavEntry(nil), navEntries...)
}

// DefaultBrand is the sidebar header.
var DefaultBrand = Brand{Title: "Pulse OS", Subtitle: "Navigation"}

// DefaultProfile is the user shown in the sidebar footer.
var DefaultProfile = Profile{Initials: "JS", Name: "Jordan Sawyer", Role: "Product Design Lead"}

// DefaultMeta is the page title and description.
var DefaultMeta = PageMeta{
	Title:       "Modern Sidebar UI",
	Description: "Interactive sidebar layout with smooth animations.",
}

// DefaultHostPage returns the mock dashboard content.
func DefaultHostPage() HostPage {
	return HostPage{
		Eyebrow: "Control Center",
		Heading: "Command your workspace",
		Blurb: "Stay focused with an adaptive system that tunes itself to your team's rhythm. " +
			"Everything you need is staged within one immersive canvas.",
		Actions: []Action{
			{Label: "Schedule sync"},
			{Label: "Create pulse", Primary: true},
		},
		Metrics: []Metric{
			{Title: "Active Users", Value: "18.4k", Delta: "+8.2%", Description: "Past 24 hours"},
			{Title: "New Signups", Value: "1.2k", Delta: "+3.9%", Description: "Marketing funnel"},
			{Title: "Team Velocity", Value: "92%", Delta: "+6.1%", Description: "Sprint analytics"},
		},
		TimelineLabel:  "Timeline",
		TimelineTitle:  "What's next",
		TimelineAction: Action{Label: "View calendar"},
		Timeline: []TimelineEntry{
			{
				Title:       "Handoff: Design system 2.0",
				Timestamp:   "Today · 4:30 PM",
				Description: "Assets pushed to shared library",
				Pill:        "Design",
			},
			{
				Title:       "Sprint Retrospective",
				Timestamp:   "Tomorrow · 11:00 AM",
				Description: "Review the AI co-pilot beta",
				Pill:        "Product",
			},
			{
				Title:       "Launch: Growth Experiment",
				Timestamp:   "Fri · 9:00 AM",
				Description: "Rollout to 5% of orgs",
				Pill:        "Growth",
			},
		},
	}
}
