package selection

import (
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
)

// SlotPanel is the content of one named slot in a composed layout.
type SlotPanel struct {
	Slot     route.Slot `json:"slot"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Body     []string   `json:"body,omitempty"`
	Tiles    []Tile     `json:"tiles,omitempty"`
	Rows     []SlotRow  `json:"rows,omitempty"`
	Tabs     []TabLink  `json:"tabs,omitempty"`
	// Fallback is set when the slot shows its default content.
	Fallback bool `json:"fallback,omitempty"`
}

// SlotRow is one line of a slot listing: a name, a secondary value and a
// status or change marker.
type SlotRow struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Status string `json:"status,omitempty"`
	Tone   Tone   `json:"tone,omitempty"`
}

type DashboardScreen struct {
	Tab   route.Tab   `json:"tab,omitempty"`
	Slots []SlotPanel `json:"slots"`
}

type AdminScreen struct {
	Role   domain.Role `json:"role"`
	Active route.Slot  `json:"active_slot"`
	Intro  SlotPanel   `json:"intro"`
	Panel  SlotPanel   `json:"panel"`
}

// BuildDashboard fills the main, team and analytics slots for r. Slots
// marked in r.Fallback render their default content.
func BuildDashboard(r route.Route) DashboardScreen {
	scr := DashboardScreen{Tab: r.Tab}
	main := dashboardMain()
	if r.Fallback[route.SlotMain] {
		main = dashboardMainDefault()
	}
	team := dashboardTeam()
	if r.Fallback[route.SlotTeam] {
		team = dashboardTeamDefault()
	}
	scr.Slots = []SlotPanel{main, team, dashboardAnalytics(r.Tab)}
	return scr
}

func dashboardMain() SlotPanel {
	return SlotPanel{
		Slot:  route.SlotMain,
		Title: "Welcome to the Dashboard",
		Body: []string{
			"This is the main dashboard content.",
			"The team and analytics slots render alongside it.",
		},
	}
}

func dashboardMainDefault() SlotPanel {
	return SlotPanel{
		Slot:     route.SlotMain,
		Title:    "Welcome to the Dashboard",
		Body:     []string{"Showing the default content: the page was reloaded on a sub-route."},
		Fallback: true,
	}
}

var teamStatusTone = map[string]Tone{
	"online":  TonePositive,
	"away":    ToneWarning,
	"offline": ToneNeutral,
}

func dashboardTeam() SlotPanel {
	p := SlotPanel{Slot: route.SlotTeam, Title: "Team Members"}
	for _, m := range []SlotRow{
		{Name: "Sarah Johnson", Value: "Product Manager", Status: "online"},
		{Name: "Michael Chen", Value: "Senior Developer", Status: "online"},
		{Name: "Emily Davis", Value: "UX Designer", Status: "away"},
		{Name: "James Wilson", Value: "DevOps Engineer", Status: "offline"},
	} {
		m.Tone = teamStatusTone[m.Status]
		p.Rows = append(p.Rows, m)
	}
	return p
}

func dashboardTeamDefault() SlotPanel {
	return SlotPanel{
		Slot:     route.SlotTeam,
		Title:    "Team Members",
		Body:     []string{"Showing the default content: the active team view could not be restored after a reload."},
		Fallback: true,
	}
}

func dashboardAnalytics(tab route.Tab) SlotPanel {
	p := SlotPanel{
		Slot:  route.SlotAnalytics,
		Title: "Analytics",
		Tabs: []TabLink{
			{Label: "Page Views", Path: "/dashboard/" + string(route.TabPageViews), Active: tab == route.TabPageViews},
			{Label: "Visitors", Path: "/dashboard/" + string(route.TabVisitors), Active: tab == route.TabVisitors},
		},
	}
	switch tab {
	case route.TabPageViews:
		p.Tiles = []Tile{
			{Label: "Total Views", Value: "31.9K"},
			{Label: "Avg. Time", Value: "2:34"},
			{Label: "Bounce Rate", Value: "42%"},
		}
		p.Rows = []SlotRow{
			{Name: "/", Value: "12,453", Status: "+12.5%", Tone: TonePositive},
			{Name: "/dashboard", Value: "8,921", Status: "+8.3%", Tone: TonePositive},
			{Name: "/products", Value: "5,432", Status: "-2.1%", Tone: ToneNegative},
			{Name: "/about", Value: "3,210", Status: "+5.7%", Tone: TonePositive},
			{Name: "/contact", Value: "1,876", Status: "+15.2%", Tone: TonePositive},
		}
	case route.TabVisitors:
		p.Tiles = []Tile{
			{Label: "Total Visitors", Value: "23.8K", Description: "↑ 18% from last week", Tone: TonePositive},
			{Label: "New Visitors", Value: "14.2K", Description: "↑ 24% from last week", Tone: TonePositive},
		}
		p.Rows = []SlotRow{
			{Name: "United States", Value: "8,234", Status: "35%"},
			{Name: "United Kingdom", Value: "4,521", Status: "19%"},
			{Name: "Canada", Value: "3,412", Status: "14%"},
			{Name: "Germany", Value: "2,876", Status: "12%"},
			{Name: "Australia", Value: "2,341", Status: "10%"},
			{Name: "Others", Value: "2,398", Status: "10%"},
		}
	default:
		p.Body = []string{"Open the Page Views or Visitors tab to see analytics."}
		p.Fallback = true
	}
	return p
}

type adminFeature struct {
	name      string
	adminOnly bool
	adminSlot bool
}

var adminFeatures = []adminFeature{
	{name: "View Reports"},
	{name: "Export Data"},
	{name: "Create Projects"},
	{name: "Team Collaboration"},
	{name: "User Management", adminOnly: true},
	{name: "System Settings", adminOnly: true},
	{name: "Security Controls", adminOnly: true, adminSlot: true},
	{name: "Analytics Dashboard", adminOnly: true, adminSlot: true},
}

// BuildAdmin renders /admin. The conditional slot follows the role's
// access rights.
func BuildAdmin(role domain.Role) AdminScreen {
	slot := route.AdminSlot(role)
	scr := AdminScreen{
		Role:   role,
		Active: slot,
		Intro: SlotPanel{
			Slot:  route.SlotMain,
			Title: "Role-Based Dashboard",
			Body:  []string{"The panel below is the admin slot or the user slot, chosen by the current role."},
		},
	}
	if slot == route.SlotAdmin {
		scr.Panel = SlotPanel{
			Slot:     route.SlotAdmin,
			Title:    "Administrator Dashboard",
			Subtitle: "Full system access and control",
			Tiles: []Tile{
				{Label: "Total Users", Value: "1,247"},
				{Label: "System Uptime", Value: "99.9%"},
				{Label: "Active Sessions", Value: "342"},
				{Label: "API Requests", Value: "28.5K"},
			},
		}
	} else {
		scr.Panel = SlotPanel{
			Slot:     route.SlotUser,
			Title:    "User Dashboard",
			Subtitle: "Standard user view with limited access",
			Tiles: []Tile{
				{Label: "Active Projects", Value: "12"},
				{Label: "Tasks Completed", Value: "47"},
			},
		}
	}
	for _, f := range adminFeatures {
		if f.adminSlot && slot != route.SlotAdmin {
			continue
		}
		row := SlotRow{Name: f.name, Status: "Available", Tone: TonePositive}
		if f.adminOnly && slot != route.SlotAdmin {
			row.Status = "Locked"
			row.Tone = ToneNeutral
		}
		scr.Panel.Rows = append(scr.Panel.Rows, row)
	}
	return scr
}
