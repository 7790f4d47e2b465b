package domain

import "time"

type User struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	JoinedAt time.Time
}

// WithRole returns a copy of the user carrying role r.
func (u User) WithRole(r Role) User {
	u.Role = r
	return u
}

type Business struct {
	ID          string
	Name        string
	Description string
	Domains     []*Domain
}

type Domain struct {
	ID          string
	Name        string
	Description string
	BusinessID  string
	Projects    []*Project
	Teams       []*Team
	Stats       DomainStats
}

// DomainStats is a stored snapshot. It is not recomputed from the domain's
// projects and teams, and may disagree with them.
type DomainStats struct {
	TotalProjects   int
	ActiveProjects  int
	TotalTeams      int
	TotalMembers    int
	TotalRevenue    float64
	TotalCost       float64
	ProfitMargin    float64
	UtilizationRate float64
}

// NetProfit is revenue minus cost.
func (s DomainStats) NetProfit() float64 {
	return s.TotalRevenue - s.TotalCost
}

type Team struct {
	ID          string
	Name        string
	Description string
	DomainID    string
	LeadID      string
	Members     []*TeamMember
	CreatedAt   time.Time
	Stats       TeamStats
}

type TeamStats struct {
	TotalMembers        int
	AvgProductivity     float64
	TotalHoursThisMonth float64
	ActiveProjects      int
}

type TeamMember struct {
	ID                    string
	UserID                string
	UserName              string
	Role                  Role
	Email                 string
	JoinedAt              time.Time
	HoursClockedThisMonth float64
	TasksCompleted        int
	CurrentTask           *string
	Productivity          float64
}

type BusinessStats struct {
	TotalDomains         int
	TotalProjects        int
	ActiveProjects       int
	TotalTeams           int
	TotalMembers         int
	TotalRevenue         float64
	TotalCost            float64
	TotalProfit          float64
	AvgProfitMargin      float64
	TopPerformingDomains []DomainPerformance
}

type DomainPerformance struct {
	DomainID     string
	DomainName   string
	ProfitMargin float64
	Revenue      float64
	ProjectCount int
}

type Photo struct {
	ID         string
	Title      string
	ColorToken string
}
