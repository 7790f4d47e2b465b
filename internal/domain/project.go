package domain

import "time"

type Project struct {
	ID            string
	Name          string
	Description   string
	DomainID      string
	Status        ProjectStatus
	StartDate     time.Time
	EndDate       *time.Time
	Budget        float64
	Spent         float64
	Revenue       *float64
	Profit        *float64
	CurrentSprint *Sprint
	TeamMembers   []*TeamMember
	Risks         []*Risk
	Stats         ProjectStats
}

type ProjectStats struct {
	CompletionRate    float64
	OnTimeDelivery    float64
	BudgetUtilization float64
	TeamVelocity      float64
	ActiveAnomalies   int
}

// IsActive reports whether the project is currently being worked on.
func (p *Project) IsActive() bool {
	return p.Status == ProjectActive
}

// RevenueOrZero returns the recorded revenue, treating an absent value as 0.
func (p *Project) RevenueOrZero() float64 {
	return Float64FromPtrWithDefault(0, p.Revenue)
}

// NetProfit is revenue minus spend. It is derived on demand and can differ
// from the stored Profit figure.
func (p *Project) NetProfit() float64 {
	return p.RevenueOrZero() - p.Spent
}

type Sprint struct {
	ID                   string
	Name                 string
	StartDate            time.Time
	EndDate              time.Time
	TotalStoryPoints     int
	CompletedStoryPoints int
	Tasks                []*Task
}

// Progress returns completed points as a percentage of total points.
func (s *Sprint) Progress() float64 {
	if s.TotalStoryPoints == 0 {
		return 0
	}
	return float64(s.CompletedStoryPoints) / float64(s.TotalStoryPoints) * 100
}

type Task struct {
	ID             string
	Title          string
	Description    string
	AssigneeID     string
	Status         TaskStatus
	Priority       Priority
	StoryPoints    int
	EstimatedHours float64
	ActualHours    float64
}

type Risk struct {
	ID          string
	Title       string
	Severity    Severity
	Probability float64
	Impact      string
	Mitigation  string
}
