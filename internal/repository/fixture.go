package repository

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/slotboard/internal/domain"
)

//go:embed fixture/dataset.yaml
var datasetYAML []byte

// Fixture records mirror dataset.yaml. References between records are ids.

type fixtureDoc struct {
	Users         []fixtureUser     `yaml:"users"`
	TeamMembers   []fixtureMember   `yaml:"teamMembers"`
	Teams         []fixtureTeam     `yaml:"teams"`
	Tasks         []fixtureTask     `yaml:"tasks"`
	Sprints       []fixtureSprint   `yaml:"sprints"`
	Risks         []fixtureRisk     `yaml:"risks"`
	Projects      []fixtureProject  `yaml:"projects"`
	Domains       []fixtureDomain   `yaml:"domains"`
	Businesses    []fixtureBusiness `yaml:"businesses"`
	BusinessStats fixtureBizStats   `yaml:"businessStats"`
	Defaults      fixtureDefaults   `yaml:"defaults"`
	Photos        []fixturePhoto    `yaml:"photos"`
}

type fixtureUser struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Email    string    `yaml:"email"`
	Role     string    `yaml:"role"`
	JoinedAt time.Time `yaml:"joinedAt"`
}

type fixtureMember struct {
	ID                    string  `yaml:"id"`
	UserID                string  `yaml:"userId"`
	HoursClockedThisMonth float64 `yaml:"hoursClockedThisMonth"`
	TasksCompleted        int     `yaml:"tasksCompleted"`
	CurrentTask           *string `yaml:"currentTask"`
	Productivity          float64 `yaml:"productivity"`
}

type fixtureTeam struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	DomainID    string    `yaml:"domainId"`
	LeadID      string    `yaml:"leadId"`
	Members     []string  `yaml:"members"`
	CreatedAt   time.Time `yaml:"createdAt"`
	Stats       struct {
		TotalMembers        int     `yaml:"totalMembers"`
		AvgProductivity     float64 `yaml:"avgProductivity"`
		TotalHoursThisMonth float64 `yaml:"totalHoursThisMonth"`
		ActiveProjects      int     `yaml:"activeProjects"`
	} `yaml:"stats"`
}

type fixtureTask struct {
	ID             string  `yaml:"id"`
	Title          string  `yaml:"title"`
	Description    string  `yaml:"description"`
	AssigneeID     string  `yaml:"assigneeId"`
	Status         string  `yaml:"status"`
	Priority       string  `yaml:"priority"`
	StoryPoints    int     `yaml:"storyPoints"`
	EstimatedHours float64 `yaml:"estimatedHours"`
	ActualHours    float64 `yaml:"actualHours"`
}

type fixtureSprint struct {
	ID                   string    `yaml:"id"`
	Name                 string    `yaml:"name"`
	StartDate            time.Time `yaml:"startDate"`
	EndDate              time.Time `yaml:"endDate"`
	TotalStoryPoints     int       `yaml:"totalStoryPoints"`
	CompletedStoryPoints int       `yaml:"completedStoryPoints"`
	Tasks                []string  `yaml:"tasks"`
}

type fixtureRisk struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Severity    string  `yaml:"severity"`
	Probability float64 `yaml:"probability"`
	Impact      string  `yaml:"impact"`
	Mitigation  string  `yaml:"mitigation"`
}

type fixtureProject struct {
	ID            string     `yaml:"id"`
	Name          string     `yaml:"name"`
	Description   string     `yaml:"description"`
	DomainID      string     `yaml:"domainId"`
	Status        string     `yaml:"status"`
	StartDate     time.Time  `yaml:"startDate"`
	EndDate       *time.Time `yaml:"endDate"`
	Budget        float64    `yaml:"budget"`
	Spent         float64    `yaml:"spent"`
	Revenue       *float64   `yaml:"revenue"`
	Profit        *float64   `yaml:"profit"`
	CurrentSprint string     `yaml:"currentSprint"`
	TeamMembers   []string   `yaml:"teamMembers"`
	Risks         []string   `yaml:"risks"`
	Stats         struct {
		CompletionRate    float64 `yaml:"completionRate"`
		OnTimeDelivery    float64 `yaml:"onTimeDelivery"`
		BudgetUtilization float64 `yaml:"budgetUtilization"`
		TeamVelocity      float64 `yaml:"teamVelocity"`
		ActiveAnomalies   int     `yaml:"activeAnomalies"`
	} `yaml:"stats"`
}

type fixtureDomain struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	BusinessID  string   `yaml:"businessId"`
	Projects    []string `yaml:"projects"`
	Teams       []string `yaml:"teams"`
	Stats       struct {
		TotalProjects   int     `yaml:"totalProjects"`
		ActiveProjects  int     `yaml:"activeProjects"`
		TotalTeams      int     `yaml:"totalTeams"`
		TotalMembers    int     `yaml:"totalMembers"`
		TotalRevenue    float64 `yaml:"totalRevenue"`
		TotalCost       float64 `yaml:"totalCost"`
		ProfitMargin    float64 `yaml:"profitMargin"`
		UtilizationRate float64 `yaml:"utilizationRate"`
	} `yaml:"stats"`
}

type fixtureBusiness struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Domains     []string `yaml:"domains"`
}

type fixtureBizStats struct {
	BusinessID      string  `yaml:"businessId"`
	TotalDomains    int     `yaml:"totalDomains"`
	TotalProjects   int     `yaml:"totalProjects"`
	ActiveProjects  int     `yaml:"activeProjects"`
	TotalTeams      int     `yaml:"totalTeams"`
	TotalMembers    int     `yaml:"totalMembers"`
	TotalRevenue    float64 `yaml:"totalRevenue"`
	TotalCost       float64 `yaml:"totalCost"`
	TotalProfit     float64 `yaml:"totalProfit"`
	AvgProfitMargin float64 `yaml:"avgProfitMargin"`
	TopDomains      []struct {
		DomainID     string  `yaml:"domainId"`
		DomainName   string  `yaml:"domainName"`
		ProfitMargin float64 `yaml:"profitMargin"`
		Revenue      float64 `yaml:"revenue"`
		ProjectCount int     `yaml:"projectCount"`
	} `yaml:"topPerformingDomains"`
}

type fixtureDefaults struct {
	UserID     string `yaml:"userId"`
	BusinessID string `yaml:"businessId"`
}

type fixturePhoto struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Color string `yaml:"color"`
}

// dataset is the resolved object graph built from a fixture document.
type dataset struct {
	users      []*domain.User
	members    []*domain.TeamMember
	teams      []*domain.Team
	projects   []*domain.Project
	domains    []*domain.Domain
	businesses []*domain.Business
	stats      domain.BusinessStats
	statsBizID string
	defaults   fixtureDefaults
	photos     []domain.Photo
}

// decodeDataset parses raw YAML and resolves every id reference. A reference
// to a record that does not exist is an error.
func decodeDataset(raw []byte) (*dataset, error) {
	var doc fixtureDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}

	ds := &dataset{defaults: doc.Defaults}

	users := make(map[string]*domain.User, len(doc.Users))
	for _, fu := range doc.Users {
		role, err := domain.ParseRole(fu.Role)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", fu.ID, err)
		}
		u := &domain.User{ID: fu.ID, Name: fu.Name, Email: fu.Email, Role: role, JoinedAt: fu.JoinedAt}
		users[u.ID] = u
		ds.users = append(ds.users, u)
	}

	members := make(map[string]*domain.TeamMember, len(doc.TeamMembers))
	for _, fm := range doc.TeamMembers {
		u, ok := users[fm.UserID]
		if !ok {
			return nil, danglingRef("team member", fm.ID, "user", fm.UserID)
		}
		m := &domain.TeamMember{
			ID:                    fm.ID,
			UserID:                u.ID,
			UserName:              u.Name,
			Role:                  u.Role,
			Email:                 u.Email,
			JoinedAt:              u.JoinedAt,
			HoursClockedThisMonth: fm.HoursClockedThisMonth,
			TasksCompleted:        fm.TasksCompleted,
			CurrentTask:           fm.CurrentTask,
			Productivity:          fm.Productivity,
		}
		members[m.ID] = m
		ds.members = append(ds.members, m)
	}

	teams := make(map[string]*domain.Team, len(doc.Teams))
	for _, ft := range doc.Teams {
		t := &domain.Team{
			ID:          ft.ID,
			Name:        ft.Name,
			Description: ft.Description,
			DomainID:    ft.DomainID,
			LeadID:      ft.LeadID,
			CreatedAt:   ft.CreatedAt,
			Stats: domain.TeamStats{
				TotalMembers:        ft.Stats.TotalMembers,
				AvgProductivity:     ft.Stats.AvgProductivity,
				TotalHoursThisMonth: ft.Stats.TotalHoursThisMonth,
				ActiveProjects:      ft.Stats.ActiveProjects,
			},
		}
		for _, id := range ft.Members {
			m, ok := members[id]
			if !ok {
				return nil, danglingRef("team", ft.ID, "member", id)
			}
			t.Members = append(t.Members, m)
		}
		teams[t.ID] = t
		ds.teams = append(ds.teams, t)
	}

	tasks := make(map[string]*domain.Task, len(doc.Tasks))
	for _, fk := range doc.Tasks {
		tasks[fk.ID] = &domain.Task{
			ID:             fk.ID,
			Title:          fk.Title,
			Description:    fk.Description,
			AssigneeID:     fk.AssigneeID,
			Status:         domain.TaskStatus(fk.Status),
			Priority:       domain.Priority(fk.Priority),
			StoryPoints:    fk.StoryPoints,
			EstimatedHours: fk.EstimatedHours,
			ActualHours:    fk.ActualHours,
		}
	}

	sprints := make(map[string]*domain.Sprint, len(doc.Sprints))
	for _, fs := range doc.Sprints {
		if fs.CompletedStoryPoints > fs.TotalStoryPoints {
			return nil, fmt.Errorf("sprint %s: completed points %d exceed total %d", fs.ID, fs.CompletedStoryPoints, fs.TotalStoryPoints)
		}
		s := &domain.Sprint{
			ID:                   fs.ID,
			Name:                 fs.Name,
			StartDate:            fs.StartDate,
			EndDate:              fs.EndDate,
			TotalStoryPoints:     fs.TotalStoryPoints,
			CompletedStoryPoints: fs.CompletedStoryPoints,
		}
		for _, id := range fs.Tasks {
			tk, ok := tasks[id]
			if !ok {
				return nil, danglingRef("sprint", fs.ID, "task", id)
			}
			s.Tasks = append(s.Tasks, tk)
		}
		sprints[s.ID] = s
	}

	risks := make(map[string]*domain.Risk, len(doc.Risks))
	for _, fr := range doc.Risks {
		risks[fr.ID] = &domain.Risk{
			ID:          fr.ID,
			Title:       fr.Title,
			Severity:    domain.Severity(fr.Severity),
			Probability: fr.Probability,
			Impact:      fr.Impact,
			Mitigation:  fr.Mitigation,
		}
	}

	projects := make(map[string]*domain.Project, len(doc.Projects))
	for _, fp := range doc.Projects {
		p := &domain.Project{
			ID:          fp.ID,
			Name:        fp.Name,
			Description: fp.Description,
			DomainID:    fp.DomainID,
			Status:      domain.ProjectStatus(fp.Status),
			StartDate:   fp.StartDate,
			EndDate:     fp.EndDate,
			Budget:      fp.Budget,
			Spent:       fp.Spent,
			Revenue:     fp.Revenue,
			Profit:      fp.Profit,
			Stats: domain.ProjectStats{
				CompletionRate:    fp.Stats.CompletionRate,
				OnTimeDelivery:    fp.Stats.OnTimeDelivery,
				BudgetUtilization: fp.Stats.BudgetUtilization,
				TeamVelocity:      fp.Stats.TeamVelocity,
				ActiveAnomalies:   fp.Stats.ActiveAnomalies,
			},
		}
		if fp.CurrentSprint != "" {
			s, ok := sprints[fp.CurrentSprint]
			if !ok {
				return nil, danglingRef("project", fp.ID, "sprint", fp.CurrentSprint)
			}
			p.CurrentSprint = s
		}
		for _, id := range fp.TeamMembers {
			m, ok := members[id]
			if !ok {
				return nil, danglingRef("project", fp.ID, "member", id)
			}
			p.TeamMembers = append(p.TeamMembers, m)
		}
		for _, id := range fp.Risks {
			r, ok := risks[id]
			if !ok {
				return nil, danglingRef("project", fp.ID, "risk", id)
			}
			p.Risks = append(p.Risks, r)
		}
		projects[p.ID] = p
		ds.projects = append(ds.projects, p)
	}

	domains := make(map[string]*domain.Domain, len(doc.Domains))
	for _, fd := range doc.Domains {
		d := &domain.Domain{
			ID:          fd.ID,
			Name:        fd.Name,
			Description: fd.Description,
			BusinessID:  fd.BusinessID,
			Stats: domain.DomainStats{
				TotalProjects:   fd.Stats.TotalProjects,
				ActiveProjects:  fd.Stats.ActiveProjects,
				TotalTeams:      fd.Stats.TotalTeams,
				TotalMembers:    fd.Stats.TotalMembers,
				TotalRevenue:    fd.Stats.TotalRevenue,
				TotalCost:       fd.Stats.TotalCost,
				ProfitMargin:    fd.Stats.ProfitMargin,
				UtilizationRate: fd.Stats.UtilizationRate,
			},
		}
		for _, id := range fd.Projects {
			p, ok := projects[id]
			if !ok {
				return nil, danglingRef("domain", fd.ID, "project", id)
			}
			d.Projects = append(d.Projects, p)
		}
		for _, id := range fd.Teams {
			t, ok := teams[id]
			if !ok {
				return nil, danglingRef("domain", fd.ID, "team", id)
			}
			d.Teams = append(d.Teams, t)
		}
		domains[d.ID] = d
		ds.domains = append(ds.domains, d)
	}

	for _, fb := range doc.Businesses {
		b := &domain.Business{ID: fb.ID, Name: fb.Name, Description: fb.Description, Domains: []*domain.Domain{}}
		for _, id := range fb.Domains {
			d, ok := domains[id]
			if !ok {
				return nil, danglingRef("business", fb.ID, "domain", id)
			}
			b.Domains = append(b.Domains, d)
		}
		ds.businesses = append(ds.businesses, b)
	}

	// Parent back-references must point at existing records.
	for _, p := range ds.projects {
		if _, ok := domains[p.DomainID]; !ok {
			return nil, danglingRef("project", p.ID, "domain", p.DomainID)
		}
	}
	for _, t := range ds.teams {
		if _, ok := domains[t.DomainID]; !ok {
			return nil, danglingRef("team", t.ID, "domain", t.DomainID)
		}
	}

	bs := doc.BusinessStats
	if !hasBusiness(ds.businesses, bs.BusinessID) {
		return nil, danglingRef("businessStats", "-", "business", bs.BusinessID)
	}
	ds.statsBizID = bs.BusinessID
	ds.stats = domain.BusinessStats{
		TotalDomains:    bs.TotalDomains,
		TotalProjects:   bs.TotalProjects,
		ActiveProjects:  bs.ActiveProjects,
		TotalTeams:      bs.TotalTeams,
		TotalMembers:    bs.TotalMembers,
		TotalRevenue:    bs.TotalRevenue,
		TotalCost:       bs.TotalCost,
		TotalProfit:     bs.TotalProfit,
		AvgProfitMargin: bs.AvgProfitMargin,
	}
	for _, td := range bs.TopDomains {
		ds.stats.TopPerformingDomains = append(ds.stats.TopPerformingDomains, domain.DomainPerformance{
			DomainID:     td.DomainID,
			DomainName:   td.DomainName,
			ProfitMargin: td.ProfitMargin,
			Revenue:      td.Revenue,
			ProjectCount: td.ProjectCount,
		})
	}

	for _, fp := range doc.Photos {
		ds.photos = append(ds.photos, domain.Photo{ID: fp.ID, Title: fp.Title, ColorToken: fp.Color})
	}

	if _, ok := users[ds.defaults.UserID]; !ok {
		return nil, danglingRef("defaults", "-", "user", ds.defaults.UserID)
	}
	return ds, nil
}

func hasBusiness(bs []*domain.Business, id string) bool {
	for _, b := range bs {
		if b.ID == id {
			return true
		}
	}
	return false
}

func danglingRef(kind, id, refKind, refID string) error {
	return fmt.Errorf("%s %s references %s %q: %w", kind, id, refKind, refID, domain.ErrNotFound)
}
