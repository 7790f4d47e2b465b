package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
)

func newTestOrgRepo(t *testing.T) *MemoryOrgRepo {
	t.Helper()
	r, err := NewMemoryOrgRepo()
	require.NoError(t, err, "embedded dataset must load")
	return r
}

func TestDataset_Counts(t *testing.T) {
	r := newTestOrgRepo(t)

	assert.Len(t, r.ListUsers(), 10)
	assert.Len(t, r.ListBusinesses(), 2)
	assert.Len(t, r.ds.members, 4)
	assert.Len(t, r.ds.teams, 4)
	assert.Len(t, r.ds.projects, 5)
	assert.Len(t, r.ds.domains, 4)
	assert.Len(t, r.Photos(), 8)
}

func TestGetByID_Found(t *testing.T) {
	r := newTestOrgRepo(t)

	b, err := r.GetBusinessByID("biz1")
	require.NoError(t, err)
	assert.Equal(t, "TechSolutions Inc.", b.Name)
	assert.Len(t, b.Domains, 4)

	d, err := r.GetDomainByID("domain2")
	require.NoError(t, err)
	assert.Equal(t, "Financial Services", d.Name)
	assert.Equal(t, 36.7, d.Stats.ProfitMargin)

	p, err := r.GetProjectByID("proj1")
	require.NoError(t, err)
	assert.Equal(t, "HireTalentt Platform", p.Name)
	require.NotNil(t, p.CurrentSprint)
	assert.Equal(t, "Sprint 24 - Auth & Security", p.CurrentSprint.Name)
	assert.Len(t, p.CurrentSprint.Tasks, 3)
	require.NotNil(t, p.Revenue)
	assert.Equal(t, 320000.0, *p.Revenue)

	tm, err := r.GetTeamByID("team3")
	require.NoError(t, err)
	assert.Equal(t, "Gamma Team", tm.Name)

	u, err := r.GetUserByID("u3")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDomainHead, u.Role)
	assert.Equal(t, 2021, u.JoinedAt.Year())
}

func TestGetByID_NotFound(t *testing.T) {
	r := newTestOrgRepo(t)

	for _, id := range []string{"", "999", "nope", "PROJ1"} {
		_, err := r.GetBusinessByID(id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = r.GetDomainByID(id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = r.GetProjectByID(id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = r.GetTeamByID(id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = r.GetUserByID(id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}
}

func TestListProjectsByDomain_PreservesOrder(t *testing.T) {
	r := newTestOrgRepo(t)

	got := r.ListProjectsByDomain("domain1")
	require.Len(t, got, 2)
	assert.Equal(t, "proj1", got[0].ID)
	assert.Equal(t, "proj2", got[1].ID)

	assert.Empty(t, r.ListProjectsByDomain("domain9"))
}

// domain3 lists team1 as its own, but team1's parent is domain1. The filter
// follows the team's parent id.
func TestListTeamsByDomain_FollowsParentID(t *testing.T) {
	r := newTestOrgRepo(t)

	d3, err := r.GetDomainByID("domain3")
	require.NoError(t, err)
	require.Len(t, d3.Teams, 1)
	assert.Equal(t, "team1", d3.Teams[0].ID)

	assert.Empty(t, r.ListTeamsByDomain("domain3"))

	d1 := r.ListTeamsByDomain("domain1")
	require.Len(t, d1, 2)
	assert.Equal(t, "team1", d1[0].ID)
	assert.Equal(t, "team2", d1[1].ID)
}

func TestTeamMember_Denormalized(t *testing.T) {
	r := newTestOrgRepo(t)

	team, err := r.GetTeamByID("team1")
	require.NoError(t, err)
	m := team.Members[0]
	assert.Equal(t, "tm1", m.ID)
	assert.Equal(t, "Alex Johnson", m.UserName)
	assert.Equal(t, "alex.johnson@company.com", m.Email)
	assert.Equal(t, domain.RoleDeveloper, m.Role)
	assert.Nil(t, m.CurrentTask)
}

func TestSharedMembers_SamePointer(t *testing.T) {
	r := newTestOrgRepo(t)

	team1, _ := r.GetTeamByID("team1")
	team4, _ := r.GetTeamByID("team4")
	assert.Same(t, team1.Members[0], team4.Members[0])
}

func TestBusinessStats(t *testing.T) {
	r := newTestOrgRepo(t)

	s := r.BusinessStats("biz1")
	assert.Equal(t, 1330000.0, s.TotalRevenue)
	assert.Equal(t, 482000.0, s.TotalProfit)
	require.Len(t, s.TopPerformingDomains, 3)
	assert.Equal(t, "domain3", s.TopPerformingDomains[0].DomainID)

	assert.Equal(t, domain.BusinessStats{}, r.BusinessStats("biz2"))
}

func TestDefaults(t *testing.T) {
	r := newTestOrgRepo(t)

	u := r.DefaultUser()
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, domain.RoleCEO, u.Role)
	assert.Equal(t, "biz1", r.DefaultBusiness().ID)
}

func TestProjectWithoutRevenue(t *testing.T) {
	r := newTestOrgRepo(t)

	p, err := r.GetProjectByID("proj5")
	require.NoError(t, err)
	assert.Nil(t, p.Revenue)
	assert.Nil(t, p.Profit)
	assert.Nil(t, p.CurrentSprint)
	assert.Equal(t, domain.ProjectPlanning, p.Status)
}

func TestDecodeDataset_DanglingReference(t *testing.T) {
	raw := []byte(`
users:
  - {id: u1, name: A, email: a@x, role: CEO, joinedAt: 2020-01-01}
teamMembers:
  - {id: tm1, userId: u9}
defaults: {userId: u1, businessId: biz1}
`)
	_, err := decodeDataset(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "u9")
}

func TestDecodeDataset_StatsForUnknownBusiness(t *testing.T) {
	raw := []byte(`
users:
  - {id: u1, name: A, email: a@x, role: CEO, joinedAt: 2020-01-01}
businesses:
  - {id: biz1, name: B, description: D, domains: []}
businessStats: {businessId: biz9, totalDomains: 0}
defaults: {userId: u1, businessId: biz1}
`)
	_, err := decodeDataset(raw)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "biz9")
}

func TestDecodeDataset_UnknownRole(t *testing.T) {
	raw := []byte(`
users:
  - {id: u1, name: A, email: a@x, role: Intern, joinedAt: 2020-01-01}
`)
	_, err := decodeDataset(raw)
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestDecodeDataset_SprintPointsConsistent(t *testing.T) {
	raw := []byte(`
sprints:
  - {id: s1, name: S, startDate: 2024-01-01, endDate: 2024-01-14, totalStoryPoints: 5, completedStoryPoints: 8}
`)
	_, err := decodeDataset(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceed")
}
