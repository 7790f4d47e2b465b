package viewstate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
)

func testOrg(t *testing.T) *repository.MemoryOrgRepo {
	t.Helper()
	org, err := repository.NewMemoryOrgRepo()
	require.NoError(t, err)
	return org
}

func TestDefault(t *testing.T) {
	s := Default(testOrg(t))

	assert.Equal(t, "biz1", s.Business.ID)
	assert.Equal(t, "u1", s.User.ID)
	assert.Equal(t, domain.RoleCEO, s.Role())
	assert.Equal(t, domain.LevelEverything, s.Level)
	assert.True(t, s.Consistent())
}

func TestSelectDomain_ClearsProjectAndTeam(t *testing.T) {
	org := testOrg(t)
	d1, _ := org.GetDomainByID("domain1")
	p1, _ := org.GetProjectByID("proj1")
	t1, _ := org.GetTeamByID("team1")

	s := Default(org)
	s.Project, s.Team = p1, t1

	got := Reduce(s, SelectDomain{Domain: d1})
	assert.Same(t, d1, got.Domain)
	assert.Nil(t, got.Project)
	assert.Nil(t, got.Team)
	assert.Equal(t, domain.LevelDomain, got.Level)
}

func TestSelectProject_SetsDomainClearsTeam(t *testing.T) {
	org := testOrg(t)
	d1, _ := org.GetDomainByID("domain1")
	p1, _ := org.GetProjectByID("proj1")
	t1, _ := org.GetTeamByID("team1")

	s := Reduce(Default(org), SelectTeam{Domain: d1, Team: t1})
	got := Reduce(s, SelectProject{Domain: d1, Project: p1})

	assert.Same(t, d1, got.Domain)
	assert.Same(t, p1, got.Project)
	assert.Nil(t, got.Team)
	assert.Equal(t, domain.LevelProject, got.Level)
}

func TestSelectTeam_SetsDomainClearsProject(t *testing.T) {
	org := testOrg(t)
	d1, _ := org.GetDomainByID("domain1")
	p1, _ := org.GetProjectByID("proj1")
	t2, _ := org.GetTeamByID("team2")

	s := Reduce(Default(org), SelectProject{Domain: d1, Project: p1})
	got := Reduce(s, SelectTeam{Domain: d1, Team: t2})

	assert.Nil(t, got.Project)
	assert.Same(t, t2, got.Team)
	assert.Equal(t, domain.LevelTeam, got.Level)
}

func TestShowEverything_ClearsAll(t *testing.T) {
	org := testOrg(t)
	d1, _ := org.GetDomainByID("domain1")
	p1, _ := org.GetProjectByID("proj1")

	s := Reduce(Default(org), SelectProject{Domain: d1, Project: p1})
	got := Reduce(s, ShowEverything{})

	assert.Nil(t, got.Domain)
	assert.Nil(t, got.Project)
	assert.Nil(t, got.Team)
	assert.Equal(t, domain.LevelEverything, got.Level)
}

func TestSelectBusiness_ResetsToEverything(t *testing.T) {
	org := testOrg(t)
	biz2, _ := org.GetBusinessByID("biz2")
	d1, _ := org.GetDomainByID("domain1")

	s := Reduce(Default(org), SelectDomain{Domain: d1})
	got := Reduce(s, SelectBusiness{Business: biz2})

	assert.Same(t, biz2, got.Business)
	assert.Nil(t, got.Domain)
	assert.Equal(t, domain.LevelEverything, got.Level)
}

func TestSetRole_PreservesUserFields(t *testing.T) {
	s := Default(testOrg(t))

	got := Reduce(s, SetRole{Role: domain.RoleProjectManager})

	assert.Equal(t, domain.RoleProjectManager, got.Role())
	assert.Equal(t, s.User.ID, got.User.ID)
	assert.Equal(t, s.User.Name, got.User.Name)
	assert.Equal(t, s.User.Email, got.User.Email)
	assert.Equal(t, s.User.JoinedAt, got.User.JoinedAt)
	assert.Equal(t, domain.RoleCEO, s.Role(), "input state must not change")
}

func TestRawSetters_DoNotTouchLevel(t *testing.T) {
	org := testOrg(t)
	p1, _ := org.GetProjectByID("proj1")

	got := Reduce(Default(org), SetProject{Project: p1})
	assert.Same(t, p1, got.Project)
	assert.Equal(t, domain.LevelEverything, got.Level)
	assert.False(t, got.Consistent())

	got = Reduce(got, SetViewLevel{Level: domain.LevelProject})
	assert.True(t, got.Consistent())
}

func TestReduce_NilActionIsIdentity(t *testing.T) {
	s := Default(testOrg(t))
	assert.Equal(t, s, Reduce(s, nil))
}

// Any sequence of navigation actions leaves the level consistent with the
// selected entities.
func TestNavigationActions_AlwaysConsistent(t *testing.T) {
	org := testOrg(t)
	var actions []Action
	for _, b := range org.ListBusinesses() {
		actions = append(actions, SelectBusiness{Business: b})
	}
	for _, d := range org.DefaultBusiness().Domains {
		actions = append(actions, SelectDomain{Domain: d})
		for _, p := range d.Projects {
			actions = append(actions, SelectProject{Domain: d, Project: p})
		}
		for _, tm := range d.Teams {
			actions = append(actions, SelectTeam{Domain: d, Team: tm})
		}
	}
	actions = append(actions, ShowEverything{}, SetRole{Role: domain.RoleDeveloper})

	rng := rand.New(rand.NewSource(7))
	s := Default(org)
	for i := 0; i < 500; i++ {
		a := actions[rng.Intn(len(actions))]
		s = Reduce(s, a)
		require.True(t, s.Consistent(), "after %s: level=%s domain=%v project=%v team=%v",
			a.Name(), s.Level, s.Domain != nil, s.Project != nil, s.Team != nil)
	}
}

func TestStore_DispatchNotifiesListeners(t *testing.T) {
	org := testOrg(t)
	d2, _ := org.GetDomainByID("domain2")
	store := NewStore(Default(org))

	var seen []string
	store.Subscribe(func(prev, next State, a Action) {
		seen = append(seen, a.Name())
		assert.Equal(t, domain.LevelEverything, prev.Level)
		assert.Equal(t, domain.LevelDomain, next.Level)
	})

	got := store.Dispatch(SelectDomain{Domain: d2})
	assert.Same(t, d2, got.Domain)
	assert.Same(t, d2, store.State().Domain)
	assert.Equal(t, []string{"select_domain"}, seen)
}
