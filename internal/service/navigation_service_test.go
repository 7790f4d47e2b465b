package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

func TestNavigationService_SessionID(t *testing.T) {
	s := setupServices(t)
	_, err := uuid.Parse(s.nav.SessionID())
	assert.NoError(t, err)
}

func TestNavigationService_NavigateSelectsEntities(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.nav.Navigate(ctx, "/domain/domain2/commercials", route.SoftLoad)
	require.NoError(t, err)
	st := s.nav.State()
	assert.Equal(t, domain.LevelDomain, st.Level)
	assert.Equal(t, "domain2", st.Domain.ID)

	_, err = s.nav.Navigate(ctx, "/project/proj4", route.SoftLoad)
	require.NoError(t, err)
	st = s.nav.State()
	assert.Equal(t, domain.LevelProject, st.Level)
	assert.Equal(t, "domain3", st.Domain.ID)
	assert.Equal(t, "proj4", st.Project.ID)
	assert.Nil(t, st.Team)

	_, err = s.nav.Navigate(ctx, "/team/team3", route.SoftLoad)
	require.NoError(t, err)
	st = s.nav.State()
	assert.Equal(t, domain.LevelTeam, st.Level)
	assert.Nil(t, st.Project)
	assert.Equal(t, "domain2", st.Domain.ID)
	assert.True(t, st.Consistent())

	_, err = s.nav.Navigate(ctx, "/everything", route.SoftLoad)
	require.NoError(t, err)
	st = s.nav.State()
	assert.Equal(t, domain.LevelEverything, st.Level)
	assert.Nil(t, st.Domain)
	assert.True(t, st.Consistent())
}

func TestNavigationService_MissingEntityKeepsState(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.nav.Navigate(ctx, "/domain/domain1", route.SoftLoad)
	require.NoError(t, err)

	r, err := s.nav.Navigate(ctx, "/project/nope", route.HardLoad)
	require.NoError(t, err)
	assert.Equal(t, route.KindProject, r.Kind)
	assert.Equal(t, "domain1", s.nav.State().Domain.ID)
	assert.Equal(t, false, s.observer.last().Fields["found"])

	scr := s.nav.Compose(ctx, r)
	require.NotNil(t, scr.Project)
	assert.Equal(t, "Project not found", scr.Project.NotFound.Message)
}

func TestNavigationService_UnknownRoute(t *testing.T) {
	s := setupServices(t)
	before := s.nav.State()

	_, err := s.nav.Navigate(context.Background(), "/settings", route.SoftLoad)
	assert.ErrorIs(t, err, domain.ErrUnknownRoute)
	assert.Equal(t, before, s.nav.State())

	ev := s.observer.last()
	assert.Equal(t, "navigate", ev.Name)
	assert.False(t, ev.Success)
	assert.Equal(t, s.nav.SessionID(), ev.SessionID)
}

func TestNavigationService_PhotoRoutesDoNotTouchSelection(t *testing.T) {
	s := setupServices(t)
	before := s.nav.State()
	r, err := s.nav.Navigate(context.Background(), "/photo/4", route.HardLoad)
	require.NoError(t, err)
	assert.True(t, r.IsOverlay())
	assert.Equal(t, before, s.nav.State())
}

func TestNavigationService_SwitchRole(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	require.NoError(t, s.nav.SwitchRole(ctx, "project-manager"))
	st := s.nav.State()
	assert.Equal(t, domain.RoleProjectManager, st.Role())
	assert.Equal(t, "u1", st.User.ID)
	assert.False(t, st.Access().CanViewFinancials)

	err := s.nav.SwitchRole(ctx, "Intern")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
	assert.Equal(t, domain.RoleProjectManager, s.nav.State().Role())
}

func TestNavigationService_SwitchBusiness(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.nav.Navigate(ctx, "/project/proj1", route.SoftLoad)
	require.NoError(t, err)

	require.NoError(t, s.nav.SwitchBusiness(ctx, "biz2"))
	st := s.nav.State()
	assert.Equal(t, "biz2", st.Business.ID)
	assert.Equal(t, domain.LevelEverything, st.Level)
	assert.Nil(t, st.Project)

	assert.ErrorIs(t, s.nav.SwitchBusiness(ctx, "biz9"), domain.ErrNotFound)
}

func TestNavigationService_ListenersSeeDispatches(t *testing.T) {
	s := setupServices(t)
	var names []string
	s.store.Subscribe(func(_, _ viewstate.State, a viewstate.Action) {
		names = append(names, a.Name())
	})

	ctx := context.Background()
	_, _ = s.nav.Navigate(ctx, "/domain/domain1", route.SoftLoad)
	_ = s.nav.SwitchRole(ctx, domain.RoleCOO)
	_, _ = s.nav.Navigate(ctx, "/gallery", route.SoftLoad)

	assert.Equal(t, []string{"select_domain", "set_role"}, names)
}

func TestNavigationService_ComposeUsesCurrentRole(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()
	require.NoError(t, s.nav.SwitchRole(ctx, domain.RoleDeveloper))

	r, err := s.nav.Navigate(ctx, "/domain/domain1/commercials", route.SoftLoad)
	require.NoError(t, err)
	scr := s.nav.Compose(ctx, r)
	require.NotNil(t, scr.Domain)
	assert.NotNil(t, scr.Domain.Denied)
}
