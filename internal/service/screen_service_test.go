package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
)

func TestScreenService_RoleFromRequest(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	scr, err := s.screens.Screen(ctx, ScreenRequest{Path: "/domain/domain1/commercials", Role: "developer"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDeveloper, scr.Role)
	require.NotNil(t, scr.Domain)
	assert.NotNil(t, scr.Domain.Denied)

	scr, err = s.screens.Screen(ctx, ScreenRequest{Path: "/domain/domain1/commercials"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCEO, scr.Role)
	assert.NotNil(t, scr.Domain.Commercials)
}

func TestScreenService_RequestsDoNotShareState(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	other, err := s.screens.Screen(ctx, ScreenRequest{Path: "/", Role: domain.RoleCEO, BusinessID: "biz2"})
	require.NoError(t, err)
	assert.Empty(t, other.Everything.Domains)
	assert.Empty(t, other.Everything.TopDomains)

	scr, err := s.screens.Screen(ctx, ScreenRequest{Path: "/"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCEO, scr.Role)
	assert.Len(t, scr.Everything.Domains, 4)
}

func TestScreenService_Errors(t *testing.T) {
	s := setupServices(t)
	ctx := context.Background()

	_, err := s.screens.Screen(ctx, ScreenRequest{Path: "/nowhere"})
	assert.ErrorIs(t, err, domain.ErrUnknownRoute)

	_, err = s.screens.Screen(ctx, ScreenRequest{Path: "/", Role: "Intern"})
	assert.ErrorIs(t, err, domain.ErrUnknownRole)

	_, err = s.screens.Screen(ctx, ScreenRequest{Path: "/", BusinessID: "biz9"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScreenService_HardLoadGalleryPhoto(t *testing.T) {
	s := setupServices(t)
	scr, err := s.screens.Screen(context.Background(), ScreenRequest{Path: "/gallery/photo/2", Load: route.HardLoad})
	require.NoError(t, err)
	assert.Equal(t, route.PresentationFullPage, scr.Presentation)
	assert.Nil(t, scr.Gallery)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(zerolog.New(&buf))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:      "navigate",
		SessionID: "s-1",
		Duration:  12 * time.Millisecond,
		Success:   true,
		Fields:    map[string]any{"path": "/gallery"},
	})
	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"use_case":"navigate"`)
	assert.Contains(t, out, `"session_id":"s-1"`)
	assert.Contains(t, out, `"duration_ms":12`)
	assert.Contains(t, out, `"path":"/gallery"`)

	buf.Reset()
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "switch-role", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	obs := &recordingObserver{}
	assert.Same(t, obs, useCaseObserverOrNoop([]UseCaseObserver{nil, obs}))
}
