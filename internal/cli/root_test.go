package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
)

// execute runs args through a fresh command tree and returns plain output.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	root.SilenceErrors = true
	err := root.Execute()
	return ansi.Strip(buf.String()), err
}

func TestShowCmd_DeniedForDeveloper(t *testing.T) {
	out, err := execute(t, testApp(t), "show", "/domain/domain1/commercials", "--role", "Developer")
	require.NoError(t, err)
	assert.Contains(t, out, "Limited Access")
	assert.Contains(t, out, "CEO - Full financial access")
	assert.NotContains(t, out, "Total Cost")
}

func TestShowCmd_CommercialsForCOO(t *testing.T) {
	out, err := execute(t, testApp(t), "show", "/domain/domain1/commercials", "--role", "coo")
	require.NoError(t, err)
	assert.NotContains(t, out, "Limited Access")
	assert.Contains(t, out, "Total Cost")
}

func TestShowCmd_JSON(t *testing.T) {
	out, err := execute(t, testApp(t), "show", "/photo/3", "--hard", "--json")
	require.NoError(t, err)

	var scr selection.Screen
	require.NoError(t, json.Unmarshal([]byte(out), &scr))
	assert.Equal(t, route.KindPhoto, scr.Kind)
	assert.Equal(t, "hard", scr.Load)
	require.NotNil(t, scr.Photo)
	assert.Equal(t, "Forest Path", scr.Photo.Title)
	assert.Equal(t, route.PresentationOverlay, scr.Photo.Presentation)
	require.NotNil(t, scr.Gallery)
}

func TestShowCmd_HardGalleryPhotoIsFullPage(t *testing.T) {
	out, err := execute(t, testApp(t), "show", "/gallery/photo/3", "--hard", "--json")
	require.NoError(t, err)

	var scr selection.Screen
	require.NoError(t, json.Unmarshal([]byte(out), &scr))
	require.NotNil(t, scr.Photo)
	assert.Equal(t, route.PresentationFullPage, scr.Photo.Presentation)
	assert.Nil(t, scr.Gallery)
}

func TestShowCmd_Errors(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "show", "/nowhere")
	assert.ErrorIs(t, err, domain.ErrUnknownRoute)

	_, err = execute(t, app, "show", "/", "--role", "Intern")
	assert.ErrorContains(t, err, domain.ErrUnknownRole.Error())

	_, err = execute(t, app, "show", "/", "--business", "biz9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccessCmd(t *testing.T) {
	out, err := execute(t, testApp(t), "access")
	require.NoError(t, err)
	for _, r := range domain.AllRoles() {
		assert.Contains(t, out, r.DisplayName())
	}

	out, err = execute(t, testApp(t), "access", "project-manager")
	require.NoError(t, err)
	assert.Contains(t, out, "Project Manager")
	assert.NotContains(t, out, "CEO")
}

func TestPhotosCmd_ListAndRename(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "photos")
	require.NoError(t, err)
	assert.Contains(t, out, "Ocean Waves")

	out, err = execute(t, app, "photos", "rename", "2", "Sea", "Spray")
	require.NoError(t, err)
	assert.Contains(t, out, "Renamed photo 2: Sea Spray")

	out, err = execute(t, app, "photos", "rename", "2", "  Sea Spray ")
	require.NoError(t, err)
	assert.Contains(t, out, "Title unchanged")

	_, err = execute(t, app, "photos", "rename", "99", "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServeCmd(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "serve")
	assert.Error(t, err)

	var gotAddr string
	app.Serve = func(_ context.Context, addr string) error {
		gotAddr = addr
		return nil
	}
	_, err = execute(t, app, "serve", "--addr", "127.0.0.1:9999")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", gotAddr)
}

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := execute(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "slotboard")
	assert.Contains(t, out, "show")
}

func TestApplySessionFlags(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	flags := &rootFlags{business: "biz2"}
	require.NoError(t, flags.role.Set("domain head"))
	require.NoError(t, applySessionFlags(ctx, app, flags))
	st := app.Nav.State()
	assert.Equal(t, domain.RoleDomainHead, st.Role())
	assert.Equal(t, "biz2", st.Business.ID)

	assert.ErrorIs(t, flags.role.Set("nobody"), domain.ErrUnknownRole)
	assert.ErrorIs(t, applySessionFlags(ctx, app, &rootFlags{business: "biz9"}), domain.ErrNotFound)
}
