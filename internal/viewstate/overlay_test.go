package viewstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/slotboard/internal/domain"
)

func TestOverlay_ZeroValueClosed(t *testing.T) {
	var o Overlay
	assert.Equal(t, OverlayClosed, o.State)
	assert.Equal(t, "closed", o.State.String())
}

func TestOverlay_OpenEditSave(t *testing.T) {
	o := Overlay{}.Open("2")
	assert.Equal(t, OverlayOpen, o.State)
	assert.Equal(t, "2", o.PhotoID)

	o, err := o.BeginEdit("Ocean Waves")
	require.NoError(t, err)
	assert.Equal(t, OverlayEditing, o.State)
	assert.Equal(t, "Ocean Waves", o.Draft())

	o, err = o.SetDraft("  New Title ")
	require.NoError(t, err)

	o, title, save, err := o.Commit()
	require.NoError(t, err)
	assert.Equal(t, OverlayOpen, o.State)
	assert.Equal(t, "New Title", title)
	assert.True(t, save)
	assert.Equal(t, "", o.Draft())
}

func TestOverlay_CommitEmptyIsNoop(t *testing.T) {
	o, _ := Overlay{}.Open("1").BeginEdit("Mountain Sunrise")
	o, _ = o.SetDraft("   ")

	o, _, save, err := o.Commit()
	require.NoError(t, err)
	assert.False(t, save)
	assert.Equal(t, OverlayOpen, o.State)
}

func TestOverlay_CommitUnchangedIsNoop(t *testing.T) {
	o, _ := Overlay{}.Open("1").BeginEdit("Mountain Sunrise")

	_, title, save, err := o.Commit()
	require.NoError(t, err)
	assert.Equal(t, "Mountain Sunrise", title)
	assert.False(t, save)
}

func TestOverlay_EscapeWhileEditingCancels(t *testing.T) {
	o, _ := Overlay{}.Open("3").BeginEdit("Forest Path")
	o, _ = o.SetDraft("Discard me")

	o, err := o.Escape()
	require.NoError(t, err)
	assert.Equal(t, OverlayOpen, o.State, "escape must not close while editing")
	assert.Equal(t, "3", o.PhotoID)
	assert.Equal(t, "", o.Draft())
}

func TestOverlay_EscapeWhenOpenCloses(t *testing.T) {
	o := Overlay{}.Open("3")

	o, err := o.Escape()
	require.NoError(t, err)
	assert.Equal(t, OverlayClosed, o.State)
}

func TestOverlay_CloseWhileEditingDiscardsDraft(t *testing.T) {
	o, _ := Overlay{}.Open("3").BeginEdit("Forest Path")
	o, _ = o.SetDraft("Unsaved")

	o, err := o.Close()
	require.NoError(t, err)
	assert.Equal(t, OverlayClosed, o.State)
	assert.Equal(t, "", o.Draft())
}

func TestOverlay_InvalidTransitions(t *testing.T) {
	var closed Overlay
	_, err := closed.BeginEdit("x")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = closed.Close()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = closed.Escape()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	open := Overlay{}.Open("1")
	_, _, _, err = open.Commit()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = open.Cancel()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = open.SetDraft("x")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	editing, _ := open.BeginEdit("t")
	_, err = editing.BeginEdit("t")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOverlay_OpenOtherPhotoDropsDraft(t *testing.T) {
	o, _ := Overlay{}.Open("1").BeginEdit("Mountain Sunrise")
	o = o.Open("4")

	assert.Equal(t, OverlayOpen, o.State)
	assert.Equal(t, "4", o.PhotoID)
	assert.Equal(t, "", o.Draft())
}
