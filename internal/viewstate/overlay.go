package viewstate

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/slotboard/internal/domain"
)

type OverlayState int

const (
	OverlayClosed OverlayState = iota
	OverlayOpen
	OverlayEditing
)

func (s OverlayState) String() string {
	switch s {
	case OverlayOpen:
		return "open"
	case OverlayEditing:
		return "editing"
	default:
		return "closed"
	}
}

// Overlay is the photo detail overlay: which photo it shows and, while the
// title is being edited, the uncommitted draft. The zero value is closed.
type Overlay struct {
	State   OverlayState
	PhotoID string

	draft    string
	original string
}

// Draft is the in-progress title while editing, "" otherwise.
func (o Overlay) Draft() string {
	return o.draft
}

// Open shows photo id. Opening a different photo while editing discards the
// draft.
func (o Overlay) Open(id string) Overlay {
	return Overlay{State: OverlayOpen, PhotoID: id}
}

// BeginEdit enters title editing, seeding the draft with the current title.
func (o Overlay) BeginEdit(currentTitle string) (Overlay, error) {
	if o.State != OverlayOpen {
		return o, o.invalid("begin edit")
	}
	o.State = OverlayEditing
	o.draft = currentTitle
	o.original = currentTitle
	return o, nil
}

// SetDraft replaces the draft text.
func (o Overlay) SetDraft(text string) (Overlay, error) {
	if o.State != OverlayEditing {
		return o, o.invalid("set draft")
	}
	o.draft = text
	return o, nil
}

// Commit leaves editing. It returns the trimmed title and whether it should
// be saved: empty titles and titles equal to the one editing started from are
// no-ops.
func (o Overlay) Commit() (next Overlay, title string, save bool, err error) {
	if o.State != OverlayEditing {
		return o, "", false, o.invalid("commit")
	}
	title = strings.TrimSpace(o.draft)
	save = title != "" && title != o.original
	return Overlay{State: OverlayOpen, PhotoID: o.PhotoID}, title, save, nil
}

// Cancel leaves editing and discards the draft.
func (o Overlay) Cancel() (Overlay, error) {
	if o.State != OverlayEditing {
		return o, o.invalid("cancel")
	}
	return Overlay{State: OverlayOpen, PhotoID: o.PhotoID}, nil
}

// Close dismisses the overlay from any open state. An unsaved draft is lost.
func (o Overlay) Close() (Overlay, error) {
	if o.State == OverlayClosed {
		return o, o.invalid("close")
	}
	return Overlay{State: OverlayClosed}, nil
}

// Escape cancels an edit when editing and closes the overlay otherwise.
func (o Overlay) Escape() (Overlay, error) {
	if o.State == OverlayEditing {
		return o.Cancel()
	}
	return o.Close()
}

func (o Overlay) invalid(op string) error {
	return fmt.Errorf("%w: %s while %s", domain.ErrInvalidTransition, op, o.State)
}
