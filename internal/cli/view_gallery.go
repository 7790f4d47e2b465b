package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/slotboard/internal/cli/formatter"
	"github.com/alexanderramin/slotboard/internal/route"
)

// galleryView lists the photos. Opening one goes to /photo/{id}, which the
// app draws as an overlay on top of this view.
type galleryView struct {
	screenView
	links linkList
}

func newGalleryView(state *SharedState, r route.Route) *galleryView {
	v := &galleryView{screenView: newScreenView(state, r)}
	v.relink()
	return v
}

// newGalleryBackdrop builds the gallery placed under a photo overlay.
func newGalleryBackdrop(state *SharedState, photoID string) *galleryView {
	r, _ := route.Resolve(route.CloseOverlayPath, route.SoftLoad)
	v := newGalleryView(state, r)
	for i, p := range v.links.paths {
		if p == route.PhotoPath(photoID) {
			v.links.cursor = i
		}
	}
	return v
}

func (v *galleryView) relink() {
	g := v.screen.Gallery
	if g == nil {
		v.links.set(nil)
		return
	}
	paths := make([]string, 0, len(g.Photos))
	for _, p := range g.Photos {
		paths = append(paths, p.Path)
	}
	v.links.set(paths)
}

func (v *galleryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.recompose()
		v.relink()
		return v, nil
	case tea.KeyMsg:
		if cmd, ok := v.links.handleKey(msg); ok {
			return v, cmd
		}
		if cmd, ok := v.scroll(msg); ok {
			return v, cmd
		}
	}
	return v, nil
}

func (v *galleryView) View() string {
	if v.screen.Gallery == nil {
		return ""
	}
	return v.frame(formatter.FormatGallery(*v.screen.Gallery, v.links.cursor))
}

func (v *galleryView) ID() ViewID    { return ViewGallery }
func (v *galleryView) Title() string { return "Gallery" }
func (v *galleryView) ShortHelp() []key.Binding {
	return []key.Binding{keyMove, keyOpen}
}
