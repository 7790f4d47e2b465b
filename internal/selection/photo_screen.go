package selection

import (
	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/route"
)

type GalleryScreen struct {
	Title  string     `json:"title"`
	Hint   string     `json:"hint"`
	Photos []PhotoRow `json:"photos"`
}

type PhotoRow struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ColorToken string `json:"color"`
	Path       string `json:"path"`
}

// PhotoDetail is the single photo renderer. Presentation decides whether it
// is drawn as an overlay over the gallery or as a page of its own.
type PhotoDetail struct {
	ID           string             `json:"id"`
	RequestedID  string             `json:"requested_id"`
	Title        string             `json:"title"`
	ColorToken   string             `json:"color"`
	Caption      string             `json:"caption"`
	Presentation route.Presentation `json:"presentation"`
	ClosePath    string             `json:"close_path,omitempty"`
	FellBack     bool               `json:"fell_back,omitempty"`
	Details      []KeyValue         `json:"details"`
}

// BuildGallery lists photos in catalog order.
func BuildGallery(photos []domain.Photo) GalleryScreen {
	g := GalleryScreen{
		Title: "Gallery",
		Hint:  "Open a photo to view it over the gallery. Closing returns to " + route.CloseOverlayPath + ".",
	}
	for _, p := range photos {
		g.Photos = append(g.Photos, PhotoRow{ID: p.ID, Title: p.Title, ColorToken: p.ColorToken, Path: route.PhotoPath(p.ID)})
	}
	return g
}

// BuildPhotoDetail describes photo for the given presentation. requested is
// the id from the path, which differs from photo.ID when the lookup fell
// back to the default photo.
func BuildPhotoDetail(photo domain.Photo, requested string, fellBack bool, pres route.Presentation) PhotoDetail {
	d := PhotoDetail{
		ID:           photo.ID,
		RequestedID:  requested,
		Title:        photo.Title,
		ColorToken:   photo.ColorToken,
		Caption:      "Photo #" + photo.ID + " • Edit the title to rename it",
		Presentation: pres,
		FellBack:     fellBack,
		Details: []KeyValue{
			{Key: "ID", Value: photo.ID},
			{Key: "Resolution", Value: "4K"},
			{Key: "Format", Value: "JPEG"},
		},
	}
	if pres == route.PresentationOverlay {
		d.ClosePath = route.CloseOverlayPath
	}
	return d
}
