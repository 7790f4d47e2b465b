package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
)

type photoService struct {
	photos   repository.PhotoRepo
	observer UseCaseObserver
}

func NewPhotoService(photos repository.PhotoRepo, observers ...UseCaseObserver) PhotoService {
	return &photoService{
		photos:   photos,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *photoService) List(context.Context) []domain.Photo {
	return s.photos.ListPhotos()
}

func (s *photoService) Get(_ context.Context, id string) (domain.Photo, bool) {
	return s.photos.GetPhoto(id)
}

func (s *photoService) Rename(ctx context.Context, id, title string) (photo domain.Photo, changed bool, err error) {
	fields := map[string]any{"photo_id": id}
	defer observe(ctx, s.observer, "rename-photo", "", time.Now().UTC(), fields, &err)

	title = strings.TrimSpace(title)
	if title == "" {
		current, fellBack := s.photos.GetPhoto(id)
		if fellBack {
			return domain.Photo{}, false, fmt.Errorf("renaming photo: %w: photo %q", domain.ErrNotFound, id)
		}
		fields["changed"] = false
		return current, false, nil
	}
	photo, changed, err = s.photos.UpdateTitle(id, title)
	if err != nil {
		return domain.Photo{}, false, fmt.Errorf("renaming photo: %w", err)
	}
	fields["changed"] = changed
	return photo, changed, nil
}
