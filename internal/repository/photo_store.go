package repository

import (
	"sync"

	"github.com/alexanderramin/slotboard/internal/domain"
)

// DefaultPhotoID is served for any photo id the catalog does not hold.
const DefaultPhotoID = "1"

// PhotoStore is the single source of truth for photo titles. Every view that
// shows a photo reads from the same store, so an edit is visible everywhere
// on the next render.
type PhotoStore struct {
	mu     sync.RWMutex
	photos []domain.Photo
}

func NewPhotoStore(seed []domain.Photo) *PhotoStore {
	return &PhotoStore{photos: append([]domain.Photo(nil), seed...)}
}

func (s *PhotoStore) ListPhotos() []domain.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Photo(nil), s.photos...)
}

func (s *PhotoStore) GetPhoto(id string) (domain.Photo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.find(id); ok {
		return p, false
	}
	p, _ := s.find(DefaultPhotoID)
	return p, true
}

// UpdateTitle replaces the title of the photo with the given id. The
// comparison and the write happen under one lock, so of several concurrent
// writers of the same title exactly one sees changed. Other photos are
// untouched.
func (s *PhotoStore) UpdateTitle(id, title string) (domain.Photo, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.photos {
		if s.photos[i].ID != id {
			continue
		}
		if s.photos[i].Title == title {
			return s.photos[i], false, nil
		}
		s.photos[i].Title = title
		return s.photos[i], true, nil
	}
	return domain.Photo{}, false, notFound("photo", id)
}

func (s *PhotoStore) find(id string) (domain.Photo, bool) {
	for _, p := range s.photos {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Photo{}, false
}
