package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

type services struct {
	org      *repository.MemoryOrgRepo
	photos   *repository.PhotoStore
	store    *viewstate.Store
	nav      NavigationService
	photoSvc PhotoService
	screens  ScreenService
	observer *recordingObserver
}

func setupServices(t *testing.T) services {
	t.Helper()
	org := repository.MustMemoryOrgRepo()
	photos := repository.NewPhotoStore(org.Photos())
	store := viewstate.NewStore(viewstate.Default(org))
	obs := &recordingObserver{}
	composer := selection.NewComposer(org, photos)
	photoSvc := NewPhotoService(photos, obs)
	return services{
		org:      org,
		photos:   photos,
		store:    store,
		nav:      NewNavigationService(org, store, photoSvc, composer, obs),
		photoSvc: photoSvc,
		screens:  NewScreenService(org, composer, obs),
		observer: obs,
	}
}
