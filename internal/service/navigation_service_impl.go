package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

type navigationService struct {
	org       repository.OrgRepo
	store     *viewstate.Store
	photos    PhotoService
	composer  *selection.Composer
	sessionID string
	observer  UseCaseObserver
}

// NewNavigationService starts a session on store. The store is driven only
// through this service afterwards.
func NewNavigationService(
	org repository.OrgRepo,
	store *viewstate.Store,
	photos PhotoService,
	composer *selection.Composer,
	observers ...UseCaseObserver,
) NavigationService {
	return &navigationService{
		org:       org,
		store:     store,
		photos:    photos,
		composer:  composer,
		sessionID: uuid.NewString(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *navigationService) SessionID() string { return s.sessionID }

func (s *navigationService) State() viewstate.State { return s.store.State() }

// Navigate resolves path and selects the entity it names. A path naming an
// unknown entity is not an error: the state is left alone and the screen
// reports the entity as missing.
func (s *navigationService) Navigate(ctx context.Context, path string, load route.Load) (r route.Route, err error) {
	fields := map[string]any{"path": path, "load": load.String()}
	defer observe(ctx, s.observer, "navigate", s.sessionID, time.Now().UTC(), fields, &err)

	r, err = route.Resolve(path, load)
	if err != nil {
		return route.Route{}, fmt.Errorf("navigating: %w", err)
	}
	fields["kind"] = string(r.Kind)

	action, found := s.selectionFor(r)
	fields["found"] = found
	if action == nil {
		return r, nil
	}
	fields["action"] = action.Name()
	s.store.Dispatch(action)
	return r, nil
}

// selectionFor returns the view-state action for r, or nil when r does not
// change the selection. found is false when r names a missing entity.
func (s *navigationService) selectionFor(r route.Route) (viewstate.Action, bool) {
	switch r.Kind {
	case route.KindEverything:
		return viewstate.ShowEverything{}, true
	case route.KindDomain:
		d, err := s.org.GetDomainByID(r.EntityID)
		if err != nil {
			return nil, false
		}
		return viewstate.SelectDomain{Domain: d}, true
	case route.KindProject:
		p, err := s.org.GetProjectByID(r.EntityID)
		if err != nil {
			return nil, false
		}
		d, _ := s.org.GetDomainByID(p.DomainID)
		return viewstate.SelectProject{Domain: d, Project: p}, true
	case route.KindTeam:
		t, err := s.org.GetTeamByID(r.EntityID)
		if err != nil {
			return nil, false
		}
		d, _ := s.org.GetDomainByID(t.DomainID)
		return viewstate.SelectTeam{Domain: d, Team: t}, true
	}
	return nil, true
}

func (s *navigationService) SwitchRole(ctx context.Context, role domain.Role) (err error) {
	fields := map[string]any{"role": string(role)}
	defer observe(ctx, s.observer, "switch-role", s.sessionID, time.Now().UTC(), fields, &err)

	parsed, err := domain.ParseRole(string(role))
	if err != nil {
		return fmt.Errorf("switching role: %w", err)
	}
	s.store.Dispatch(viewstate.SetRole{Role: parsed})
	return nil
}

func (s *navigationService) SwitchBusiness(ctx context.Context, id string) (err error) {
	fields := map[string]any{"business_id": id}
	defer observe(ctx, s.observer, "switch-business", s.sessionID, time.Now().UTC(), fields, &err)

	biz, err := s.org.GetBusinessByID(id)
	if err != nil {
		return fmt.Errorf("switching business: %w", err)
	}
	s.store.Dispatch(viewstate.SelectBusiness{Business: biz})
	return nil
}

func (s *navigationService) RenamePhoto(ctx context.Context, id, title string) (bool, error) {
	_, changed, err := s.photos.Rename(ctx, id, title)
	return changed, err
}

func (s *navigationService) Compose(_ context.Context, r route.Route) selection.Screen {
	return s.composer.Compose(s.store.State(), r)
}
