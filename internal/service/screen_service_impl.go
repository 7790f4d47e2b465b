package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/slotboard/internal/domain"
	"github.com/alexanderramin/slotboard/internal/repository"
	"github.com/alexanderramin/slotboard/internal/route"
	"github.com/alexanderramin/slotboard/internal/selection"
	"github.com/alexanderramin/slotboard/internal/viewstate"
)

type screenService struct {
	org      repository.OrgRepo
	composer *selection.Composer
	observer UseCaseObserver
}

// NewScreenService composes screens for one-off requests. Each request
// starts from the default selection, so requests never share state.
func NewScreenService(org repository.OrgRepo, composer *selection.Composer, observers ...UseCaseObserver) ScreenService {
	return &screenService{
		org:      org,
		composer: composer,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *screenService) Screen(ctx context.Context, req ScreenRequest) (scr selection.Screen, err error) {
	fields := map[string]any{"path": req.Path, "role": string(req.Role), "load": req.Load.String()}
	defer observe(ctx, s.observer, "compose-screen", "", time.Now().UTC(), fields, &err)

	r, err := route.Resolve(req.Path, req.Load)
	if err != nil {
		return selection.Screen{}, fmt.Errorf("composing screen: %w", err)
	}

	state := viewstate.Default(s.org)
	if req.BusinessID != "" {
		var biz *domain.Business
		if biz, err = s.org.GetBusinessByID(req.BusinessID); err != nil {
			return selection.Screen{}, fmt.Errorf("composing screen: %w", err)
		}
		state = viewstate.Reduce(state, viewstate.SelectBusiness{Business: biz})
	}
	if req.Role != "" {
		var role domain.Role
		if role, err = domain.ParseRole(string(req.Role)); err != nil {
			return selection.Screen{}, fmt.Errorf("composing screen: %w", err)
		}
		state = viewstate.Reduce(state, viewstate.SetRole{Role: role})
	}
	fields["kind"] = string(r.Kind)
	return s.composer.Compose(state, r), nil
}
