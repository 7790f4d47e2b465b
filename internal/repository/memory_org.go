package repository

import (
	"fmt"

	"github.com/alexanderramin/slotboard/internal/domain"
)

// MemoryOrgRepo implements OrgRepo over the resolved dataset. Lookups are
// linear scans in dataset order; the data never changes after load, so no
// locking is needed.
type MemoryOrgRepo struct {
	ds *dataset
}

// NewMemoryOrgRepo loads the embedded dataset.
func NewMemoryOrgRepo() (*MemoryOrgRepo, error) {
	ds, err := decodeDataset(datasetYAML)
	if err != nil {
		return nil, fmt.Errorf("loading org dataset: %w", err)
	}
	return &MemoryOrgRepo{ds: ds}, nil
}

// MustMemoryOrgRepo is NewMemoryOrgRepo for callers where the embedded
// dataset failing to load is a build defect.
func MustMemoryOrgRepo() *MemoryOrgRepo {
	r, err := NewMemoryOrgRepo()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *MemoryOrgRepo) GetBusinessByID(id string) (*domain.Business, error) {
	for _, b := range r.ds.businesses {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, notFound("business", id)
}

func (r *MemoryOrgRepo) GetDomainByID(id string) (*domain.Domain, error) {
	for _, d := range r.ds.domains {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, notFound("domain", id)
}

func (r *MemoryOrgRepo) GetProjectByID(id string) (*domain.Project, error) {
	for _, p := range r.ds.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, notFound("project", id)
}

func (r *MemoryOrgRepo) GetTeamByID(id string) (*domain.Team, error) {
	for _, t := range r.ds.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, notFound("team", id)
}

func (r *MemoryOrgRepo) GetUserByID(id string) (*domain.User, error) {
	for _, u := range r.ds.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, notFound("user", id)
}

func (r *MemoryOrgRepo) ListBusinesses() []*domain.Business {
	return append([]*domain.Business(nil), r.ds.businesses...)
}

func (r *MemoryOrgRepo) ListUsers() []*domain.User {
	return append([]*domain.User(nil), r.ds.users...)
}

// ListProjectsByDomain filters on each project's DomainID, not on the
// domain's own project list.
func (r *MemoryOrgRepo) ListProjectsByDomain(domainID string) []*domain.Project {
	var out []*domain.Project
	for _, p := range r.ds.projects {
		if p.DomainID == domainID {
			out = append(out, p)
		}
	}
	return out
}

// ListTeamsByDomain filters on each team's DomainID, not on the domain's own
// team list.
func (r *MemoryOrgRepo) ListTeamsByDomain(domainID string) []*domain.Team {
	var out []*domain.Team
	for _, t := range r.ds.teams {
		if t.DomainID == domainID {
			out = append(out, t)
		}
	}
	return out
}

// BusinessStats returns the stored aggregates for businessID. A business
// without recorded stats gets the zero value.
func (r *MemoryOrgRepo) BusinessStats(businessID string) domain.BusinessStats {
	if businessID != r.ds.statsBizID {
		return domain.BusinessStats{}
	}
	return r.ds.stats
}

func (r *MemoryOrgRepo) DefaultUser() domain.User {
	u, _ := r.GetUserByID(r.ds.defaults.UserID)
	return *u
}

func (r *MemoryOrgRepo) DefaultBusiness() *domain.Business {
	if b, err := r.GetBusinessByID(r.ds.defaults.BusinessID); err == nil {
		return b
	}
	return r.ds.businesses[0]
}

// Photos returns the catalog as loaded, for seeding a PhotoStore.
func (r *MemoryOrgRepo) Photos() []domain.Photo {
	return append([]domain.Photo(nil), r.ds.photos...)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, domain.ErrNotFound)
}
