package repository

import "github.com/alexanderramin/slotboard/internal/domain"

// OrgRepo is read-only access to the organisation dataset. Getters return an
// error wrapping domain.ErrNotFound for unknown ids.
type OrgRepo interface {
	GetBusinessByID(id string) (*domain.Business, error)
	GetDomainByID(id string) (*domain.Domain, error)
	GetProjectByID(id string) (*domain.Project, error)
	GetTeamByID(id string) (*domain.Team, error)
	GetUserByID(id string) (*domain.User, error)

	ListBusinesses() []*domain.Business
	ListUsers() []*domain.User
	ListProjectsByDomain(domainID string) []*domain.Project
	ListTeamsByDomain(domainID string) []*domain.Team

	BusinessStats(businessID string) domain.BusinessStats
	DefaultUser() domain.User
	DefaultBusiness() *domain.Business
}

// PhotoRepo is the shared photo catalog. It is the only mutable store.
type PhotoRepo interface {
	ListPhotos() []domain.Photo
	// GetPhoto resolves id, falling back to DefaultPhotoID when id is
	// unknown. fellBack reports whether the fallback was used.
	GetPhoto(id string) (photo domain.Photo, fellBack bool)
	// UpdateTitle sets the title of id and returns the stored photo.
	// changed is false when the title was already equal to title.
	UpdateTitle(id, title string) (photo domain.Photo, changed bool, err error)
}
