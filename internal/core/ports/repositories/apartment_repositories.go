package repositories

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// ApartmentReader defines read operations for apartment data
type ApartmentReader interface {
	// FindApartmentByID retrieves a specific apartment by its ID.
	FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)

	// ListApartmentsByCondominiumID retrieves a paginated list of apartments
	// for a condominium, excluding DELETED rows.
	ListApartmentsByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.Apartment, error)
}

// ApartmentWriter defines write operations for apartment data
type ApartmentWriter interface {
	// SaveApartment persists a new apartment.
	SaveApartment(ctx context.Context, apartment domain.Apartment) error

	// UpdateApartment updates the mutable fields of an apartment.
	UpdateApartment(ctx context.Context, apartment domain.Apartment) error

	// UpdateApartmentStatus changes the lifecycle status of an apartment.
	UpdateApartmentStatus(ctx context.Context, apartmentID string, status domain.EntityStatus, updatedByUserID string) error
}

// ApartmentRepositoryFacade combines all apartment-related repository interfaces
type ApartmentRepositoryFacade interface {
	ApartmentReader
	ApartmentWriter
}
