package services

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/dto"
)

// ApartmentReaderSvc defines read operations for apartment data
type ApartmentReaderSvc interface {
	// GetApartmentByID retrieves an apartment, verifying it belongs to the
	// condominium and that the requesting user is a member.
	GetApartmentByID(ctx context.Context, condominiumID, apartmentID string, requestingUserID string) (*domain.Apartment, error)

	// ListApartments retrieves a paginated list of apartments in a condominium.
	ListApartments(ctx context.Context, condominiumID string, requestingUserID string, limit, offset int) ([]domain.Apartment, error)
}

// ApartmentWriterSvc defines write operations for apartment data
type ApartmentWriterSvc interface {
	// CreateApartment persists a new apartment in a condominium. Admin only.
	CreateApartment(ctx context.Context, condominiumID string, req dto.CreateApartmentRequest, requestingUserID string) (*domain.Apartment, error)

	// UpdateApartment updates an apartment. Admin only.
	UpdateApartment(ctx context.Context, condominiumID, apartmentID string, req dto.UpdateApartmentRequest, requestingUserID string) (*domain.Apartment, error)

	// DeleteApartment soft deletes an apartment. Admin only.
	DeleteApartment(ctx context.Context, condominiumID, apartmentID string, requestingUserID string) error
}

// ApartmentSvcFacade combines all apartment-related service interfaces
type ApartmentSvcFacade interface {
	ApartmentReaderSvc
	ApartmentWriterSvc
}
