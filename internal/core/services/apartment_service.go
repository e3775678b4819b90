package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/google/uuid"
)

// apartmentService implements the ApartmentSvcFacade interface
type apartmentService struct {
	BaseService
	apartmentRepo portsrepo.ApartmentRepositoryFacade
}

// ApartmentServiceOption is a functional option for configuring the apartment service
type ApartmentServiceOption func(*apartmentService)

// WithApartmentCondominiumAuthorizer sets the condominium authorizer for the apartment service.
func WithApartmentCondominiumAuthorizer(authorizer portssvc.CondominiumAuthorizerSvc) ApartmentServiceOption {
	return func(s *apartmentService) {
		s.CondominiumAuthorizer = authorizer
	}
}

// NewApartmentService creates a new apartment service with the provided options
func NewApartmentService(repo portsrepo.ApartmentRepositoryFacade, options ...ApartmentServiceOption) portssvc.ApartmentSvcFacade {
	svc := &apartmentService{
		apartmentRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ApartmentSvcFacade = (*apartmentService)(nil)

// authorizeAndFetch loads the apartment and verifies it belongs to the condominium.
// A mismatch is reported as ErrNotFound so apartments of other condominiums
// stay invisible.
func (s *apartmentService) authorizeAndFetch(ctx context.Context, condominiumID, apartmentID, userID string, requiredRole domain.CondominiumRole) (*domain.Apartment, error) {
	if err := s.AuthorizeUser(ctx, userID, condominiumID, requiredRole); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) && requiredRole == domain.RoleReadOnly {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	if apartment.CondominiumID != condominiumID {
		return nil, apperrors.ErrNotFound
	}
	return apartment, nil
}

// GetApartmentByID retrieves an apartment for a member of its condominium.
func (s *apartmentService) GetApartmentByID(ctx context.Context, condominiumID, apartmentID string, requestingUserID string) (*domain.Apartment, error) {
	apartment, err := s.authorizeAndFetch(ctx, condominiumID, apartmentID, requestingUserID, domain.RoleReadOnly)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get apartment",
				slog.String("apartment_id", apartmentID),
				slog.String("condominium_id", condominiumID))
		}
		return nil, err
	}
	return apartment, nil
}

// ListApartments retrieves a paginated list of apartments in a condominium.
func (s *apartmentService) ListApartments(ctx context.Context, condominiumID string, requestingUserID string, limit, offset int) ([]domain.Apartment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	apartments, err := s.apartmentRepo.ListApartmentsByCondominiumID(ctx, condominiumID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list apartments",
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if apartments == nil {
		return []domain.Apartment{}, nil
	}
	return apartments, nil
}

// CreateApartment persists a new apartment in a condominium. Admin only.
func (s *apartmentService) CreateApartment(ctx context.Context, condominiumID string, req dto.CreateApartmentRequest, requestingUserID string) (*domain.Apartment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create apartment",
			slog.String("user_id", requestingUserID),
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	now := time.Now()
	apartment := domain.Apartment{
		ApartmentID:   uuid.NewString(),
		CondominiumID: condominiumID,
		Name:          req.Name,
		Description:   req.Description,
		OwnerID:       req.OwnerID,
		Floor:         req.Floor,
		Size:          req.Size,
		Rooms:         req.Rooms,
		Bathrooms:     req.Bathrooms,
		ParkingSpaces: req.ParkingSpaces,
		Status:        domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.apartmentRepo.SaveApartment(ctx, apartment); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save apartment",
				slog.String("apartment_id", apartment.ApartmentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Apartment created successfully",
		slog.String("apartment_id", apartment.ApartmentID),
		slog.String("condominium_id", condominiumID))
	return &apartment, nil
}

// UpdateApartment updates an apartment. Admin only.
func (s *apartmentService) UpdateApartment(ctx context.Context, condominiumID, apartmentID string, req dto.UpdateApartmentRequest, requestingUserID string) (*domain.Apartment, error) {
	apartment, err := s.authorizeAndFetch(ctx, condominiumID, apartmentID, requestingUserID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		apartment.Name = *req.Name
	}
	if req.Description != nil {
		apartment.Description = *req.Description
	}
	if req.OwnerID != nil {
		apartment.OwnerID = *req.OwnerID
	}
	if req.Floor != nil {
		apartment.Floor = *req.Floor
	}
	if req.Size != nil {
		apartment.Size = *req.Size
	}
	if req.Rooms != nil {
		apartment.Rooms = *req.Rooms
	}
	if req.Bathrooms != nil {
		apartment.Bathrooms = *req.Bathrooms
	}
	if req.ParkingSpaces != nil {
		apartment.ParkingSpaces = *req.ParkingSpaces
	}
	apartment.LastUpdatedAt = time.Now()
	apartment.LastUpdatedBy = requestingUserID

	if err := s.apartmentRepo.UpdateApartment(ctx, *apartment); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update apartment",
				slog.String("apartment_id", apartmentID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Apartment updated successfully",
		slog.String("apartment_id", apartmentID))
	return apartment, nil
}

// DeleteApartment soft deletes an apartment. Admin only.
func (s *apartmentService) DeleteApartment(ctx context.Context, condominiumID, apartmentID string, requestingUserID string) error {
	if _, err := s.authorizeAndFetch(ctx, condominiumID, apartmentID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.apartmentRepo.UpdateApartmentStatus(ctx, apartmentID, domain.StatusDeleted, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete apartment",
			slog.String("apartment_id", apartmentID))
		return err
	}

	s.LogInfo(ctx, "Apartment deleted",
		slog.String("apartment_id", apartmentID),
		slog.String("user_id", requestingUserID))
	return nil
}
