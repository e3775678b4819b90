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

// commonServiceService implements the CommonServiceSvcFacade interface
type commonServiceService struct {
	BaseService
	serviceRepo portsrepo.CommonServiceRepositoryFacade
}

// CommonServiceServiceOption is a functional option for configuring the common service service
type CommonServiceServiceOption func(*commonServiceService)

// WithCommonServiceCondominiumAuthorizer sets the condominium authorizer.
func WithCommonServiceCondominiumAuthorizer(authorizer portssvc.CondominiumAuthorizerSvc) CommonServiceServiceOption {
	return func(s *commonServiceService) {
		s.CondominiumAuthorizer = authorizer
	}
}

// NewCommonServiceService creates a new common service service with the provided options
func NewCommonServiceService(repo portsrepo.CommonServiceRepositoryFacade, options ...CommonServiceServiceOption) portssvc.CommonServiceSvcFacade {
	svc := &commonServiceService{
		serviceRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.CommonServiceSvcFacade = (*commonServiceService)(nil)

func (s *commonServiceService) authorizeAndFetch(ctx context.Context, condominiumID, commonServiceID, userID string, requiredRole domain.CondominiumRole) (*domain.CommonService, error) {
	if err := s.AuthorizeUser(ctx, userID, condominiumID, requiredRole); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) && requiredRole == domain.RoleReadOnly {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	service, err := s.serviceRepo.FindCommonServiceByID(ctx, commonServiceID)
	if err != nil {
		return nil, err
	}
	if service.CondominiumID != condominiumID {
		return nil, apperrors.ErrNotFound
	}
	return service, nil
}

// GetCommonServiceByID retrieves a common service for a member of its condominium.
func (s *commonServiceService) GetCommonServiceByID(ctx context.Context, condominiumID, commonServiceID string, requestingUserID string) (*domain.CommonService, error) {
	service, err := s.authorizeAndFetch(ctx, condominiumID, commonServiceID, requestingUserID, domain.RoleReadOnly)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get common service",
				slog.String("common_service_id", commonServiceID),
				slog.String("condominium_id", condominiumID))
		}
		return nil, err
	}
	return service, nil
}

// ListCommonServices retrieves a paginated list of common services.
func (s *commonServiceService) ListCommonServices(ctx context.Context, condominiumID string, requestingUserID string, limit, offset int) ([]domain.CommonService, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	services, err := s.serviceRepo.ListCommonServicesByCondominiumID(ctx, condominiumID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list common services",
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if services == nil {
		return []domain.CommonService{}, nil
	}
	return services, nil
}

// CreateCommonService persists a new common service. Admin only.
func (s *commonServiceService) CreateCommonService(ctx context.Context, condominiumID string, req dto.CreateCommonServiceRequest, requestingUserID string) (*domain.CommonService, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create common service",
			slog.String("user_id", requestingUserID),
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if req.Price.IsNegative() {
		return nil, apperrors.NewValidationFailedError("service price cannot be negative")
	}

	now := time.Now()
	service := domain.CommonService{
		CommonServiceID: uuid.NewString(),
		CondominiumID:   condominiumID,
		Name:            req.Name,
		Provider:        req.Provider,
		Price:           req.Price,
		Frequency:       req.Frequency,
		Status:          domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.serviceRepo.SaveCommonService(ctx, service); err != nil {
		s.LogError(ctx, err, "Failed to save common service",
			slog.String("common_service_id", service.CommonServiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Common service created successfully",
		slog.String("common_service_id", service.CommonServiceID),
		slog.String("condominium_id", condominiumID))
	return &service, nil
}

// UpdateCommonService updates a common service. Admin only.
func (s *commonServiceService) UpdateCommonService(ctx context.Context, condominiumID, commonServiceID string, req dto.UpdateCommonServiceRequest, requestingUserID string) (*domain.CommonService, error) {
	service, err := s.authorizeAndFetch(ctx, condominiumID, commonServiceID, requestingUserID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Provider != nil {
		service.Provider = *req.Provider
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.NewValidationFailedError("service price cannot be negative")
		}
		service.Price = *req.Price
	}
	if req.Frequency != nil {
		service.Frequency = *req.Frequency
	}
	service.LastUpdatedAt = time.Now()
	service.LastUpdatedBy = requestingUserID

	if err := s.serviceRepo.UpdateCommonService(ctx, *service); err != nil {
		s.LogError(ctx, err, "Failed to update common service",
			slog.String("common_service_id", commonServiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Common service updated successfully",
		slog.String("common_service_id", commonServiceID))
	return service, nil
}

// DeleteCommonService soft deletes a common service. Admin only.
func (s *commonServiceService) DeleteCommonService(ctx context.Context, condominiumID, commonServiceID string, requestingUserID string) error {
	if _, err := s.authorizeAndFetch(ctx, condominiumID, commonServiceID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.serviceRepo.UpdateCommonServiceStatus(ctx, commonServiceID, domain.StatusDeleted, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete common service",
			slog.String("common_service_id", commonServiceID))
		return err
	}

	s.LogInfo(ctx, "Common service deleted",
		slog.String("common_service_id", commonServiceID),
		slog.String("user_id", requestingUserID))
	return nil
}
