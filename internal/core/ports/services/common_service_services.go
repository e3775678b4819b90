package services

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/dto"
)

// CommonServiceReaderSvc defines read operations for common service data
type CommonServiceReaderSvc interface {
	// GetCommonServiceByID retrieves a common service, verifying condominium
	// ownership and requester membership.
	GetCommonServiceByID(ctx context.Context, condominiumID, commonServiceID string, requestingUserID string) (*domain.CommonService, error)

	// ListCommonServices retrieves a paginated list of common services.
	ListCommonServices(ctx context.Context, condominiumID string, requestingUserID string, limit, offset int) ([]domain.CommonService, error)
}

// CommonServiceWriterSvc defines write operations for common service data
type CommonServiceWriterSvc interface {
	// CreateCommonService persists a new common service. Admin only.
	CreateCommonService(ctx context.Context, condominiumID string, req dto.CreateCommonServiceRequest, requestingUserID string) (*domain.CommonService, error)

	// UpdateCommonService updates a common service. Admin only.
	UpdateCommonService(ctx context.Context, condominiumID, commonServiceID string, req dto.UpdateCommonServiceRequest, requestingUserID string) (*domain.CommonService, error)

	// DeleteCommonService soft deletes a common service. Admin only.
	DeleteCommonService(ctx context.Context, condominiumID, commonServiceID string, requestingUserID string) error
}

// CommonServiceSvcFacade combines all common-service service interfaces
type CommonServiceSvcFacade interface {
	CommonServiceReaderSvc
	CommonServiceWriterSvc
}
