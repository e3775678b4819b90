package repositories

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// CommonServiceReader defines read operations for common service data
type CommonServiceReader interface {
	// FindCommonServiceByID retrieves a specific common service by its ID.
	FindCommonServiceByID(ctx context.Context, commonServiceID string) (*domain.CommonService, error)

	// ListCommonServicesByCondominiumID retrieves a paginated list of common
	// services for a condominium, excluding DELETED rows.
	ListCommonServicesByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.CommonService, error)
}

// CommonServiceWriter defines write operations for common service data
type CommonServiceWriter interface {
	// SaveCommonService persists a new common service.
	SaveCommonService(ctx context.Context, service domain.CommonService) error

	// UpdateCommonService updates the mutable fields of a common service.
	UpdateCommonService(ctx context.Context, service domain.CommonService) error

	// UpdateCommonServiceStatus changes the lifecycle status of a common service.
	UpdateCommonServiceStatus(ctx context.Context, commonServiceID string, status domain.EntityStatus, updatedByUserID string) error
}

// CommonServiceRepositoryFacade combines all common-service repository interfaces
type CommonServiceRepositoryFacade interface {
	CommonServiceReader
	CommonServiceWriter
}
