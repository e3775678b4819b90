package services

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/dto"
)

// MaintenanceFeeReaderSvc defines read operations for maintenance fee data
type MaintenanceFeeReaderSvc interface {
	// GetMaintenanceFeeByID retrieves a fee, verifying condominium ownership
	// and requester membership.
	GetMaintenanceFeeByID(ctx context.Context, condominiumID, maintenanceFeeID string, requestingUserID string) (*domain.MaintenanceFee, error)

	// ListMaintenanceFees retrieves a paginated list of fees for a condominium.
	ListMaintenanceFees(ctx context.Context, condominiumID string, requestingUserID string, limit, offset int) ([]domain.MaintenanceFee, error)

	// GetFeeForPeriod resolves the maintenance fee billed for a calendar month.
	GetFeeForPeriod(ctx context.Context, condominiumID string, requestingUserID string, period domain.StatementPeriod) (*domain.MaintenanceFee, error)
}

// MaintenanceFeeWriterSvc defines write operations for maintenance fee data
type MaintenanceFeeWriterSvc interface {
	// CreateMaintenanceFee persists a new fee. Admin only.
	CreateMaintenanceFee(ctx context.Context, condominiumID string, req dto.CreateMaintenanceFeeRequest, requestingUserID string) (*domain.MaintenanceFee, error)

	// UpdateMaintenanceFee updates a fee. Admin only.
	UpdateMaintenanceFee(ctx context.Context, condominiumID, maintenanceFeeID string, req dto.UpdateMaintenanceFeeRequest, requestingUserID string) (*domain.MaintenanceFee, error)

	// DeleteMaintenanceFee soft deletes a fee. Admin only.
	DeleteMaintenanceFee(ctx context.Context, condominiumID, maintenanceFeeID string, requestingUserID string) error
}

// MaintenanceFeeSvcFacade combines all maintenance-fee service interfaces
type MaintenanceFeeSvcFacade interface {
	MaintenanceFeeReaderSvc
	MaintenanceFeeWriterSvc
}
