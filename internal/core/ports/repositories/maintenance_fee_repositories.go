package repositories

import (
	"context"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// MaintenanceFeeReader defines read operations for maintenance fee data
type MaintenanceFeeReader interface {
	// FindMaintenanceFeeByID retrieves a specific maintenance fee by its ID.
	FindMaintenanceFeeByID(ctx context.Context, maintenanceFeeID string) (*domain.MaintenanceFee, error)

	// ListMaintenanceFeesByCondominiumID retrieves a paginated list of fees
	// for a condominium, excluding DELETED rows.
	ListMaintenanceFeesByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.MaintenanceFee, error)

	// FindFeeForPeriod resolves the ACTIVE maintenance-type fee whose start
	// date falls inside [from, to). When several match, the most recently
	// created one wins. Returns ErrNotFound when the period has no fee.
	FindFeeForPeriod(ctx context.Context, condominiumID string, from, to time.Time) (*domain.MaintenanceFee, error)
}

// MaintenanceFeeWriter defines write operations for maintenance fee data
type MaintenanceFeeWriter interface {
	// SaveMaintenanceFee persists a new maintenance fee.
	SaveMaintenanceFee(ctx context.Context, fee domain.MaintenanceFee) error

	// UpdateMaintenanceFee updates the mutable fields of a maintenance fee.
	UpdateMaintenanceFee(ctx context.Context, fee domain.MaintenanceFee) error

	// UpdateMaintenanceFeeStatus changes the lifecycle status of a fee.
	UpdateMaintenanceFeeStatus(ctx context.Context, maintenanceFeeID string, status domain.EntityStatus, updatedByUserID string) error
}

// MaintenanceFeeRepositoryFacade combines all maintenance-fee repository interfaces
type MaintenanceFeeRepositoryFacade interface {
	MaintenanceFeeReader
	MaintenanceFeeWriter
}
