package repositories

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// CondominiumReader defines read operations for condominium data
type CondominiumReader interface {
	// FindCondominiumByID retrieves a specific condominium by its ID.
	FindCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error)

	// ListCondominiumsByUserID retrieves all condominiums a user belongs to.
	// When includeInactive is false only ACTIVE condominiums are returned; a
	// role filter restricts the result to memberships with that role.
	ListCondominiumsByUserID(ctx context.Context, userID string, includeInactive bool, role *domain.CondominiumRole) ([]domain.Condominium, error)
}

// CondominiumWriter defines write operations for condominium data
type CondominiumWriter interface {
	// SaveCondominium persists a new condominium.
	SaveCondominium(ctx context.Context, condominium domain.Condominium) error

	// UpdateCondominium updates the mutable fields of a condominium.
	UpdateCondominium(ctx context.Context, condominium domain.Condominium) error

	// UpdateCondominiumStatus changes the lifecycle status of a condominium.
	UpdateCondominiumStatus(ctx context.Context, condominiumID string, status domain.EntityStatus, updatedByUserID string) error
}

// CondominiumMembershipManager defines operations for managing condominium memberships
type CondominiumMembershipManager interface {
	// AddUserToCondominium adds a user to a condominium with a specific role.
	AddUserToCondominium(ctx context.Context, membership domain.CondominiumMember) error

	// FindUserCondominiumRole retrieves the role of a user in a condominium.
	FindUserCondominiumRole(ctx context.Context, userID, condominiumID string) (*domain.CondominiumMember, error)

	// ListUsersByCondominiumID retrieves all members of a condominium.
	ListUsersByCondominiumID(ctx context.Context, condominiumID string, includeRemoved bool) ([]domain.CondominiumMember, error)

	// UpdateUserCondominiumRole changes a member's role in a condominium.
	UpdateUserCondominiumRole(ctx context.Context, userID, condominiumID string, newRole domain.CondominiumRole) error
}

// CondominiumRepositoryFacade combines all condominium-related repository interfaces
// This is a facade for clients that need access to all operations
type CondominiumRepositoryFacade interface {
	CondominiumReader
	CondominiumWriter
	CondominiumMembershipManager
}

// CondominiumRepositoryWithTx extends CondominiumRepositoryFacade with transaction capabilities
type CondominiumRepositoryWithTx interface {
	CondominiumRepositoryFacade
	TransactionManager
}
