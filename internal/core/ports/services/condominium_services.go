package services

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/dto"
)

// CondominiumReaderSvc defines read operations for condominium data
type CondominiumReaderSvc interface {
	// GetCondominiumByID retrieves a specific condominium by its ID.
	// The requesting user must be a member.
	GetCondominiumByID(ctx context.Context, condominiumID string, requestingUserID string) (*domain.Condominium, error)

	// ListUserCondominiums retrieves condominiums the user belongs to.
	// If includeInactive is true, inactive condominiums where the user is an
	// admin are included as well.
	ListUserCondominiums(ctx context.Context, userID string, includeInactive bool) ([]domain.Condominium, error)

	// ListCondominiumMembers retrieves all members and their roles for a condominium.
	ListCondominiumMembers(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.CondominiumMember, error)
}

// CondominiumWriterSvc defines write operations for condominium data
type CondominiumWriterSvc interface {
	// CreateCondominium persists a new condominium with the creator as admin.
	CreateCondominium(ctx context.Context, req dto.CreateCondominiumRequest, creatorUserID string) (*domain.Condominium, error)

	// UpdateCondominium updates a condominium. Admin only.
	UpdateCondominium(ctx context.Context, condominiumID string, req dto.UpdateCondominiumRequest, requestingUserID string) (*domain.Condominium, error)

	// DeactivateCondominium marks a condominium as inactive. Admin only.
	DeactivateCondominium(ctx context.Context, condominiumID string, requestingUserID string) error

	// ActivateCondominium marks a condominium as active again. Admin only.
	ActivateCondominium(ctx context.Context, condominiumID string, requestingUserID string) error

	// DeleteCondominium soft deletes a condominium. Admin only.
	DeleteCondominium(ctx context.Context, condominiumID string, requestingUserID string) error
}

// CondominiumMembershipSvc defines operations for managing condominium membership
type CondominiumMembershipSvc interface {
	// AddUserToCondominium adds a user to a condominium with a specific role. Admin only.
	AddUserToCondominium(ctx context.Context, addingUserID, targetUserID, condominiumID string, role domain.CondominiumRole) error

	// RemoveUserFromCondominium marks a member as removed. Admin only.
	RemoveUserFromCondominium(ctx context.Context, requestingUserID, targetUserID, condominiumID string) error

	// UpdateUserCondominiumRole updates a member's role. Admin only.
	UpdateUserCondominiumRole(ctx context.Context, requestingUserID, targetUserID, condominiumID string, newRole domain.CondominiumRole) error
}

// CondominiumAuthorizerSvc defines operations for condominium authorization
type CondominiumAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has required permissions for a condominium.
	AuthorizeUserAction(ctx context.Context, userID, condominiumID string, requiredRole domain.CondominiumRole) error
}

// CondominiumSvcFacade combines all condominium-related service interfaces
// This is a facade for clients that need access to all operations
type CondominiumSvcFacade interface {
	CondominiumReaderSvc
	CondominiumWriterSvc
	CondominiumMembershipSvc
	CondominiumAuthorizerSvc
}
