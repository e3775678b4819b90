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

// condominiumService implements the CondominiumSvcFacade interface
type condominiumService struct {
	BaseService
	condominiumRepo portsrepo.CondominiumRepositoryFacade
}

// NewCondominiumService creates a new condominium service with the provided dependencies
func NewCondominiumService(condominiumRepo portsrepo.CondominiumRepositoryFacade) portssvc.CondominiumSvcFacade {
	return &condominiumService{
		condominiumRepo: condominiumRepo,
	}
}

// Ensure condominiumService implements the CondominiumSvcFacade interface
var _ portssvc.CondominiumSvcFacade = (*condominiumService)(nil)

// GetCondominiumByID retrieves a condominium by its ID. Non-members get
// ErrNotFound rather than ErrForbidden so the resource's existence stays hidden.
func (s *condominiumService) GetCondominiumByID(ctx context.Context, condominiumID string, requestingUserID string) (*domain.Condominium, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	condominium, err := s.condominiumRepo.FindCondominiumByID(ctx, condominiumID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find condominium by ID",
				slog.String("condominium_id", condominiumID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Condominium retrieved successfully",
		slog.String("condominium_id", condominium.CondominiumID))
	return condominium, nil
}

// ListUserCondominiums retrieves all condominiums a user belongs to
func (s *condominiumService) ListUserCondominiums(ctx context.Context, userID string, includeInactive bool) ([]domain.Condominium, error) {
	condominiums, err := s.condominiumRepo.ListCondominiumsByUserID(ctx, userID, includeInactive, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list condominiums for user",
			slog.String("user_id", userID))
		return nil, err
	}

	if condominiums == nil {
		return []domain.Condominium{}, nil
	}

	s.LogDebug(ctx, "Condominiums listed successfully",
		slog.Int("count", len(condominiums)),
		slog.String("user_id", userID))
	return condominiums, nil
}

// ListCondominiumMembers retrieves all members and their roles for a condominium
func (s *condominiumService) ListCondominiumMembers(ctx context.Context, condominiumID string, requestingUserID string) ([]domain.CondominiumMember, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	members, err := s.condominiumRepo.ListUsersByCondominiumID(ctx, condominiumID, false)
	if err != nil {
		s.LogError(ctx, err, "Failed to list condominium members",
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if members == nil {
		return []domain.CondominiumMember{}, nil
	}
	return members, nil
}

// CreateCondominium creates a new condominium with the creator as its admin
func (s *condominiumService) CreateCondominium(ctx context.Context, req dto.CreateCondominiumRequest, creatorUserID string) (*domain.Condominium, error) {
	now := time.Now()
	condominiumID := uuid.NewString()

	condominium := domain.Condominium{
		CondominiumID: condominiumID,
		Name:          req.Name,
		Description:   req.Description,
		Street:        req.Street,
		StreetNumber:  req.StreetNumber,
		Neighborhood:  req.Neighborhood,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		ZipCode:       req.ZipCode,
		Phone:         req.Phone,
		Email:         req.Email,
		Amenities:     req.Amenities,
		TotalFloors:   req.TotalFloors,
		TotalUnits:    req.TotalUnits,
		TotalParking:  req.TotalParking,
		AdminID:       creatorUserID,
		Status:        domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if condominium.Amenities == nil {
		condominium.Amenities = []string{}
	}

	err := s.condominiumRepo.SaveCondominium(ctx, condominium)
	if err != nil {
		s.LogError(ctx, err, "Failed to save condominium",
			slog.String("condominium_id", condominium.CondominiumID))
		return nil, err
	}

	// Add creator as an admin to the new condominium
	membershipErr := s.AddUserToCondominium(ctx, creatorUserID, creatorUserID, condominiumID, domain.RoleAdmin)
	if membershipErr != nil {
		s.LogError(ctx, membershipErr, "Failed to add creator as admin to new condominium",
			slog.String("condominium_id", condominium.CondominiumID),
			slog.String("user_id", creatorUserID))
	}

	s.LogInfo(ctx, "Condominium created successfully",
		slog.String("condominium_id", condominium.CondominiumID),
		slog.String("creator_id", creatorUserID))
	return &condominium, nil
}

// UpdateCondominium updates a condominium's mutable fields. Admin only.
func (s *condominiumService) UpdateCondominium(ctx context.Context, condominiumID string, req dto.UpdateCondominiumRequest, requestingUserID string) (*domain.Condominium, error) {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	condominium, err := s.condominiumRepo.FindCondominiumByID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		condominium.Name = *req.Name
	}
	if req.Description != nil {
		condominium.Description = *req.Description
	}
	if req.Street != nil {
		condominium.Street = *req.Street
	}
	if req.StreetNumber != nil {
		condominium.StreetNumber = *req.StreetNumber
	}
	if req.Neighborhood != nil {
		condominium.Neighborhood = *req.Neighborhood
	}
	if req.City != nil {
		condominium.City = *req.City
	}
	if req.State != nil {
		condominium.State = *req.State
	}
	if req.Country != nil {
		condominium.Country = *req.Country
	}
	if req.ZipCode != nil {
		condominium.ZipCode = *req.ZipCode
	}
	if req.Phone != nil {
		condominium.Phone = *req.Phone
	}
	if req.Email != nil {
		condominium.Email = *req.Email
	}
	if req.Amenities != nil {
		condominium.Amenities = *req.Amenities
	}
	if req.TotalFloors != nil {
		condominium.TotalFloors = *req.TotalFloors
	}
	if req.TotalUnits != nil {
		condominium.TotalUnits = *req.TotalUnits
	}
	if req.TotalParking != nil {
		condominium.TotalParking = *req.TotalParking
	}

	condominium.LastUpdatedAt = time.Now()
	condominium.LastUpdatedBy = requestingUserID

	if err := s.condominiumRepo.UpdateCondominium(ctx, *condominium); err != nil {
		s.LogError(ctx, err, "Failed to update condominium",
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	s.LogInfo(ctx, "Condominium updated successfully",
		slog.String("condominium_id", condominiumID),
		slog.String("user_id", requestingUserID))
	return condominium, nil
}

// DeactivateCondominium marks a condominium as inactive. Admin only.
func (s *condominiumService) DeactivateCondominium(ctx context.Context, condominiumID string, requestingUserID string) error {
	return s.setCondominiumStatus(ctx, condominiumID, domain.StatusInactive, requestingUserID)
}

// ActivateCondominium marks a condominium as active. Admin only.
func (s *condominiumService) ActivateCondominium(ctx context.Context, condominiumID string, requestingUserID string) error {
	return s.setCondominiumStatus(ctx, condominiumID, domain.StatusActive, requestingUserID)
}

// DeleteCondominium soft deletes a condominium. Admin only.
func (s *condominiumService) DeleteCondominium(ctx context.Context, condominiumID string, requestingUserID string) error {
	return s.setCondominiumStatus(ctx, condominiumID, domain.StatusDeleted, requestingUserID)
}

func (s *condominiumService) setCondominiumStatus(ctx context.Context, condominiumID string, status domain.EntityStatus, requestingUserID string) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.condominiumRepo.UpdateCondominiumStatus(ctx, condominiumID, status, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to update condominium status",
			slog.String("condominium_id", condominiumID),
			slog.String("status", string(status)))
		return err
	}

	s.LogInfo(ctx, "Condominium status updated",
		slog.String("condominium_id", condominiumID),
		slog.String("status", string(status)),
		slog.String("user_id", requestingUserID))
	return nil
}

// AddUserToCondominium adds a user to a condominium with a specific role
func (s *condominiumService) AddUserToCondominium(ctx context.Context, addingUserID, targetUserID, condominiumID string, role domain.CondominiumRole) error {
	// Self-assignment is permitted (the creator adding themselves as admin)
	if addingUserID != targetUserID {
		err := s.AuthorizeUserAction(ctx, addingUserID, condominiumID, domain.RoleAdmin)
		if err != nil {
			s.LogError(ctx, err, "User not authorized to add members to condominium",
				slog.String("adding_user_id", addingUserID),
				slog.String("condominium_id", condominiumID))
			return err
		}
	}

	membership := domain.CondominiumMember{
		UserID:        targetUserID,
		CondominiumID: condominiumID,
		Role:          role,
		JoinedAt:      time.Now(),
	}

	err := s.condominiumRepo.AddUserToCondominium(ctx, membership)
	if err != nil {
		s.LogError(ctx, err, "Failed to add user to condominium",
			slog.String("target_user_id", targetUserID),
			slog.String("condominium_id", condominiumID))
		return err
	}

	s.LogInfo(ctx, "User added to condominium successfully",
		slog.String("target_user_id", targetUserID),
		slog.String("condominium_id", condominiumID),
		slog.String("role", string(role)))
	return nil
}

// RemoveUserFromCondominium marks a member as removed. Admin only.
func (s *condominiumService) RemoveUserFromCondominium(ctx context.Context, requestingUserID, targetUserID, condominiumID string) error {
	return s.UpdateUserCondominiumRole(ctx, requestingUserID, targetUserID, condominiumID, domain.RoleRemoved)
}

// UpdateUserCondominiumRole updates a member's role. Admin only.
func (s *condominiumService) UpdateUserCondominiumRole(ctx context.Context, requestingUserID, targetUserID, condominiumID string, newRole domain.CondominiumRole) error {
	if err := s.AuthorizeUserAction(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to change member roles",
			slog.String("requesting_user_id", requestingUserID),
			slog.String("condominium_id", condominiumID))
		return err
	}

	// An admin cannot demote themselves while being the designated admin of the
	// condominium; the role must be handed over first.
	if requestingUserID == targetUserID && newRole != domain.RoleAdmin {
		condominium, err := s.condominiumRepo.FindCondominiumByID(ctx, condominiumID)
		if err != nil {
			return err
		}
		if condominium.AdminID == requestingUserID {
			return apperrors.NewValidationFailedError("the condominium administrator cannot give up the admin role")
		}
	}

	err := s.condominiumRepo.UpdateUserCondominiumRole(ctx, targetUserID, condominiumID, newRole)
	if err != nil {
		s.LogError(ctx, err, "Failed to update member role",
			slog.String("target_user_id", targetUserID),
			slog.String("condominium_id", condominiumID))
		return err
	}

	s.LogInfo(ctx, "Member role updated",
		slog.String("target_user_id", targetUserID),
		slog.String("condominium_id", condominiumID),
		slog.String("role", string(newRole)))
	return nil
}

// AuthorizeUserAction checks if a user has required permissions for a condominium
func (s *condominiumService) AuthorizeUserAction(ctx context.Context, userID, condominiumID string, requiredRole domain.CondominiumRole) error {
	membership, err := s.condominiumRepo.FindUserCondominiumRole(ctx, userID, condominiumID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of condominium",
				slog.String("user_id", userID),
				slog.String("condominium_id", condominiumID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find user condominium role",
			slog.String("user_id", userID),
			slog.String("condominium_id", condominiumID))
		return err
	}

	if !hasRequiredRole(membership.Role, requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("condominium_id", condominiumID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}

	return nil
}

// hasRequiredRole checks if the user's role meets or exceeds the required role.
// ADMIN > RESIDENT > READONLY; REMOVED grants nothing.
func hasRequiredRole(userRole, requiredRole domain.CondominiumRole) bool {
	switch requiredRole {
	case domain.RoleReadOnly:
		return userRole == domain.RoleReadOnly || userRole == domain.RoleResident || userRole == domain.RoleAdmin
	case domain.RoleResident:
		return userRole == domain.RoleResident || userRole == domain.RoleAdmin
	case domain.RoleAdmin:
		return userRole == domain.RoleAdmin
	default:
		return false
	}
}
