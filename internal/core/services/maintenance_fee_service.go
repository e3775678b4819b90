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

// maintenanceFeeService implements the MaintenanceFeeSvcFacade interface
type maintenanceFeeService struct {
	BaseService
	feeRepo portsrepo.MaintenanceFeeRepositoryFacade
}

// MaintenanceFeeServiceOption is a functional option for configuring the fee service
type MaintenanceFeeServiceOption func(*maintenanceFeeService)

// WithFeeCondominiumAuthorizer sets the condominium authorizer for the fee service.
func WithFeeCondominiumAuthorizer(authorizer portssvc.CondominiumAuthorizerSvc) MaintenanceFeeServiceOption {
	return func(s *maintenanceFeeService) {
		s.CondominiumAuthorizer = authorizer
	}
}

// NewMaintenanceFeeService creates a new maintenance fee service with the provided options
func NewMaintenanceFeeService(repo portsrepo.MaintenanceFeeRepositoryFacade, options ...MaintenanceFeeServiceOption) portssvc.MaintenanceFeeSvcFacade {
	svc := &maintenanceFeeService{
		feeRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.MaintenanceFeeSvcFacade = (*maintenanceFeeService)(nil)

func (s *maintenanceFeeService) authorizeAndFetch(ctx context.Context, condominiumID, maintenanceFeeID, userID string, requiredRole domain.CondominiumRole) (*domain.MaintenanceFee, error) {
	if err := s.AuthorizeUser(ctx, userID, condominiumID, requiredRole); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) && requiredRole == domain.RoleReadOnly {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	fee, err := s.feeRepo.FindMaintenanceFeeByID(ctx, maintenanceFeeID)
	if err != nil {
		return nil, err
	}
	if fee.CondominiumID != condominiumID {
		return nil, apperrors.ErrNotFound
	}
	return fee, nil
}

// GetMaintenanceFeeByID retrieves a fee for a member of its condominium.
func (s *maintenanceFeeService) GetMaintenanceFeeByID(ctx context.Context, condominiumID, maintenanceFeeID string, requestingUserID string) (*domain.MaintenanceFee, error) {
	fee, err := s.authorizeAndFetch(ctx, condominiumID, maintenanceFeeID, requestingUserID, domain.RoleReadOnly)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get maintenance fee",
				slog.String("maintenance_fee_id", maintenanceFeeID),
				slog.String("condominium_id", condominiumID))
		}
		return nil, err
	}
	return fee, nil
}

// ListMaintenanceFees retrieves a paginated list of fees for a condominium.
func (s *maintenanceFeeService) ListMaintenanceFees(ctx context.Context, condominiumID string, requestingUserID string, limit, offset int) ([]domain.MaintenanceFee, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	fees, err := s.feeRepo.ListMaintenanceFeesByCondominiumID(ctx, condominiumID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list maintenance fees",
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if fees == nil {
		return []domain.MaintenanceFee{}, nil
	}
	return fees, nil
}

// GetFeeForPeriod resolves the maintenance fee billed for a calendar month.
func (s *maintenanceFeeService) GetFeeForPeriod(ctx context.Context, condominiumID string, requestingUserID string, period domain.StatementPeriod) (*domain.MaintenanceFee, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	from := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	fee, err := s.feeRepo.FindFeeForPeriod(ctx, condominiumID, from, to)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve fee for period",
				slog.String("condominium_id", condominiumID),
				slog.Int("year", period.Year),
				slog.Int("month", period.Month))
		}
		return nil, err
	}
	return fee, nil
}

// CreateMaintenanceFee persists a new fee. Admin only.
func (s *maintenanceFeeService) CreateMaintenanceFee(ctx context.Context, condominiumID string, req dto.CreateMaintenanceFeeRequest, requestingUserID string) (*domain.MaintenanceFee, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to create maintenance fee",
			slog.String("user_id", requestingUserID),
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if req.Amount.IsNegative() {
		return nil, apperrors.NewValidationFailedError("fee amount cannot be negative")
	}
	if req.PaymentDeadline.Before(req.StartDate) {
		return nil, apperrors.NewValidationFailedError("payment deadline cannot precede the start date")
	}

	now := time.Now()
	fee := domain.MaintenanceFee{
		MaintenanceFeeID: uuid.NewString(),
		CondominiumID:    condominiumID,
		Detail:           req.Detail,
		Amount:           req.Amount,
		PenaltyAmount:    req.PenaltyAmount,
		Currency:         req.Currency,
		StartDate:        req.StartDate,
		PaymentDeadline:  req.PaymentDeadline,
		FeeType:          req.FeeType,
		Frequency:        req.Frequency,
		Status:           domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.feeRepo.SaveMaintenanceFee(ctx, fee); err != nil {
		s.LogError(ctx, err, "Failed to save maintenance fee",
			slog.String("maintenance_fee_id", fee.MaintenanceFeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Maintenance fee created successfully",
		slog.String("maintenance_fee_id", fee.MaintenanceFeeID),
		slog.String("condominium_id", condominiumID))
	return &fee, nil
}

// UpdateMaintenanceFee updates a fee. Admin only.
func (s *maintenanceFeeService) UpdateMaintenanceFee(ctx context.Context, condominiumID, maintenanceFeeID string, req dto.UpdateMaintenanceFeeRequest, requestingUserID string) (*domain.MaintenanceFee, error) {
	fee, err := s.authorizeAndFetch(ctx, condominiumID, maintenanceFeeID, requestingUserID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if req.Detail != nil {
		fee.Detail = *req.Detail
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, apperrors.NewValidationFailedError("fee amount cannot be negative")
		}
		fee.Amount = *req.Amount
	}
	if req.PenaltyAmount != nil {
		fee.PenaltyAmount = *req.PenaltyAmount
	}
	if req.StartDate != nil {
		fee.StartDate = *req.StartDate
	}
	if req.PaymentDeadline != nil {
		fee.PaymentDeadline = *req.PaymentDeadline
	}
	if req.FeeType != nil {
		fee.FeeType = *req.FeeType
	}
	if req.Frequency != nil {
		fee.Frequency = *req.Frequency
	}
	if fee.PaymentDeadline.Before(fee.StartDate) {
		return nil, apperrors.NewValidationFailedError("payment deadline cannot precede the start date")
	}
	fee.LastUpdatedAt = time.Now()
	fee.LastUpdatedBy = requestingUserID

	if err := s.feeRepo.UpdateMaintenanceFee(ctx, *fee); err != nil {
		s.LogError(ctx, err, "Failed to update maintenance fee",
			slog.String("maintenance_fee_id", maintenanceFeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Maintenance fee updated successfully",
		slog.String("maintenance_fee_id", maintenanceFeeID))
	return fee, nil
}

// DeleteMaintenanceFee soft deletes a fee. Admin only.
func (s *maintenanceFeeService) DeleteMaintenanceFee(ctx context.Context, condominiumID, maintenanceFeeID string, requestingUserID string) error {
	if _, err := s.authorizeAndFetch(ctx, condominiumID, maintenanceFeeID, requestingUserID, domain.RoleAdmin); err != nil {
		return err
	}

	if err := s.feeRepo.UpdateMaintenanceFeeStatus(ctx, maintenanceFeeID, domain.StatusDeleted, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete maintenance fee",
			slog.String("maintenance_fee_id", maintenanceFeeID))
		return err
	}

	s.LogInfo(ctx, "Maintenance fee deleted",
		slog.String("maintenance_fee_id", maintenanceFeeID),
		slog.String("user_id", requestingUserID))
	return nil
}
