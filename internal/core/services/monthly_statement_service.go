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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// monthlyStatementService implements the MonthlyStatementSvcFacade interface.
// It maintains the per-apartment balance ledger: each period's closing balance
// becomes the next period's opening balance.
type monthlyStatementService struct {
	BaseService
	monthlyStatementRepo portsrepo.MonthlyStatementRepositoryFacade
	statementRepo        portsrepo.StatementReader
	feeRepo              portsrepo.MaintenanceFeeReader
	apartmentRepo        portsrepo.ApartmentReader
}

// MonthlyStatementServiceOption is a functional option for configuring the monthly statement service
type MonthlyStatementServiceOption func(*monthlyStatementService)

// WithMonthlyStatementCondominiumAuthorizer sets the condominium authorizer for the monthly statement service.
func WithMonthlyStatementCondominiumAuthorizer(authorizer portssvc.CondominiumAuthorizerSvc) MonthlyStatementServiceOption {
	return func(s *monthlyStatementService) {
		s.CondominiumAuthorizer = authorizer
	}
}

// WithMonthlyStatementStatementRepository adds the payment aggregation reader dependency.
func WithMonthlyStatementStatementRepository(repo portsrepo.StatementReader) MonthlyStatementServiceOption {
	return func(s *monthlyStatementService) {
		s.statementRepo = repo
	}
}

// WithMonthlyStatementFeeRepository adds the maintenance fee reader dependency.
func WithMonthlyStatementFeeRepository(repo portsrepo.MaintenanceFeeReader) MonthlyStatementServiceOption {
	return func(s *monthlyStatementService) {
		s.feeRepo = repo
	}
}

// WithMonthlyStatementApartmentRepository adds the apartment reader dependency.
func WithMonthlyStatementApartmentRepository(repo portsrepo.ApartmentReader) MonthlyStatementServiceOption {
	return func(s *monthlyStatementService) {
		s.apartmentRepo = repo
	}
}

// NewMonthlyStatementService creates a new monthly statement service with the provided options
func NewMonthlyStatementService(repo portsrepo.MonthlyStatementRepositoryFacade, options ...MonthlyStatementServiceOption) portssvc.MonthlyStatementSvcFacade {
	svc := &monthlyStatementService{
		monthlyStatementRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.MonthlyStatementSvcFacade = (*monthlyStatementService)(nil)

// resolveApartment loads the apartment and hides it behind ErrNotFound when it
// belongs to another condominium.
func (s *monthlyStatementService) resolveApartment(ctx context.Context, condominiumID, apartmentID string) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	if apartment.CondominiumID != condominiumID {
		return nil, apperrors.ErrNotFound
	}
	return apartment, nil
}

// GetMonthlyStatement retrieves the persisted statement of an apartment for a period.
func (s *monthlyStatementService) GetMonthlyStatement(ctx context.Context, condominiumID, apartmentID string, period domain.StatementPeriod, requestingUserID string) (*domain.MonthlyStatement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if _, err := s.resolveApartment(ctx, condominiumID, apartmentID); err != nil {
		return nil, err
	}

	return s.monthlyStatementRepo.FindMonthlyStatement(ctx, apartmentID, period.Year, period.Month)
}

// ListMonthlyStatements retrieves the statement history of an apartment, newest first.
func (s *monthlyStatementService) ListMonthlyStatements(ctx context.Context, condominiumID, apartmentID string, requestingUserID string, limit, offset int) ([]domain.MonthlyStatement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if _, err := s.resolveApartment(ctx, condominiumID, apartmentID); err != nil {
		return nil, err
	}

	statements, err := s.monthlyStatementRepo.ListMonthlyStatementsByApartmentID(ctx, apartmentID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list monthly statements",
			slog.String("apartment_id", apartmentID))
		return nil, err
	}

	if statements == nil {
		return []domain.MonthlyStatement{}, nil
	}
	return statements, nil
}

// GenerateMonthlyStatement computes and persists the statement of an apartment
// for a period. The previous period's closing balance carries forward as the
// opening balance; regenerating a period replaces its amounts.
func (s *monthlyStatementService) GenerateMonthlyStatement(ctx context.Context, condominiumID, apartmentID string, period domain.StatementPeriod, requestingUserID string) (*domain.MonthlyStatement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		s.LogError(ctx, err, "User not authorized to generate monthly statement",
			slog.String("user_id", requestingUserID),
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if period.Month < 1 || period.Month > 12 {
		return nil, apperrors.NewValidationFailedError("month must be between 1 and 12")
	}

	if _, err := s.resolveApartment(ctx, condominiumID, apartmentID); err != nil {
		return nil, err
	}

	from := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	charged := decimal.Zero
	fee, err := s.feeRepo.FindFeeForPeriod(ctx, condominiumID, from, to)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if fee != nil {
		charged = fee.Amount
	}

	paid, err := s.statementRepo.SumConfirmedPaymentsByApartment(ctx, apartmentID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum confirmed payments",
			slog.String("apartment_id", apartmentID))
		return nil, err
	}

	opening := decimal.Zero
	prev := from.AddDate(0, -1, 0)
	previous, err := s.monthlyStatementRepo.FindMonthlyStatement(ctx, apartmentID, prev.Year(), int(prev.Month()))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if previous != nil {
		opening = previous.ClosingBalance
	}

	now := time.Now()
	statement := domain.MonthlyStatement{
		MonthlyStatementID: uuid.NewString(),
		ApartmentID:        apartmentID,
		CondominiumID:      condominiumID,
		Year:               period.Year,
		Month:              period.Month,
		OpeningBalance:     opening,
		ChargedAmount:      charged,
		PaidAmount:         paid,
		ClosingBalance:     opening.Add(charged).Sub(paid),
		Status:             domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.monthlyStatementRepo.UpsertMonthlyStatement(ctx, statement); err != nil {
		s.LogError(ctx, err, "Failed to upsert monthly statement",
			slog.String("apartment_id", apartmentID))
		return nil, err
	}

	// The upsert keeps the original row identity on regeneration; read the
	// persisted row back so the caller sees the stored identifiers.
	persisted, err := s.monthlyStatementRepo.FindMonthlyStatement(ctx, apartmentID, period.Year, period.Month)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Monthly statement generated",
		slog.String("apartment_id", apartmentID),
		slog.Int("year", period.Year),
		slog.Int("month", period.Month))
	return persisted, nil
}
