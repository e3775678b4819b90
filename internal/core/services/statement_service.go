package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/pdf"
	"github.com/shopspring/decimal"
)

// statementService implements the StatementSvcFacade interface. It reconciles
// the maintenance fee of a month with the payments received in that month.
type statementService struct {
	BaseService
	statementRepo   portsrepo.StatementRepositoryFacade
	feeRepo         portsrepo.MaintenanceFeeReader
	condominiumRepo portsrepo.CondominiumReader

	// includeNonCollectible controls whether CANCELED and REFUNDED payments
	// count toward the grand total.
	includeNonCollectible bool
}

// StatementServiceOption is a functional option for configuring the statement service
type StatementServiceOption func(*statementService)

// WithStatementCondominiumAuthorizer sets the condominium authorizer for the statement service.
func WithStatementCondominiumAuthorizer(authorizer portssvc.CondominiumAuthorizerSvc) StatementServiceOption {
	return func(s *statementService) {
		s.CondominiumAuthorizer = authorizer
	}
}

// WithStatementFeeRepository adds the maintenance fee reader dependency.
func WithStatementFeeRepository(repo portsrepo.MaintenanceFeeReader) StatementServiceOption {
	return func(s *statementService) {
		s.feeRepo = repo
	}
}

// WithStatementCondominiumRepository adds the condominium reader dependency.
func WithStatementCondominiumRepository(repo portsrepo.CondominiumReader) StatementServiceOption {
	return func(s *statementService) {
		s.condominiumRepo = repo
	}
}

// WithIncludeNonCollectible controls whether canceled and refunded payments
// count toward the grand total.
func WithIncludeNonCollectible(include bool) StatementServiceOption {
	return func(s *statementService) {
		s.includeNonCollectible = include
	}
}

// NewStatementService creates a new statement service with the provided options
func NewStatementService(repo portsrepo.StatementRepositoryFacade, options ...StatementServiceOption) portssvc.StatementSvcFacade {
	svc := &statementService{
		statementRepo:         repo,
		includeNonCollectible: true,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// BuildAccountStatement reconciles one condominium month. An empty month is a
// valid statement with zero totals, not an error.
func (s *statementService) BuildAccountStatement(ctx context.Context, condominiumID string, period domain.StatementPeriod, requestingUserID string) (*domain.AccountStatement, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if period.Month < 1 || period.Month > 12 {
		return nil, apperrors.NewValidationFailedError("month must be between 1 and 12")
	}

	condominium, err := s.condominiumRepo.FindCondominiumByID(ctx, condominiumID)
	if err != nil {
		return nil, err
	}
	if condominium.Status != domain.StatusActive {
		return nil, apperrors.ErrNotFound
	}

	from := time.Date(period.Year, time.Month(period.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	statement := &domain.AccountStatement{
		CondominiumID:   condominiumID,
		CondominiumName: condominium.Name,
		Period:          period,
		GeneratedAt:     time.Now(),
		Payments:        []domain.StatementPaymentLine{},
		Totals: domain.StatementTotals{
			Confirmed: decimal.Zero,
			Pending:   decimal.Zero,
			Canceled:  decimal.Zero,
			Refunded:  decimal.Zero,
			Grand:     decimal.Zero,
		},
	}

	fee, err := s.feeRepo.FindFeeForPeriod(ctx, condominiumID, from, to)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to resolve fee for statement",
			slog.String("condominium_id", condominiumID))
		return nil, err
	}
	statement.Fee = fee // nil when the period has no fee

	// Only payments referencing the month's fee belong on the statement.
	// A month without a fee has nothing to reconcile.
	if fee != nil {
		payments, err := s.statementRepo.ListStatementPayments(ctx, condominiumID, fee.MaintenanceFeeID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list statement payments",
				slog.String("condominium_id", condominiumID),
				slog.String("maintenance_fee_id", fee.MaintenanceFeeID))
			return nil, err
		}
		statement.Payments = payments
		statement.Totals = s.aggregateTotals(payments)
	}

	s.LogInfo(ctx, "Account statement built",
		slog.String("condominium_id", condominiumID),
		slog.Int("year", period.Year),
		slog.Int("month", period.Month),
		slog.Int("payment_count", len(statement.Payments)))
	return statement, nil
}

// aggregateTotals sums payment amounts per processing status.
func (s *statementService) aggregateTotals(payments []domain.StatementPaymentLine) domain.StatementTotals {
	totals := domain.StatementTotals{
		Confirmed: decimal.Zero,
		Pending:   decimal.Zero,
		Canceled:  decimal.Zero,
		Refunded:  decimal.Zero,
		Grand:     decimal.Zero,
	}

	for _, p := range payments {
		switch p.PaymentStatus {
		case domain.PaymentConfirmed:
			totals.Confirmed = totals.Confirmed.Add(p.Amount)
		case domain.PaymentPending:
			totals.Pending = totals.Pending.Add(p.Amount)
		case domain.PaymentCanceled:
			totals.Canceled = totals.Canceled.Add(p.Amount)
		case domain.PaymentRefunded:
			totals.Refunded = totals.Refunded.Add(p.Amount)
		}
	}

	totals.Grand = totals.Confirmed.Add(totals.Pending)
	if s.includeNonCollectible {
		totals.Grand = totals.Grand.Add(totals.Canceled).Add(totals.Refunded)
	}

	return totals
}

// RenderAccountStatementPDF builds the statement and streams it as a PDF.
func (s *statementService) RenderAccountStatementPDF(ctx context.Context, condominiumID string, period domain.StatementPeriod, requestingUserID string, w io.Writer) error {
	statement, err := s.BuildAccountStatement(ctx, condominiumID, period, requestingUserID)
	if err != nil {
		return err
	}

	if err := pdf.RenderStatement(statement, w); err != nil {
		s.LogError(ctx, err, "Failed to render statement pdf",
			slog.String("condominium_id", condominiumID))
		return err
	}
	return nil
}
