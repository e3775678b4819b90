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
	"github.com/CondoSphere/condo_management_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo       portsrepo.PaymentRepositoryFacade
	apartmentRepo     portsrepo.ApartmentReader
	feeRepo           portsrepo.MaintenanceFeeReader
	commonServiceRepo portsrepo.CommonServiceReader
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithPaymentCondominiumAuthorizer sets the condominium authorizer for the payment service.
func WithPaymentCondominiumAuthorizer(authorizer portssvc.CondominiumAuthorizerSvc) PaymentServiceOption {
	return func(s *paymentService) {
		s.CondominiumAuthorizer = authorizer
	}
}

// WithPaymentApartmentRepository adds the apartment reader dependency.
func WithPaymentApartmentRepository(repo portsrepo.ApartmentReader) PaymentServiceOption {
	return func(s *paymentService) {
		s.apartmentRepo = repo
	}
}

// WithPaymentFeeRepository adds the maintenance fee reader dependency.
func WithPaymentFeeRepository(repo portsrepo.MaintenanceFeeReader) PaymentServiceOption {
	return func(s *paymentService) {
		s.feeRepo = repo
	}
}

// WithPaymentCommonServiceRepository adds the common service reader dependency.
func WithPaymentCommonServiceRepository(repo portsrepo.CommonServiceReader) PaymentServiceOption {
	return func(s *paymentService) {
		s.commonServiceRepo = repo
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(repo portsrepo.PaymentRepositoryFacade, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// resolveApartment loads the apartment and hides it behind ErrNotFound when it
// belongs to another condominium.
func (s *paymentService) resolveApartment(ctx context.Context, condominiumID, apartmentID string) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, err
	}
	if apartment.CondominiumID != condominiumID {
		return nil, apperrors.ErrNotFound
	}
	return apartment, nil
}

// RecordPayment registers a payment against a maintenance fee or common service.
// A repeated request carrying the same idempotency key returns the originally
// recorded payment; the conditional insert makes the race with a concurrent
// duplicate safe without an explicit lock.
func (s *paymentService) RecordPayment(ctx context.Context, condominiumID string, req dto.CreatePaymentRequest, requestingUserID string) (*domain.Payment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleResident); err != nil {
		s.LogError(ctx, err, "User not authorized to record payment",
			slog.String("user_id", requestingUserID),
			slog.String("condominium_id", condominiumID))
		return nil, err
	}

	if (req.MaintenanceFeeID == nil) == (req.CommonServiceID == nil) {
		return nil, apperrors.NewValidationFailedError("a payment must target exactly one maintenance fee or common service")
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("payment amount must be positive")
	}

	if _, err := s.resolveApartment(ctx, condominiumID, req.ApartmentID); err != nil {
		return nil, err
	}

	// The billing target must live in the same condominium as the apartment.
	if req.MaintenanceFeeID != nil {
		fee, err := s.feeRepo.FindMaintenanceFeeByID(ctx, *req.MaintenanceFeeID)
		if err != nil {
			return nil, err
		}
		if fee.CondominiumID != condominiumID {
			return nil, apperrors.ErrNotFound
		}
	} else {
		service, err := s.commonServiceRepo.FindCommonServiceByID(ctx, *req.CommonServiceID)
		if err != nil {
			return nil, err
		}
		if service.CondominiumID != condominiumID {
			return nil, apperrors.ErrNotFound
		}
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:        uuid.NewString(),
		ApartmentID:      req.ApartmentID,
		MaintenanceFeeID: req.MaintenanceFeeID,
		CommonServiceID:  req.CommonServiceID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		PaymentDate:      req.PaymentDate,
		PaymentMethod:    req.PaymentMethod,
		TransactionID:    req.TransactionID,
		PaymentReference: req.PaymentReference,
		PaymentStatus:    domain.PaymentPending,
		IdempotencyKey:   req.IdempotencyKey,
		Status:           domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	saved, inserted, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save payment",
			slog.String("payment_id", payment.PaymentID))
		return nil, err
	}

	if !inserted {
		s.LogInfo(ctx, "Duplicate payment request absorbed by idempotency key",
			slog.String("payment_id", saved.PaymentID))
		return saved, nil
	}

	s.LogInfo(ctx, "Payment recorded successfully",
		slog.String("payment_id", saved.PaymentID),
		slog.String("apartment_id", req.ApartmentID))
	return saved, nil
}

// GetPaymentByID retrieves a payment for a member of its condominium.
func (s *paymentService) GetPaymentByID(ctx context.Context, condominiumID, paymentID string, requestingUserID string) (*domain.Payment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveApartment(ctx, condominiumID, payment.ApartmentID); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPaymentsByApartment retrieves a paginated list of payments for one apartment.
func (s *paymentService) ListPaymentsByApartment(ctx context.Context, condominiumID, apartmentID string, requestingUserID string, limit, offset int) ([]domain.Payment, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if _, err := s.resolveApartment(ctx, condominiumID, apartmentID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPaymentsByApartmentID(ctx, apartmentID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for apartment",
			slog.String("apartment_id", apartmentID))
		return nil, err
	}

	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// ListPaymentsByCondominium retrieves payments across the condominium using
// keyset pagination. The opaque cursor encodes the last row of the previous page.
func (s *paymentService) ListPaymentsByCondominium(ctx context.Context, condominiumID string, requestingUserID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleReadOnly); err != nil {
		if errors.Is(err, apperrors.ErrForbidden) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, err
	}

	if limit <= 0 {
		limit = 20
	}

	var before, beforeCreatedAt time.Time
	if nextToken != nil && *nextToken != "" {
		var err error
		before, beforeCreatedAt, err = pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationFailedError("invalid pagination token")
		}
	}

	// Fetch one extra row to know whether another page exists.
	payments, err := s.paymentRepo.ListPaymentsByCondominiumID(ctx, condominiumID, limit+1, before, beforeCreatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for condominium",
			slog.String("condominium_id", condominiumID))
		return nil, nil, err
	}

	var newToken *string
	if len(payments) > limit {
		payments = payments[:limit]
		last := payments[len(payments)-1]
		token := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		newToken = &token
	}

	if payments == nil {
		return []domain.Payment{}, nil, nil
	}
	return payments, newToken, nil
}

// ConfirmPayment transitions a PENDING payment to CONFIRMED. Admin only.
func (s *paymentService) ConfirmPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error {
	return s.transitionPayment(ctx, condominiumID, paymentID, requestingUserID,
		domain.PaymentConfirmed, domain.PaymentPending)
}

// CancelPayment transitions a PENDING payment to CANCELED. Admin only.
func (s *paymentService) CancelPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error {
	return s.transitionPayment(ctx, condominiumID, paymentID, requestingUserID,
		domain.PaymentCanceled, domain.PaymentPending)
}

// RefundPayment transitions a CONFIRMED payment to REFUNDED. Admin only.
func (s *paymentService) RefundPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error {
	return s.transitionPayment(ctx, condominiumID, paymentID, requestingUserID,
		domain.PaymentRefunded, domain.PaymentConfirmed)
}

func (s *paymentService) transitionPayment(ctx context.Context, condominiumID, paymentID, requestingUserID string, target, expected domain.PaymentStatus) error {
	if err := s.AuthorizeUser(ctx, requestingUserID, condominiumID, domain.RoleAdmin); err != nil {
		return err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return err
	}

	if _, err := s.resolveApartment(ctx, condominiumID, payment.ApartmentID); err != nil {
		return err
	}

	if payment.PaymentStatus != expected {
		return apperrors.NewConflictError("payment is " + string(payment.PaymentStatus) + ", expected " + string(expected))
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, paymentID, target, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to transition payment status",
			slog.String("payment_id", paymentID),
			slog.String("target_status", string(target)))
		return err
	}

	s.LogInfo(ctx, "Payment status updated",
		slog.String("payment_id", paymentID),
		slog.String("status", string(target)),
		slog.String("user_id", requestingUserID))
	return nil
}
