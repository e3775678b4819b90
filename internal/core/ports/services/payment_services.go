package services

import (
	"context"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment, verifying that its apartment belongs
	// to the condominium and that the requesting user is a member.
	GetPaymentByID(ctx context.Context, condominiumID, paymentID string, requestingUserID string) (*domain.Payment, error)

	// ListPaymentsByApartment retrieves a paginated list of payments for one apartment.
	ListPaymentsByApartment(ctx context.Context, condominiumID, apartmentID string, requestingUserID string, limit, offset int) ([]domain.Payment, error)

	// ListPaymentsByCondominium retrieves payments across all apartments of a
	// condominium, newest first. nextToken is an opaque cursor from a previous
	// call; the returned token is nil when no more pages exist.
	ListPaymentsByCondominium(ctx context.Context, condominiumID string, requestingUserID string, limit int, nextToken *string) ([]domain.Payment, *string, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// RecordPayment registers a payment against a maintenance fee or common
	// service. A repeated request carrying the same idempotency key returns
	// the originally recorded payment without inserting a second row.
	RecordPayment(ctx context.Context, condominiumID string, req dto.CreatePaymentRequest, requestingUserID string) (*domain.Payment, error)

	// ConfirmPayment transitions a PENDING payment to CONFIRMED. Admin only.
	ConfirmPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error

	// CancelPayment transitions a PENDING payment to CANCELED. Admin only.
	CancelPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error

	// RefundPayment transitions a CONFIRMED payment to REFUNDED. Admin only.
	RefundPayment(ctx context.Context, condominiumID, paymentID string, requestingUserID string) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
