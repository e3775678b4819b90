package repositories

import (
	"context"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentByIdempotencyKey retrieves the payment recorded under a key.
	FindPaymentByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.Payment, error)

	// ListPaymentsByApartmentID retrieves a paginated list of payments for an
	// apartment, excluding DELETED rows.
	ListPaymentsByApartmentID(ctx context.Context, apartmentID string, limit int, offset int) ([]domain.Payment, error)

	// ListPaymentsByCondominiumID retrieves payments across all apartments of
	// a condominium ordered by (payment_date, created_at) descending, excluding
	// DELETED rows. When before/beforeCreatedAt are non-zero only rows strictly
	// older than that cursor are returned.
	ListPaymentsByCondominiumID(ctx context.Context, condominiumID string, limit int, before time.Time, beforeCreatedAt time.Time) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment. When the payment carries an
	// idempotency key and a row with that key already exists, the existing
	// row is returned untouched and inserted is false.
	SavePayment(ctx context.Context, payment domain.Payment) (saved *domain.Payment, inserted bool, err error)

	// UpdatePaymentStatus transitions the processing status of a payment.
	UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, updatedByUserID string) error

	// UpdatePaymentLifecycleStatus changes the entity lifecycle status of a payment.
	UpdatePaymentLifecycleStatus(ctx context.Context, paymentID string, status domain.EntityStatus, updatedByUserID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
