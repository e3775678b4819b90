package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

var FULL_PAYMENT_SELECT_QUERY = `
SELECT
	p.payment_id, p.apartment_id, p.maintenance_fee_id, p.common_service_id,
	p.amount, p.currency, p.payment_date, p.payment_method, p.transaction_id,
	p.payment_reference, p.payment_status, p.idempotency_key, p.status,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM payments p
`

func (r *PgxPaymentRepository) getPayments(ctx context.Context, filterQuery string, args ...any) ([]domain.Payment, error) {
	query := FULL_PAYMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()
	domainPayments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Payment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Payment{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect payment rows", err)
	}

	return domainPayments, nil
}

// SavePayment inserts the payment. When an idempotency key is present, a
// concurrent or repeated request with the same key loses the insert race
// silently and the surviving row is returned with inserted=false.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, bool, error) {
	query := `
		INSERT INTO payments (
			payment_id, apartment_id, maintenance_fee_id, common_service_id,
			amount, currency, payment_date, payment_method, transaction_id,
			payment_reference, payment_status, idempotency_key, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING;
	`
	result, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.ApartmentID,
		payment.MaintenanceFeeID,
		payment.CommonServiceID,
		payment.Amount,
		payment.Currency,
		payment.PaymentDate,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.PaymentReference,
		payment.PaymentStatus,
		payment.IdempotencyKey,
		payment.Status,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation on the primary key
				return nil, false, apperrors.NewConflictError("payment ID " + payment.PaymentID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return nil, false, apperrors.NewValidationFailedError("apartment, fee or common service does not exist")
			}
		}
		return nil, false, apperrors.NewAppError(500, "failed to save payment "+payment.PaymentID, err)
	}

	if result.RowsAffected() > 0 {
		return &payment, true, nil
	}

	// The key already has a row; fetch it so the caller sees the original payment.
	if payment.IdempotencyKey == nil {
		return nil, false, apperrors.NewAppError(500, "payment insert affected no rows", nil)
	}
	existing, err := r.FindPaymentByIdempotencyKey(ctx, *payment.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `WHERE p.payment_id = $1 AND p.status != 'DELETED'`
	payments, err := r.getPayments(ctx, query, paymentID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) FindPaymentByIdempotencyKey(ctx context.Context, idempotencyKey string) (*domain.Payment, error) {
	query := `WHERE p.idempotency_key = $1`
	payments, err := r.getPayments(ctx, query, idempotencyKey)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &payments[0], nil
}

func (r *PgxPaymentRepository) ListPaymentsByApartmentID(ctx context.Context, apartmentID string, limit int, offset int) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `WHERE p.apartment_id = $1 AND p.status != 'DELETED' ORDER BY p.payment_date DESC LIMIT $2 OFFSET $3;`
	return r.getPayments(ctx, query, apartmentID, limit, offset)
}

// ListPaymentsByCondominiumID pages with a (payment_date, created_at) keyset
// so rows inserted mid-pagination never shift later pages.
func (r *PgxPaymentRepository) ListPaymentsByCondominiumID(ctx context.Context, condominiumID string, limit int, before time.Time, beforeCreatedAt time.Time) ([]domain.Payment, error) {
	if limit <= 0 {
		limit = 20
	}

	if before.IsZero() {
		query := `
			JOIN apartments a ON p.apartment_id = a.apartment_id
			WHERE a.condominium_id = $1 AND p.status != 'DELETED'
			ORDER BY p.payment_date DESC, p.created_at DESC LIMIT $2;
		`
		return r.getPayments(ctx, query, condominiumID, limit)
	}

	query := `
		JOIN apartments a ON p.apartment_id = a.apartment_id
		WHERE a.condominium_id = $1 AND p.status != 'DELETED'
			AND (p.payment_date, p.created_at) < ($2, $3)
		ORDER BY p.payment_date DESC, p.created_at DESC LIMIT $4;
	`
	return r.getPayments(ctx, query, condominiumID, before, beforeCreatedAt, limit)
}

func (r *PgxPaymentRepository) UpdatePaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus, updatedByUserID string) error {
	query := `
		UPDATE payments
		SET payment_status = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE payment_id = $3 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query, status, updatedByUserID, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment status "+paymentID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found")
	}

	return nil
}

func (r *PgxPaymentRepository) UpdatePaymentLifecycleStatus(ctx context.Context, paymentID string, status domain.EntityStatus, updatedByUserID string) error {
	query := `
		UPDATE payments
		SET status = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE payment_id = $3 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query, status, updatedByUserID, paymentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update payment lifecycle status "+paymentID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("payment not found")
	}

	return nil
}
