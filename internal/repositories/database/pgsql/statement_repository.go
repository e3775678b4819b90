package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// statementRepository implements the StatementRepositoryFacade interface
type statementRepository struct {
	BaseRepository
}

// newStatementRepository creates a new statement reporting repository
func newStatementRepository(db *pgxpool.Pool) portsrepo.StatementRepositoryFacade {
	return &statementRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListStatementPayments retrieves the payment lines referencing a maintenance
// fee, joined with the paying apartment's name. A late payment against the fee
// still belongs on the fee's statement regardless of when it was paid.
func (r *statementRepository) ListStatementPayments(ctx context.Context, condominiumID string, maintenanceFeeID string) ([]domain.StatementPaymentLine, error) {
	query := `
		SELECT
			p.payment_id,
			a.name AS apartment_name,
			p.amount,
			p.payment_date,
			p.payment_method,
			p.payment_status
		FROM payments p
		JOIN apartments a ON p.apartment_id = a.apartment_id
		WHERE a.condominium_id = $1
			AND p.maintenance_fee_id = $2
			AND p.status = 'ACTIVE'
		ORDER BY p.payment_date, p.created_at
	`

	rows, err := r.Pool.Query(ctx, query, condominiumID, maintenanceFeeID)
	if err != nil {
		return nil, fmt.Errorf("error querying statement payments: %w", err)
	}
	defer rows.Close()

	var result []domain.StatementPaymentLine
	for rows.Next() {
		var line domain.StatementPaymentLine
		var paymentStatus string

		if err := rows.Scan(
			&line.PaymentID,
			&line.ApartmentName,
			&line.Amount,
			&line.PaymentDate,
			&line.PaymentMethod,
			&paymentStatus,
		); err != nil {
			return nil, fmt.Errorf("error scanning statement payment row: %w", err)
		}

		line.PaymentStatus = domain.PaymentStatus(paymentStatus)
		result = append(result, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statement payment rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.StatementPaymentLine{}, nil
	}

	return result, nil
}

// SumConfirmedPaymentsByApartment sums the CONFIRMED payments of an apartment
// in [from, to).
func (r *statementRepository) SumConfirmedPaymentsByApartment(ctx context.Context, apartmentID string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		WHERE p.apartment_id = $1
			AND p.payment_status = $2
			AND p.payment_date >= $3
			AND p.payment_date < $4
			AND p.status = 'ACTIVE'
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, apartmentID, domain.PaymentConfirmed, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("error summing confirmed payments for apartment %s: %w", apartmentID, err)
	}
	return total, nil
}
