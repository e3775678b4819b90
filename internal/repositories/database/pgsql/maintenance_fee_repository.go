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

type PgxMaintenanceFeeRepository struct {
	BaseRepository
}

// newPgxMaintenanceFeeRepository creates a new repository for maintenance fee data.
func newPgxMaintenanceFeeRepository(pool *pgxpool.Pool) portsrepo.MaintenanceFeeRepositoryFacade {
	return &PgxMaintenanceFeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MaintenanceFeeRepositoryFacade = (*PgxMaintenanceFeeRepository)(nil)

var FULL_MAINTENANCE_FEE_SELECT_QUERY = `
SELECT
	f.maintenance_fee_id, f.condominium_id, f.detail, f.amount, f.penalty_amount,
	f.currency, f.start_date, f.payment_deadline, f.fee_type, f.frequency, f.status,
	f.created_at, f.created_by, f.last_updated_at, f.last_updated_by
FROM maintenance_fees f
`

func (r *PgxMaintenanceFeeRepository) getFees(ctx context.Context, filterQuery string, args ...any) ([]domain.MaintenanceFee, error) {
	query := FULL_MAINTENANCE_FEE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query maintenance fees", err)
	}
	defer rows.Close()
	domainFees, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MaintenanceFee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.MaintenanceFee{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect maintenance fee rows", err)
	}

	return domainFees, nil
}

func (r *PgxMaintenanceFeeRepository) SaveMaintenanceFee(ctx context.Context, fee domain.MaintenanceFee) error {
	query := `
		INSERT INTO maintenance_fees (
			maintenance_fee_id, condominium_id, detail, amount, penalty_amount,
			currency, start_date, payment_deadline, fee_type, frequency, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		fee.MaintenanceFeeID,
		fee.CondominiumID,
		fee.Detail,
		fee.Amount,
		fee.PenaltyAmount,
		fee.Currency,
		fee.StartDate,
		fee.PaymentDeadline,
		fee.FeeType,
		fee.Frequency,
		fee.Status,
		fee.CreatedAt,
		fee.CreatedBy,
		fee.LastUpdatedAt,
		fee.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("maintenance fee ID " + fee.MaintenanceFeeID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("condominium does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save maintenance fee "+fee.MaintenanceFeeID, err)
	}
	return nil
}

func (r *PgxMaintenanceFeeRepository) FindMaintenanceFeeByID(ctx context.Context, maintenanceFeeID string) (*domain.MaintenanceFee, error) {
	query := `WHERE f.maintenance_fee_id = $1 AND f.status != 'DELETED'`
	fees, err := r.getFees(ctx, query, maintenanceFeeID)
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &fees[0], nil
}

func (r *PgxMaintenanceFeeRepository) ListMaintenanceFeesByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.MaintenanceFee, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `WHERE f.condominium_id = $1 AND f.status != 'DELETED' ORDER BY f.start_date DESC LIMIT $2 OFFSET $3;`
	return r.getFees(ctx, query, condominiumID, limit, offset)
}

// FindFeeForPeriod resolves the ACTIVE maintenance-type fee whose start date
// falls inside [from, to). The newest created row wins when several match.
func (r *PgxMaintenanceFeeRepository) FindFeeForPeriod(ctx context.Context, condominiumID string, from, to time.Time) (*domain.MaintenanceFee, error) {
	query := `
		WHERE f.condominium_id = $1
			AND f.fee_type = $2
			AND f.status = 'ACTIVE'
			AND f.start_date >= $3
			AND f.start_date < $4
		ORDER BY f.created_at DESC
		LIMIT 1;
	`
	fees, err := r.getFees(ctx, query, condominiumID, domain.FeeTypeMaintenance, from, to)
	if err != nil {
		return nil, err
	}
	if len(fees) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &fees[0], nil
}

func (r *PgxMaintenanceFeeRepository) UpdateMaintenanceFee(ctx context.Context, fee domain.MaintenanceFee) error {
	query := `
		UPDATE maintenance_fees
		SET detail = $1, amount = $2, penalty_amount = $3, start_date = $4,
			payment_deadline = $5, fee_type = $6, frequency = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE maintenance_fee_id = $10 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query,
		fee.Detail,
		fee.Amount,
		fee.PenaltyAmount,
		fee.StartDate,
		fee.PaymentDeadline,
		fee.FeeType,
		fee.Frequency,
		fee.LastUpdatedAt,
		fee.LastUpdatedBy,
		fee.MaintenanceFeeID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update maintenance fee "+fee.MaintenanceFeeID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance fee not found")
	}
	return nil
}

func (r *PgxMaintenanceFeeRepository) UpdateMaintenanceFeeStatus(ctx context.Context, maintenanceFeeID string, status domain.EntityStatus, updatedByUserID string) error {
	query := `
		UPDATE maintenance_fees
		SET status = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE maintenance_fee_id = $3 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query, status, updatedByUserID, maintenanceFeeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update maintenance fee status "+maintenanceFeeID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("maintenance fee not found")
	}

	return nil
}
