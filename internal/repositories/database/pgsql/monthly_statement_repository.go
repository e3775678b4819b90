package pgsql

import (
	"context"
	"errors"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portsrepo "github.com/CondoSphere/condo_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMonthlyStatementRepository struct {
	BaseRepository
}

// newPgxMonthlyStatementRepository creates a new repository for monthly statements.
func newPgxMonthlyStatementRepository(pool *pgxpool.Pool) portsrepo.MonthlyStatementRepositoryFacade {
	return &PgxMonthlyStatementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MonthlyStatementRepositoryFacade = (*PgxMonthlyStatementRepository)(nil)

var FULL_MONTHLY_STATEMENT_SELECT_QUERY = `
SELECT
	m.monthly_statement_id, m.apartment_id, m.condominium_id, m.year, m.month,
	m.opening_balance, m.charged_amount, m.paid_amount, m.closing_balance, m.status,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
FROM monthly_statements m
`

func (r *PgxMonthlyStatementRepository) getStatements(ctx context.Context, filterQuery string, args ...any) ([]domain.MonthlyStatement, error) {
	query := FULL_MONTHLY_STATEMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query monthly statements", err)
	}
	defer rows.Close()
	statements, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MonthlyStatement])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.MonthlyStatement{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect monthly statement rows", err)
	}

	return statements, nil
}

func (r *PgxMonthlyStatementRepository) FindMonthlyStatement(ctx context.Context, apartmentID string, year, month int) (*domain.MonthlyStatement, error) {
	query := `WHERE m.apartment_id = $1 AND m.year = $2 AND m.month = $3 AND m.status != 'DELETED'`
	statements, err := r.getStatements(ctx, query, apartmentID, year, month)
	if err != nil {
		return nil, err
	}
	if len(statements) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &statements[0], nil
}

func (r *PgxMonthlyStatementRepository) ListMonthlyStatementsByApartmentID(ctx context.Context, apartmentID string, limit int, offset int) ([]domain.MonthlyStatement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `WHERE m.apartment_id = $1 AND m.status != 'DELETED' ORDER BY m.year DESC, m.month DESC LIMIT $2 OFFSET $3;`
	return r.getStatements(ctx, query, apartmentID, limit, offset)
}

// UpsertMonthlyStatement inserts or replaces the statement for a period.
// Regenerating a period keeps the original row identity.
func (r *PgxMonthlyStatementRepository) UpsertMonthlyStatement(ctx context.Context, statement domain.MonthlyStatement) error {
	query := `
		INSERT INTO monthly_statements (
			monthly_statement_id, apartment_id, condominium_id, year, month,
			opening_balance, charged_amount, paid_amount, closing_balance, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (apartment_id, year, month) DO UPDATE SET
			opening_balance = EXCLUDED.opening_balance,
			charged_amount = EXCLUDED.charged_amount,
			paid_amount = EXCLUDED.paid_amount,
			closing_balance = EXCLUDED.closing_balance,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		statement.MonthlyStatementID,
		statement.ApartmentID,
		statement.CondominiumID,
		statement.Year,
		statement.Month,
		statement.OpeningBalance,
		statement.ChargedAmount,
		statement.PaidAmount,
		statement.ClosingBalance,
		statement.Status,
		statement.CreatedAt,
		statement.CreatedBy,
		statement.LastUpdatedAt,
		statement.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("apartment or condominium does not exist")
		}
		return apperrors.NewAppError(500, "failed to upsert monthly statement for apartment "+statement.ApartmentID, err)
	}
	return nil
}
