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

type PgxCommonServiceRepository struct {
	BaseRepository
}

// newPgxCommonServiceRepository creates a new repository for common service data.
func newPgxCommonServiceRepository(pool *pgxpool.Pool) portsrepo.CommonServiceRepositoryFacade {
	return &PgxCommonServiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CommonServiceRepositoryFacade = (*PgxCommonServiceRepository)(nil)

var FULL_COMMON_SERVICE_SELECT_QUERY = `
SELECT
	s.common_service_id, s.condominium_id, s.name, s.provider, s.price, s.frequency, s.status,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM common_services s
`

func (r *PgxCommonServiceRepository) getCommonServices(ctx context.Context, filterQuery string, args ...any) ([]domain.CommonService, error) {
	query := FULL_COMMON_SERVICE_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query common services", err)
	}
	defer rows.Close()
	domainServices, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.CommonService])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CommonService{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect common service rows", err)
	}

	return domainServices, nil
}

func (r *PgxCommonServiceRepository) SaveCommonService(ctx context.Context, service domain.CommonService) error {
	query := `
		INSERT INTO common_services (
			common_service_id, condominium_id, name, provider, price, frequency, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		service.CommonServiceID,
		service.CondominiumID,
		service.Name,
		service.Provider,
		service.Price,
		service.Frequency,
		service.Status,
		service.CreatedAt,
		service.CreatedBy,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("common service ID " + service.CommonServiceID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("condominium does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save common service "+service.CommonServiceID, err)
	}
	return nil
}

func (r *PgxCommonServiceRepository) FindCommonServiceByID(ctx context.Context, commonServiceID string) (*domain.CommonService, error) {
	query := `WHERE s.common_service_id = $1 AND s.status != 'DELETED'`
	services, err := r.getCommonServices(ctx, query, commonServiceID)
	if err != nil {
		return nil, err
	}
	if len(services) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &services[0], nil
}

func (r *PgxCommonServiceRepository) ListCommonServicesByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.CommonService, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `WHERE s.condominium_id = $1 AND s.status != 'DELETED' ORDER BY s.name LIMIT $2 OFFSET $3;`
	return r.getCommonServices(ctx, query, condominiumID, limit, offset)
}

func (r *PgxCommonServiceRepository) UpdateCommonService(ctx context.Context, service domain.CommonService) error {
	query := `
		UPDATE common_services
		SET name = $1, provider = $2, price = $3, frequency = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE common_service_id = $7 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query,
		service.Name,
		service.Provider,
		service.Price,
		service.Frequency,
		service.LastUpdatedAt,
		service.LastUpdatedBy,
		service.CommonServiceID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update common service "+service.CommonServiceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("common service not found")
	}
	return nil
}

func (r *PgxCommonServiceRepository) UpdateCommonServiceStatus(ctx context.Context, commonServiceID string, status domain.EntityStatus, updatedByUserID string) error {
	query := `
		UPDATE common_services
		SET status = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE common_service_id = $3 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query, status, updatedByUserID, commonServiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update common service status "+commonServiceID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("common service not found")
	}

	return nil
}
