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

type PgxApartmentRepository struct {
	BaseRepository
}

// newPgxApartmentRepository creates a new repository for apartment data.
func newPgxApartmentRepository(pool *pgxpool.Pool) portsrepo.ApartmentRepositoryFacade {
	return &PgxApartmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ApartmentRepositoryFacade = (*PgxApartmentRepository)(nil)

var FULL_APARTMENT_SELECT_QUERY = `
SELECT
	a.apartment_id, a.condominium_id, a.name, a.description, a.owner_id, a.floor,
	a.size, a.rooms, a.bathrooms, a.parking_spaces, a.status,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM apartments a
`

func (r *PgxApartmentRepository) getApartments(ctx context.Context, filterQuery string, args ...any) ([]domain.Apartment, error) {
	query := FULL_APARTMENT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query apartments", err)
	}
	defer rows.Close()
	domainApartments, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Apartment])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Apartment{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect apartment rows", err)
	}

	return domainApartments, nil
}

func (r *PgxApartmentRepository) SaveApartment(ctx context.Context, apartment domain.Apartment) error {
	query := `
		INSERT INTO apartments (
			apartment_id, condominium_id, name, description, owner_id, floor,
			size, rooms, bathrooms, parking_spaces, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		apartment.ApartmentID,
		apartment.CondominiumID,
		apartment.Name,
		apartment.Description,
		apartment.OwnerID,
		apartment.Floor,
		apartment.Size,
		apartment.Rooms,
		apartment.Bathrooms,
		apartment.ParkingSpaces,
		apartment.Status,
		apartment.CreatedAt,
		apartment.CreatedBy,
		apartment.LastUpdatedAt,
		apartment.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation, incl. the per-condominium active name index
				return apperrors.NewConflictError("apartment name " + apartment.Name + " already exists in this condominium")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("condominium or owner does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save apartment "+apartment.ApartmentID, err)
	}
	return nil
}

func (r *PgxApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	query := `WHERE a.apartment_id = $1 AND a.status != 'DELETED'`
	apartments, err := r.getApartments(ctx, query, apartmentID)
	if err != nil {
		return nil, err
	}
	if len(apartments) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &apartments[0], nil
}

func (r *PgxApartmentRepository) ListApartmentsByCondominiumID(ctx context.Context, condominiumID string, limit int, offset int) ([]domain.Apartment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `WHERE a.condominium_id = $1 AND a.status != 'DELETED' ORDER BY a.name LIMIT $2 OFFSET $3;`
	return r.getApartments(ctx, query, condominiumID, limit, offset)
}

func (r *PgxApartmentRepository) UpdateApartment(ctx context.Context, apartment domain.Apartment) error {
	query := `
		UPDATE apartments
		SET name = $1, description = $2, owner_id = $3, floor = $4, size = $5,
			rooms = $6, bathrooms = $7, parking_spaces = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE apartment_id = $11 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query,
		apartment.Name,
		apartment.Description,
		apartment.OwnerID,
		apartment.Floor,
		apartment.Size,
		apartment.Rooms,
		apartment.Bathrooms,
		apartment.ParkingSpaces,
		apartment.LastUpdatedAt,
		apartment.LastUpdatedBy,
		apartment.ApartmentID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("apartment name " + apartment.Name + " already exists in this condominium")
		}
		return apperrors.NewAppError(500, "failed to update apartment "+apartment.ApartmentID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("apartment not found")
	}
	return nil
}

func (r *PgxApartmentRepository) UpdateApartmentStatus(ctx context.Context, apartmentID string, status domain.EntityStatus, updatedByUserID string) error {
	query := `
		UPDATE apartments
		SET status = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE apartment_id = $3 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query, status, updatedByUserID, apartmentID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update apartment status "+apartmentID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("apartment not found")
	}

	return nil
}
