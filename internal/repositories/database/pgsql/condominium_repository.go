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

type PgxCondominiumRepository struct {
	BaseRepository
}

// newPgxCondominiumRepository creates a new repository for condominium data.
func newPgxCondominiumRepository(pool *pgxpool.Pool) portsrepo.CondominiumRepositoryWithTx {
	return &PgxCondominiumRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCondominiumRepository implements portsrepo.CondominiumRepositoryWithTx
var _ portsrepo.CondominiumRepositoryWithTx = (*PgxCondominiumRepository)(nil)

var FULL_CONDOMINIUM_SELECT_QUERY = `
SELECT
	c.condominium_id, c.name, c.description, c.street, c.street_number, c.neighborhood,
	c.city, c.state, c.country, c.zip_code, c.phone, c.email, c.amenities,
	c.total_floors, c.total_units, c.total_parking, c.admin_id, c.status,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM condominiums c
`

// getCondominiums runs the select query with the given filter and collects rows.
func (r *PgxCondominiumRepository) getCondominiums(ctx context.Context, filterQuery string, args ...any) ([]domain.Condominium, error) {
	query := FULL_CONDOMINIUM_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query condominiums", err)
	}
	defer rows.Close()
	domainCondominiums, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Condominium])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Condominium{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect condominium rows", err)
	}

	return domainCondominiums, nil
}

func (r *PgxCondominiumRepository) SaveCondominium(ctx context.Context, condominium domain.Condominium) error {
	query := `
		INSERT INTO condominiums (
			condominium_id, name, description, street, street_number, neighborhood,
			city, state, country, zip_code, phone, email, amenities,
			total_floors, total_units, total_parking, admin_id, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err := r.Pool.Exec(ctx, query,
		condominium.CondominiumID,
		condominium.Name,
		condominium.Description,
		condominium.Street,
		condominium.StreetNumber,
		condominium.Neighborhood,
		condominium.City,
		condominium.State,
		condominium.Country,
		condominium.ZipCode,
		condominium.Phone,
		condominium.Email,
		condominium.Amenities,
		condominium.TotalFloors,
		condominium.TotalUnits,
		condominium.TotalParking,
		condominium.AdminID,
		condominium.Status,
		condominium.CreatedAt,
		condominium.CreatedBy,
		condominium.LastUpdatedAt,
		condominium.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("condominium ID " + condominium.CondominiumID + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("admin user does not exist")
			}
		}
		return apperrors.NewAppError(500, "failed to save condominium "+condominium.CondominiumID, err)
	}
	return nil
}

func (r *PgxCondominiumRepository) FindCondominiumByID(ctx context.Context, condominiumID string) (*domain.Condominium, error) {
	query := `WHERE c.condominium_id = $1 AND c.status != 'DELETED'`
	condominiums, err := r.getCondominiums(ctx, query, condominiumID)
	if err != nil {
		return nil, err
	}
	if len(condominiums) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &condominiums[0], nil
}

func (r *PgxCondominiumRepository) UpdateCondominium(ctx context.Context, condominium domain.Condominium) error {
	query := `
		UPDATE condominiums
		SET name = $1, description = $2, street = $3, street_number = $4, neighborhood = $5,
			city = $6, state = $7, country = $8, zip_code = $9, phone = $10, email = $11,
			amenities = $12, total_floors = $13, total_units = $14, total_parking = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE condominium_id = $18 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query,
		condominium.Name,
		condominium.Description,
		condominium.Street,
		condominium.StreetNumber,
		condominium.Neighborhood,
		condominium.City,
		condominium.State,
		condominium.Country,
		condominium.ZipCode,
		condominium.Phone,
		condominium.Email,
		condominium.Amenities,
		condominium.TotalFloors,
		condominium.TotalUnits,
		condominium.TotalParking,
		condominium.LastUpdatedAt,
		condominium.LastUpdatedBy,
		condominium.CondominiumID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update condominium "+condominium.CondominiumID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("condominium not found")
	}
	return nil
}

// UpdateCondominiumStatus changes the lifecycle status of a condominium.
func (r *PgxCondominiumRepository) UpdateCondominiumStatus(ctx context.Context, condominiumID string, status domain.EntityStatus, updatedByUserID string) error {
	query := `
		UPDATE condominiums
		SET status = $1, last_updated_at = NOW(), last_updated_by = $2
		WHERE condominium_id = $3 AND status != 'DELETED';
	`
	result, err := r.Pool.Exec(ctx, query, status, updatedByUserID, condominiumID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update condominium status "+condominiumID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("condominium not found")
	}

	return nil
}

func (r *PgxCondominiumRepository) AddUserToCondominium(ctx context.Context, membership domain.CondominiumMember) error {
	query := `
		INSERT INTO condominium_members (user_id, condominium_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, condominium_id) DO UPDATE SET role = EXCLUDED.role;
	` // Upsert: Add user or update their role if they already exist
	_, err := r.Pool.Exec(ctx, query,
		membership.UserID,
		membership.CondominiumID,
		membership.Role,
		membership.JoinedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("user or condominium does not exist")
		}
		return apperrors.NewAppError(500, "failed to add/update user "+membership.UserID+" in condominium "+membership.CondominiumID, err)
	}
	return nil
}

func (r *PgxCondominiumRepository) FindUserCondominiumRole(ctx context.Context, userID, condominiumID string) (*domain.CondominiumMember, error) {
	query := `
		SELECT cm.user_id, u.name as user_name, cm.condominium_id, cm.role, cm.joined_at
		FROM condominium_members cm
		JOIN users u ON cm.user_id = u.user_id
		WHERE cm.user_id = $1 AND cm.condominium_id = $2;
	`
	var member domain.CondominiumMember
	err := r.Pool.QueryRow(ctx, query, userID, condominiumID).Scan(
		&member.UserID,
		&member.UserName,
		&member.CondominiumID,
		&member.Role,
		&member.JoinedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("condominium not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID+" condominium role in "+condominiumID, err)
	}
	return &member, nil
}

func (r *PgxCondominiumRepository) ListCondominiumsByUserID(ctx context.Context, userID string, includeInactive bool, role *domain.CondominiumRole) ([]domain.Condominium, error) {
	baseQuery := `JOIN condominium_members cm ON c.condominium_id = cm.condominium_id
		WHERE cm.user_id = $1 AND cm.role != $2 AND c.status != 'DELETED'`

	// Inactive condominiums are only shown to their admins.
	var whereClause string
	args := []any{userID, domain.RoleRemoved}

	if !includeInactive {
		whereClause = " AND c.status = 'ACTIVE'"

		if role != nil {
			whereClause += " AND cm.role = $3"
			args = append(args, *role)
		}
	} else {
		whereClause = " AND (c.status = 'ACTIVE' OR cm.role = $3)"
		args = append(args, domain.RoleAdmin)

		if role != nil {
			whereClause = " AND (c.status = 'ACTIVE' AND cm.role = $3 OR (c.status != 'ACTIVE' AND cm.role = $4))"
			args = append(args, *role, domain.RoleAdmin)
		}
	}

	query := baseQuery + whereClause + " ORDER BY c.name;"

	condominiums, err := r.getCondominiums(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return condominiums, nil
}

// ListUsersByCondominiumID retrieves all members of a condominium.
// By default REMOVED members are excluded; set includeRemoved to include them.
func (r *PgxCondominiumRepository) ListUsersByCondominiumID(ctx context.Context, condominiumID string, includeRemoved bool) ([]domain.CondominiumMember, error) {
	query := `
		SELECT cm.user_id, u.name as user_name, cm.condominium_id, cm.role, cm.joined_at
		FROM condominium_members cm
		JOIN users u ON cm.user_id = u.user_id
		WHERE cm.condominium_id = $1
	`

	if !includeRemoved {
		query += ` AND cm.role != $2`
	}

	query += ` ORDER BY cm.joined_at DESC;`

	var rows pgx.Rows
	var err error

	if !includeRemoved {
		rows, err = r.Pool.Query(ctx, query, condominiumID, domain.RoleRemoved)
	} else {
		rows, err = r.Pool.Query(ctx, query, condominiumID)
	}

	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members for condominium "+condominiumID, err)
	}
	defer rows.Close()

	var members []domain.CondominiumMember
	for rows.Next() {
		var member domain.CondominiumMember
		err := rows.Scan(
			&member.UserID,
			&member.UserName,
			&member.CondominiumID,
			&member.Role,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan condominium member row", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating condominium member rows", err)
	}

	return members, nil
}

// UpdateUserCondominiumRole updates a member's role in a condominium.
func (r *PgxCondominiumRepository) UpdateUserCondominiumRole(ctx context.Context, userID, condominiumID string, newRole domain.CondominiumRole) error {
	query := `
		UPDATE condominium_members
		SET role = $3
		WHERE user_id = $1 AND condominium_id = $2;
	`

	result, err := r.Pool.Exec(ctx, query, userID, condominiumID, newRole)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update role for user "+userID+" in condominium "+condominiumID, err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("condominium not found")
	}

	return nil
}
