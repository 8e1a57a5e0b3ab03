package postgresql

import (
	"context"
	"fmt"

	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/jackc/pgx/v5"
)

type facilityRepositoryImpl struct {
	db *database.DB
}

func NewFacilityRepository(db *database.DB) facility.FacilityRepository {
	return &facilityRepositoryImpl{db: db}
}

const facilityColumns = `
	id, tenant_id, name, address, opening_hour, closing_hour, created_at, updated_at, deleted_at
`

// opening_hour and closing_hour are stored as double precision fractional
// hours, matching the in-memory representation.
func scanFacility(row pgx.Row) (facility.Facility, error) {
	var f facility.Facility
	var opening, closing float64
	err := row.Scan(
		&f.ID,
		&f.TenantID,
		&f.Name,
		&f.Address,
		&opening,
		&closing,
		&f.CreatedAt,
		&f.UpdatedAt,
		&f.DeletedAt,
	)
	if err != nil {
		return facility.Facility{}, err
	}
	f.OpeningHour = timepoint.TimePoint(opening)
	f.ClosingHour = timepoint.TimePoint(closing)
	return f, nil
}

// Create implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) Create(ctx context.Context, f facility.Facility) (facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO facilities (id, tenant_id, name, address, opening_hour, closing_hour, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + facilityColumns

	return scanFacility(q.QueryRow(ctx, query,
		f.TenantID,
		f.Name,
		f.Address,
		float64(f.OpeningHour),
		float64(f.ClosingHour),
	))
}

// GetByID implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + facilityColumns + `
		FROM facilities
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	return scanFacility(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string) ([]facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + facilityColumns + `
		FROM facilities
		WHERE tenant_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer rows.Close()

	var facilities []facility.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan facility: %w", err)
		}
		facilities = append(facilities, f)
	}

	return facilities, rows.Err()
}

// Update implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) Update(ctx context.Context, req facility.UpdateFacilityRequest) (facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	var opening, closing *float64
	if req.OpeningHour != nil {
		tp, err := timepoint.Parse(*req.OpeningHour)
		if err != nil {
			return facility.Facility{}, err
		}
		v := float64(tp)
		opening = &v
	}
	if req.ClosingHour != nil {
		tp, err := timepoint.Parse(*req.ClosingHour)
		if err != nil {
			return facility.Facility{}, err
		}
		v := float64(tp)
		closing = &v
	}

	query := `
		UPDATE facilities
		SET name = COALESCE($3, name),
		    address = COALESCE($4, address),
		    opening_hour = COALESCE($5, opening_hour),
		    closing_hour = COALESCE($6, closing_hour),
		    updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		RETURNING ` + facilityColumns

	return scanFacility(q.QueryRow(ctx, query,
		req.ID,
		req.TenantID,
		req.Name,
		req.Address,
		opening,
		closing,
	))
}

// SoftDelete implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) SoftDelete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE facilities
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete facility: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
