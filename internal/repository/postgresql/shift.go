package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/shift"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `
	id, tenant_id, employee_id, facility_id, date, start_hour, end_hour, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	var start, end float64
	err := row.Scan(
		&s.ID,
		&s.TenantID,
		&s.EmployeeID,
		&s.FacilityID,
		&s.Date,
		&start,
		&end,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}
	s.StartHour = timepoint.TimePoint(start)
	s.EndHour = timepoint.TimePoint(end)
	return s, nil
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, tenant_id, employee_id, facility_id, date, start_hour, end_hour, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + shiftColumns

	return scanShift(q.QueryRow(ctx, query,
		s.TenantID,
		s.EmployeeID,
		s.FacilityID,
		s.Date,
		float64(s.StartHour),
		float64(s.EndHour),
	))
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE id = $1 AND tenant_id = $2
	`

	return scanShift(q.QueryRow(ctx, query, id, tenantID))
}

// GetByEmployeeAndDate implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, tenantID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND date = $2 AND tenant_id = $3
	`

	return scanShift(q.QueryRow(ctx, query, employeeID, date, tenantID))
}

// ListByFacilityAndDate implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByFacilityAndDate(ctx context.Context, facilityID string, date time.Time, tenantID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE facility_id = $1 AND date = $2 AND tenant_id = $3
		ORDER BY start_hour ASC, id ASC
	`

	rows, err := q.Query(ctx, query, facilityID, date, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

// ListByEmployee implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, tenantID string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `
		FROM shifts
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND tenant_id = $4
		ORDER BY date ASC, start_hour ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	return collectShifts(rows)
}

func collectShifts(rows pgx.Rows) ([]shift.Shift, error) {
	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var start, end *float64
	if req.StartHour != nil {
		tp, err := timepoint.Parse(*req.StartHour)
		if err != nil {
			return shift.Shift{}, err
		}
		v := float64(tp)
		start = &v
	}
	if req.EndHour != nil {
		tp, err := timepoint.Parse(*req.EndHour)
		if err != nil {
			return shift.Shift{}, err
		}
		v := float64(tp)
		end = &v
	}

	query := `
		UPDATE shifts
		SET start_hour = COALESCE($3, start_hour),
		    end_hour = COALESCE($4, end_hour),
		    updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING ` + shiftColumns

	return scanShift(q.QueryRow(ctx, query, req.ID, req.TenantID, start, end))
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shifts WHERE id = $1 AND tenant_id = $2`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
