package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/jackc/pgx/v5"
)

type appointmentRepositoryImpl struct {
	db *database.DB
}

func NewAppointmentRepository(db *database.DB) appointment.AppointmentRepository {
	return &appointmentRepositoryImpl{db: db}
}

const appointmentColumns = `
	id, tenant_id, employee_id, client_id, service_id, facility_id, date,
	start_hour, end_hour, notes, cancelled_at, created_at, updated_at
`

func scanAppointment(row pgx.Row) (appointment.Appointment, error) {
	var a appointment.Appointment
	var start, end float64
	err := row.Scan(
		&a.ID,
		&a.TenantID,
		&a.EmployeeID,
		&a.ClientID,
		&a.ServiceID,
		&a.FacilityID,
		&a.Date,
		&start,
		&end,
		&a.Notes,
		&a.CancelledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return appointment.Appointment{}, err
	}
	a.StartHour = timepoint.TimePoint(start)
	a.EndHour = timepoint.TimePoint(end)
	return a, nil
}

func collectAppointments(rows pgx.Rows) ([]appointment.Appointment, error) {
	var appointments []appointment.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

// Create implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) Create(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO appointments (
			id, tenant_id, employee_id, client_id, service_id, facility_id, date,
			start_hour, end_hour, notes, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + appointmentColumns

	return scanAppointment(q.QueryRow(ctx, query,
		a.TenantID,
		a.EmployeeID,
		a.ClientID,
		a.ServiceID,
		a.FacilityID,
		a.Date,
		float64(a.StartHour),
		float64(a.EndHour),
		a.Notes,
	))
}

// CreateBatch implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) CreateBatch(ctx context.Context, appointments []appointment.Appointment) ([]appointment.Appointment, error) {
	if len(appointments) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO appointments (
			id, tenant_id, employee_id, client_id, service_id, facility_id, date,
			start_hour, end_hour, notes, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + appointmentColumns

	batch := &pgx.Batch{}
	for _, a := range appointments {
		batch.Queue(query,
			a.TenantID,
			a.EmployeeID,
			a.ClientID,
			a.ServiceID,
			a.FacilityID,
			a.Date,
			float64(a.StartHour),
			float64(a.EndHour),
			a.Notes,
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]appointment.Appointment, 0, len(appointments))
	for range appointments {
		a, err := scanAppointment(results.QueryRow())
		if err != nil {
			return nil, fmt.Errorf("failed to batch insert appointment: %w", err)
		}
		created = append(created, a)
	}

	return created, nil
}

// GetByID implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1 AND tenant_id = $2
	`

	return scanAppointment(q.QueryRow(ctx, query, id, tenantID))
}

// ListByFilter implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) ListByFilter(ctx context.Context, tenantID string, filter appointment.AppointmentFilter) ([]appointment.Appointment, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE tenant_id = $1 AND cancelled_at IS NULL`
	args := []interface{}{tenantID}

	if filter.FacilityID != nil {
		args = append(args, *filter.FacilityID)
		where += fmt.Sprintf(` AND facility_id = $%d`, len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where += fmt.Sprintf(` AND client_id = $%d`, len(args))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where += fmt.Sprintf(` AND employee_id = $%d`, len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where += fmt.Sprintf(` AND date = $%d`, len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM appointments ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count appointments: %w", err)
	}

	query := `SELECT ` + appointmentColumns + ` FROM appointments ` + where + ` ORDER BY date ASC, start_hour ASC, id ASC`
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		args = append(args, filter.Limit, (page-1)*filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	appointments, err := collectAppointments(rows)
	return appointments, total, err
}

// ListByFacilityAndDate implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) ListByFacilityAndDate(ctx context.Context, facilityID string, date time.Time, tenantID string) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE facility_id = $1 AND date = $2 AND tenant_id = $3 AND cancelled_at IS NULL
		ORDER BY start_hour ASC, id ASC
	`

	rows, err := q.Query(ctx, query, facilityID, date, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// ListByEmployeeAndDate implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, tenantID string) ([]appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE employee_id = $1 AND date = $2 AND tenant_id = $3 AND cancelled_at IS NULL
		ORDER BY start_hour ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID, date, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// Update implements appointment.AppointmentRepository.
func (r *appointmentRepositoryImpl) Update(ctx context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE appointments
		SET employee_id = $3,
		    date = $4,
		    start_hour = $5,
		    end_hour = $6,
		    notes = $7,
		    updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND cancelled_at IS NULL
		RETURNING ` + appointmentColumns

	return scanAppointment(q.QueryRow(ctx, query,
		a.ID,
		a.TenantID,
		a.EmployeeID,
		a.Date,
		float64(a.StartHour),
		float64(a.EndHour),
		a.Notes,
	))
}

// Cancel implements appointment.AppointmentRepository. Cancelling is a soft
// operation, the row stays for history and waitlist matching.
func (r *appointmentRepositoryImpl) Cancel(ctx context.Context, id, tenantID string, at time.Time) (appointment.Appointment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE appointments
		SET cancelled_at = $3, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND cancelled_at IS NULL
		RETURNING ` + appointmentColumns

	return scanAppointment(q.QueryRow(ctx, query, id, tenantID, at))
}
