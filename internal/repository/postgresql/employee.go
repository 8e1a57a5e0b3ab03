package postgresql

import (
	"context"
	"fmt"

	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, tenant_id, facility_id, full_name, email, phone_number, avatar_url,
	color, include_in_appointments, hire_date, created_at, updated_at, deleted_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.TenantID,
		&e.FacilityID,
		&e.FullName,
		&e.Email,
		&e.PhoneNumber,
		&e.AvatarURL,
		&e.Color,
		&e.IncludeInAppointments,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.DeletedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, tenant_id, facility_id, full_name, email, phone_number, avatar_url,
			color, include_in_appointments, hire_date, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		e.TenantID,
		e.FacilityID,
		e.FullName,
		e.Email,
		e.PhoneNumber,
		e.AvatarURL,
		e.Color,
		e.IncludeInAppointments,
		e.HireDate,
	))
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	return scanEmployee(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if !filter.IncludeSoftDelete {
		where += ` AND deleted_at IS NULL`
	}
	if filter.FacilityID != nil {
		args = append(args, *filter.FacilityID)
		where += fmt.Sprintf(` AND facility_id = $%d`, len(args))
	}
	if filter.BookableOnly {
		where += ` AND include_in_appointments = TRUE`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `SELECT ` + employeeColumns + ` FROM employees ` + where + ` ORDER BY full_name ASC`
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
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET facility_id = COALESCE($3, facility_id),
		    full_name = COALESCE($4, full_name),
		    email = COALESCE($5, email),
		    phone_number = COALESCE($6, phone_number),
		    color = COALESCE($7, color),
		    include_in_appointments = COALESCE($8, include_in_appointments),
		    updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	return scanEmployee(q.QueryRow(ctx, query,
		req.ID,
		req.TenantID,
		req.FacilityID,
		req.FullName,
		req.Email,
		req.PhoneNumber,
		req.Color,
		req.IncludeInAppointments,
	))
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
