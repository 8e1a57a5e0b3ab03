package postgresql

import (
	"context"
	"fmt"

	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type serviceRepositoryImpl struct {
	db *database.DB
}

func NewServiceRepository(db *database.DB) catalog.ServiceRepository {
	return &serviceRepositoryImpl{db: db}
}

const serviceColumns = `
	id, tenant_id, name, description, duration_minutes, price, currency,
	is_active, created_at, updated_at, deleted_at
`

func scanService(row pgx.Row) (catalog.Service, error) {
	var s catalog.Service
	err := row.Scan(
		&s.ID,
		&s.TenantID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.Currency,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.DeletedAt,
	)
	return s, err
}

// Create implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) Create(ctx context.Context, s catalog.Service) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO services (
			id, tenant_id, name, description, duration_minutes, price, currency,
			is_active, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + serviceColumns

	return scanService(q.QueryRow(ctx, query,
		s.TenantID,
		s.Name,
		s.Description,
		s.DurationMinutes,
		s.Price,
		s.Currency,
		s.IsActive,
	))
}

// GetByID implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	return scanService(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, filter catalog.ServiceFilter) ([]catalog.Service, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE tenant_id = $1 AND deleted_at IS NULL`
	args := []interface{}{tenantID}

	if filter.ActiveOnly {
		where += ` AND is_active = TRUE`
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM services ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count services: %w", err)
	}

	query := `SELECT ` + serviceColumns + ` FROM services ` + where + ` ORDER BY name ASC`
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
		return nil, 0, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []catalog.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, s)
	}

	return services, total, rows.Err()
}

// Update implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) Update(ctx context.Context, req catalog.UpdateServiceRequest) (catalog.Service, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE services
		SET name = COALESCE($3, name),
		    description = COALESCE($4, description),
		    duration_minutes = COALESCE($5, duration_minutes),
		    price = COALESCE($6, price),
		    currency = COALESCE($7, currency),
		    is_active = COALESCE($8, is_active),
		    updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		RETURNING ` + serviceColumns

	return scanService(q.QueryRow(ctx, query,
		req.ID,
		req.TenantID,
		req.Name,
		req.Description,
		req.DurationMinutes,
		req.Price,
		req.Currency,
		req.IsActive,
	))
}

// SoftDelete implements catalog.ServiceRepository.
func (r *serviceRepositoryImpl) SoftDelete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE services
		SET deleted_at = NOW(), is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
