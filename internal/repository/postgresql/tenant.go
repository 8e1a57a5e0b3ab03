package postgresql

import (
	"context"
	"fmt"

	"github.com/glowlabs/salon-backend-go/internal/domain/tenant"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type tenantRepositoryImpl struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepositoryImpl{db: db}
}

// Create implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) Create(ctx context.Context, t tenant.Tenant) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tenants (id, name, username, timezone, logo_url, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, username, timezone, logo_url, created_at, updated_at
	`

	var result tenant.Tenant
	err := q.QueryRow(ctx, query, t.Name, t.Username, t.Timezone, t.LogoURL).Scan(
		&result.ID,
		&result.Name,
		&result.Username,
		&result.Timezone,
		&result.LogoURL,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return tenant.Tenant{}, err
	}

	return result, nil
}

// GetByID implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, timezone, logo_url, created_at, updated_at
		FROM tenants
		WHERE id = $1 AND deleted_at IS NULL
	`

	var result tenant.Tenant
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Username,
		&result.Timezone,
		&result.LogoURL,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return tenant.Tenant{}, err
	}

	return result, nil
}

// List implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) List(ctx context.Context) ([]tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, timezone, logo_url, created_at, updated_at
		FROM tenants
		WHERE deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []tenant.Tenant
	for rows.Next() {
		var t tenant.Tenant
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Username,
			&t.Timezone,
			&t.LogoURL,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}

	return tenants, rows.Err()
}

// Update implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) Update(ctx context.Context, req tenant.UpdateTenantRequest) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tenants
		SET name = COALESCE($2, name),
		    timezone = COALESCE($3, timezone),
		    logo_url = COALESCE($4, logo_url),
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, name, username, timezone, logo_url, created_at, updated_at
	`

	var result tenant.Tenant
	err := q.QueryRow(ctx, query, req.ID, req.Name, req.Timezone, req.LogoURL).Scan(
		&result.ID,
		&result.Name,
		&result.Username,
		&result.Timezone,
		&result.LogoURL,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return tenant.Tenant{}, err
	}

	return result, nil
}

// SoftDelete implements tenant.TenantRepository.
func (r *tenantRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tenants
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
