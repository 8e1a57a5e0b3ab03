package postgresql

import (
	"context"
	"fmt"

	"github.com/glowlabs/salon-backend-go/internal/domain/client"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.ClientRepository {
	return &clientRepositoryImpl{db: db}
}

const clientColumns = `
	id, tenant_id, full_name, email, phone_number, notes, created_at, updated_at, deleted_at
`

func scanClient(row pgx.Row) (client.Client, error) {
	var c client.Client
	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&c.FullName,
		&c.Email,
		&c.PhoneNumber,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	return c, err
}

// Create implements client.ClientRepository.
func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (id, tenant_id, full_name, email, phone_number, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + clientColumns

	return scanClient(q.QueryRow(ctx, query,
		c.TenantID,
		c.FullName,
		c.Email,
		c.PhoneNumber,
		c.Notes,
	))
}

// GetByID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + clientColumns + `
		FROM clients
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	return scanClient(q.QueryRow(ctx, query, id, tenantID))
}

// GetByTenantID implements client.ClientRepository.
func (r *clientRepositoryImpl) GetByTenantID(ctx context.Context, tenantID string, filter client.ClientFilter) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE tenant_id = $1 AND deleted_at IS NULL`
	args := []interface{}{tenantID}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(` AND (full_name ILIKE $%d OR email ILIKE $%d)`, len(args), len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM clients ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := `SELECT ` + clientColumns + ` FROM clients ` + where + ` ORDER BY full_name ASC`
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
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, total, rows.Err()
}

// Update implements client.ClientRepository.
func (r *clientRepositoryImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET full_name = COALESCE($3, full_name),
		    email = COALESCE($4, email),
		    phone_number = COALESCE($5, phone_number),
		    notes = COALESCE($6, notes),
		    updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
		RETURNING ` + clientColumns

	return scanClient(q.QueryRow(ctx, query,
		req.ID,
		req.TenantID,
		req.FullName,
		req.Email,
		req.PhoneNumber,
		req.Notes,
	))
}

// SoftDelete implements client.ClientRepository.
func (r *clientRepositoryImpl) SoftDelete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE clients
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
