package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type waitlistRepositoryImpl struct {
	db *database.DB
}

func NewWaitlistRepository(db *database.DB) waitlist.WaitlistRepository {
	return &waitlistRepositoryImpl{db: db}
}

const waitlistColumns = `
	id, tenant_id, client_id, employee_id, facility_id, service_id, date,
	start_hour, end_hour, is_notified, notification_sent_at, claim_token,
	claim_expires_at, token_invalidated_at, is_claimed, created_at, updated_at
`

func scanWaitlistEntry(row pgx.Row) (waitlist.Entry, error) {
	var e waitlist.Entry
	var start, end float64
	err := row.Scan(
		&e.ID,
		&e.TenantID,
		&e.ClientID,
		&e.EmployeeID,
		&e.FacilityID,
		&e.ServiceID,
		&e.Date,
		&start,
		&end,
		&e.IsNotified,
		&e.NotificationSentAt,
		&e.ClaimToken,
		&e.ClaimExpiresAt,
		&e.TokenInvalidatedAt,
		&e.IsClaimed,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return waitlist.Entry{}, err
	}
	e.StartHour = timepoint.TimePoint(start)
	e.EndHour = timepoint.TimePoint(end)
	return e, nil
}

// Create implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) Create(ctx context.Context, e waitlist.Entry) (waitlist.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO waitlist_entries (
			id, tenant_id, client_id, employee_id, facility_id, service_id, date,
			start_hour, end_hour, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + waitlistColumns

	entry, err := scanWaitlistEntry(q.QueryRow(ctx, query,
		e.TenantID,
		e.ClientID,
		e.EmployeeID,
		e.FacilityID,
		e.ServiceID,
		e.Date,
		float64(e.StartHour),
		float64(e.EndHour),
	))
	if err != nil {
		// unique index on (tenant_id, client_id, employee_id, facility_id,
		// date, start_hour, end_hour) where not claimed
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return waitlist.Entry{}, waitlist.ErrDuplicateEntry
		}
		return waitlist.Entry{}, err
	}
	return entry, nil
}

// GetByID implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) GetByID(ctx context.Context, id, tenantID string) (waitlist.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + waitlistColumns + `
		FROM waitlist_entries
		WHERE id = $1 AND tenant_id = $2
	`

	return scanWaitlistEntry(q.QueryRow(ctx, query, id, tenantID))
}

// GetByToken implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) GetByToken(ctx context.Context, token, tenantID string) (waitlist.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + waitlistColumns + `
		FROM waitlist_entries
		WHERE claim_token = $1 AND tenant_id = $2
	`

	return scanWaitlistEntry(q.QueryRow(ctx, query, token, tenantID))
}

// ListByFilter implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) ListByFilter(ctx context.Context, tenantID string, filter waitlist.EntryFilter) ([]waitlist.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE tenant_id = $1`
	args := []interface{}{tenantID}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		where += fmt.Sprintf(` AND client_id = $%d`, len(args))
	}
	if filter.FacilityID != nil {
		args = append(args, *filter.FacilityID)
		where += fmt.Sprintf(` AND facility_id = $%d`, len(args))
	}
	if filter.Date != nil {
		args = append(args, *filter.Date)
		where += fmt.Sprintf(` AND date = $%d`, len(args))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM waitlist_entries ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count waitlist entries: %w", err)
	}

	query := `SELECT ` + waitlistColumns + ` FROM waitlist_entries ` + where + ` ORDER BY created_at ASC, id ASC`
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
		return nil, 0, fmt.Errorf("failed to list waitlist entries: %w", err)
	}
	defer rows.Close()

	var entries []waitlist.Entry
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan waitlist entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, total, rows.Err()
}

// ListWaitingForSlot implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) ListWaitingForSlot(ctx context.Context, tenantID, employeeID, facilityID, serviceID string, date time.Time, start, end timepoint.TimePoint) ([]waitlist.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + waitlistColumns + `
		FROM waitlist_entries
		WHERE tenant_id = $1
		  AND employee_id = $2
		  AND facility_id = $3
		  AND service_id = $4
		  AND date = $5
		  AND start_hour = $6
		  AND end_hour = $7
		  AND is_claimed = FALSE
		  AND (is_notified = FALSE OR token_invalidated_at IS NOT NULL)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, tenantID, employeeID, facilityID, serviceID, date, float64(start), float64(end))
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting entries: %w", err)
	}
	defer rows.Close()

	var entries []waitlist.Entry
	for rows.Next() {
		e, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan waitlist entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// MarkNotified implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) MarkNotified(ctx context.Context, id, token string, sentAt, expiresAt time.Time) (waitlist.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE waitlist_entries
		SET is_notified = TRUE,
		    notification_sent_at = $2,
		    claim_token = $3,
		    claim_expires_at = $4,
		    token_invalidated_at = NULL,
		    updated_at = NOW()
		WHERE id = $1 AND is_claimed = FALSE
		RETURNING ` + waitlistColumns

	return scanWaitlistEntry(q.QueryRow(ctx, query, id, sentAt, token, expiresAt))
}

// ClaimEntry implements waitlist.WaitlistRepository. The WHERE clause is the
// compare-and-set: only a live, unexpired, unrevoked token row can flip to
// claimed, and pgx.ErrNoRows signals a lost race.
func (r *waitlistRepositoryImpl) ClaimEntry(ctx context.Context, token, tenantID string, now time.Time) (waitlist.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE waitlist_entries
		SET is_claimed = TRUE, updated_at = NOW()
		WHERE claim_token = $1
		  AND tenant_id = $2
		  AND is_notified = TRUE
		  AND is_claimed = FALSE
		  AND token_invalidated_at IS NULL
		  AND claim_expires_at > $3
		RETURNING ` + waitlistColumns

	return scanWaitlistEntry(q.QueryRow(ctx, query, token, tenantID, now))
}

// InvalidateSiblings implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) InvalidateSiblings(ctx context.Context, winner waitlist.Entry, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE waitlist_entries
		SET token_invalidated_at = $8, updated_at = NOW()
		WHERE tenant_id = $1
		  AND employee_id = $2
		  AND facility_id = $3
		  AND date = $4
		  AND start_hour = $5
		  AND end_hour = $6
		  AND id <> $7
		  AND is_notified = TRUE
		  AND is_claimed = FALSE
		  AND token_invalidated_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		winner.TenantID,
		winner.EmployeeID,
		winner.FacilityID,
		winner.Date,
		float64(winner.StartHour),
		float64(winner.EndHour),
		winner.ID,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate sibling tokens: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ResetExpired implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) ResetExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE waitlist_entries
		SET is_notified = FALSE,
		    notification_sent_at = NULL,
		    claim_token = NULL,
		    claim_expires_at = NULL,
		    token_invalidated_at = NULL,
		    updated_at = NOW()
		WHERE is_notified = TRUE
		  AND is_claimed = FALSE
		  AND claim_expires_at IS NOT NULL
		  AND claim_expires_at <= $1
	`

	tag, err := q.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to reset expired entries: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Delete implements waitlist.WaitlistRepository.
func (r *waitlistRepositoryImpl) Delete(ctx context.Context, id, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM waitlist_entries WHERE id = $1 AND tenant_id = $2`

	tag, err := q.Exec(ctx, query, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete waitlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
