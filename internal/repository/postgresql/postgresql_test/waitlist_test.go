package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/domain/client"
	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/domain/tenant"
	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/glowlabs/salon-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type waitlistFixture struct {
	setup    *TestDatabaseSetup
	tenantID string
	entry    waitlist.Entry
}

func newWaitlistFixture(t *testing.T) *waitlistFixture {
	t.Helper()

	setup, err := NewTestDatabase()
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	t.Cleanup(setup.Close)

	ctx := context.Background()
	require.NoError(t, setup.TruncateAllTables(ctx))

	tenantRepo := postgresql.NewTenantRepository(setup.DB)
	tn, err := tenantRepo.Create(ctx, tenant.Tenant{Name: "Glow Studio", Username: "glow-studio", Timezone: "UTC"})
	require.NoError(t, err)

	facilityRepo := postgresql.NewFacilityRepository(setup.DB)
	fc, err := facilityRepo.Create(ctx, facility.Facility{
		TenantID:    tn.ID,
		Name:        "Downtown",
		OpeningHour: timepoint.TimePoint(8),
		ClosingHour: timepoint.TimePoint(20),
	})
	require.NoError(t, err)

	employeeRepo := postgresql.NewEmployeeRepository(setup.DB)
	emp, err := employeeRepo.Create(ctx, employee.Employee{
		TenantID:              tn.ID,
		FacilityID:            &fc.ID,
		FullName:              "Dana Keller",
		IncludeInAppointments: true,
	})
	require.NoError(t, err)

	clientRepo := postgresql.NewClientRepository(setup.DB)
	cl, err := clientRepo.Create(ctx, client.Client{TenantID: tn.ID, FullName: "Iris Wong"})
	require.NoError(t, err)

	serviceRepo := postgresql.NewServiceRepository(setup.DB)
	svc, err := serviceRepo.Create(ctx, catalog.Service{
		TenantID:        tn.ID,
		Name:            "Deep Tissue Massage",
		DurationMinutes: 60,
		Currency:        "USD",
		IsActive:        true,
	})
	require.NoError(t, err)

	waitlistRepo := postgresql.NewWaitlistRepository(setup.DB)
	entry, err := waitlistRepo.Create(ctx, waitlist.Entry{
		TenantID:   tn.ID,
		ClientID:   cl.ID,
		EmployeeID: emp.ID,
		FacilityID: fc.ID,
		ServiceID:  svc.ID,
		Date:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		StartHour:  timepoint.TimePoint(10),
		EndHour:    timepoint.TimePoint(11),
	})
	require.NoError(t, err)

	return &waitlistFixture{setup: setup, tenantID: tn.ID, entry: entry}
}

func TestClaimEntryIsAtomic(t *testing.T) {
	f := newWaitlistFixture(t)
	ctx := context.Background()
	repo := postgresql.NewWaitlistRepository(f.setup.DB)

	now := time.Now().UTC()
	token := "claim-token-abc"
	_, err := repo.MarkNotified(ctx, f.entry.ID, token, now, now.Add(time.Hour))
	require.NoError(t, err)

	won, err := repo.ClaimEntry(ctx, token, f.tenantID, now)
	require.NoError(t, err)
	require.True(t, won.IsClaimed)

	// second claim with the same token loses the compare-and-set
	_, err = repo.ClaimEntry(ctx, token, f.tenantID, now)
	require.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestClaimEntryRejectsExpiredToken(t *testing.T) {
	f := newWaitlistFixture(t)
	ctx := context.Background()
	repo := postgresql.NewWaitlistRepository(f.setup.DB)

	now := time.Now().UTC()
	_, err := repo.MarkNotified(ctx, f.entry.ID, "expired-token", now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	_, err = repo.ClaimEntry(ctx, "expired-token", f.tenantID, now)
	require.True(t, errors.Is(err, pgx.ErrNoRows))
}

func TestResetExpiredReturnsEntryToWaiting(t *testing.T) {
	f := newWaitlistFixture(t)
	ctx := context.Background()
	repo := postgresql.NewWaitlistRepository(f.setup.DB)

	now := time.Now().UTC()
	_, err := repo.MarkNotified(ctx, f.entry.ID, "stale-token", now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)

	reset, err := repo.ResetExpired(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, reset)

	entry, err := repo.GetByID(ctx, f.entry.ID, f.tenantID)
	require.NoError(t, err)
	require.Equal(t, waitlist.StateWaiting, entry.StateAt(now))
	require.Nil(t, entry.ClaimToken)
}
