package waitlist

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/notification"
	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenantContext(t *testing.T, tenantID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"sub":       "subject-1",
		"tenant_id": tenantID,
		"type":      "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

// fakeWaitlistRepo keeps entries in memory with the same error conventions as
// the real repository: pgx.ErrNoRows on missing rows.
type fakeWaitlistRepo struct {
	entries map[string]waitlist.Entry
	nextID  int

	markNotifiedErrs map[string]error
}

func newFakeWaitlistRepo() *fakeWaitlistRepo {
	return &fakeWaitlistRepo{
		entries:          make(map[string]waitlist.Entry),
		markNotifiedErrs: make(map[string]error),
	}
}

func (r *fakeWaitlistRepo) add(e waitlist.Entry) waitlist.Entry {
	if e.ID == "" {
		r.nextID++
		e.ID = fmt.Sprintf("entry-%d", r.nextID)
	}
	r.entries[e.ID] = e
	return e
}

func (r *fakeWaitlistRepo) Create(_ context.Context, e waitlist.Entry) (waitlist.Entry, error) {
	for _, existing := range r.entries {
		if existing.ClientID == e.ClientID &&
			existing.MatchesSlot(e.EmployeeID, e.FacilityID, e.Date, e.StartHour, e.EndHour) {
			return waitlist.Entry{}, waitlist.ErrDuplicateEntry
		}
	}
	return r.add(e), nil
}

func (r *fakeWaitlistRepo) GetByID(_ context.Context, id, tenantID string) (waitlist.Entry, error) {
	e, ok := r.entries[id]
	if !ok || e.TenantID != tenantID {
		return waitlist.Entry{}, pgx.ErrNoRows
	}
	return e, nil
}

func (r *fakeWaitlistRepo) GetByToken(_ context.Context, token, tenantID string) (waitlist.Entry, error) {
	for _, e := range r.entries {
		if e.TenantID == tenantID && e.ClaimToken != nil && *e.ClaimToken == token {
			return e, nil
		}
	}
	return waitlist.Entry{}, pgx.ErrNoRows
}

func (r *fakeWaitlistRepo) ListByFilter(_ context.Context, tenantID string, _ waitlist.EntryFilter) ([]waitlist.Entry, int64, error) {
	var out []waitlist.Entry
	for _, e := range r.entries {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeWaitlistRepo) ListWaitingForSlot(_ context.Context, tenantID, employeeID, facilityID, _ string, date time.Time, start, end timepoint.TimePoint) ([]waitlist.Entry, error) {
	var out []waitlist.Entry
	for _, e := range r.entries {
		if e.TenantID != tenantID || !e.MatchesSlot(employeeID, facilityID, date, start, end) {
			continue
		}
		if e.IsClaimed || (e.IsNotified && e.TokenInvalidatedAt == nil) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeWaitlistRepo) MarkNotified(_ context.Context, id, token string, sentAt, expiresAt time.Time) (waitlist.Entry, error) {
	if err := r.markNotifiedErrs[id]; err != nil {
		return waitlist.Entry{}, err
	}
	e, ok := r.entries[id]
	if !ok || e.IsClaimed {
		return waitlist.Entry{}, pgx.ErrNoRows
	}
	e.IsNotified = true
	e.NotificationSentAt = &sentAt
	e.ClaimToken = &token
	e.ClaimExpiresAt = &expiresAt
	e.TokenInvalidatedAt = nil
	r.entries[id] = e
	return e, nil
}

func (r *fakeWaitlistRepo) ClaimEntry(_ context.Context, token, tenantID string, now time.Time) (waitlist.Entry, error) {
	for id, e := range r.entries {
		if e.TenantID != tenantID || e.ClaimToken == nil || *e.ClaimToken != token {
			continue
		}
		if !e.TokenValidAt(now) {
			return waitlist.Entry{}, pgx.ErrNoRows
		}
		e.IsClaimed = true
		r.entries[id] = e
		return e, nil
	}
	return waitlist.Entry{}, pgx.ErrNoRows
}

func (r *fakeWaitlistRepo) InvalidateSiblings(_ context.Context, winner waitlist.Entry, now time.Time) (int64, error) {
	var n int64
	for id, e := range r.entries {
		if e.ID == winner.ID || e.IsClaimed || !e.IsNotified || e.TokenInvalidatedAt != nil {
			continue
		}
		if e.MatchesSlot(winner.EmployeeID, winner.FacilityID, winner.Date, winner.StartHour, winner.EndHour) {
			e.TokenInvalidatedAt = &now
			r.entries[id] = e
			n++
		}
	}
	return n, nil
}

func (r *fakeWaitlistRepo) ResetExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, e := range r.entries {
		if e.StateAt(now) != waitlist.StateExpired {
			continue
		}
		e.IsNotified = false
		e.NotificationSentAt = nil
		e.ClaimToken = nil
		e.ClaimExpiresAt = nil
		e.TokenInvalidatedAt = nil
		r.entries[id] = e
		n++
	}
	return n, nil
}

func (r *fakeWaitlistRepo) Delete(_ context.Context, id, tenantID string) error {
	e, ok := r.entries[id]
	if !ok || e.TenantID != tenantID {
		return pgx.ErrNoRows
	}
	delete(r.entries, id)
	return nil
}

type stubAppointmentRepo struct{}

func (stubAppointmentRepo) Create(_ context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	a.ID = "apt-new"
	return a, nil
}
func (stubAppointmentRepo) CreateBatch(_ context.Context, _ []appointment.Appointment) ([]appointment.Appointment, error) {
	return nil, nil
}
func (stubAppointmentRepo) GetByID(_ context.Context, _, _ string) (appointment.Appointment, error) {
	return appointment.Appointment{}, pgx.ErrNoRows
}
func (stubAppointmentRepo) ListByFilter(_ context.Context, _ string, _ appointment.AppointmentFilter) ([]appointment.Appointment, int64, error) {
	return nil, 0, nil
}
func (stubAppointmentRepo) ListByFacilityAndDate(_ context.Context, _ string, _ time.Time, _ string) ([]appointment.Appointment, error) {
	return nil, nil
}
func (stubAppointmentRepo) ListByEmployeeAndDate(_ context.Context, _ string, _ time.Time, _ string) ([]appointment.Appointment, error) {
	return nil, nil
}
func (stubAppointmentRepo) Update(_ context.Context, a appointment.Appointment) (appointment.Appointment, error) {
	return a, nil
}
func (stubAppointmentRepo) Cancel(_ context.Context, _, _ string, _ time.Time) (appointment.Appointment, error) {
	return appointment.Appointment{}, pgx.ErrNoRows
}

type fakeNotificationService struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotificationService) QueueNotification(_ context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}
func (f *fakeNotificationService) QueueBulkNotification(_ context.Context, reqs []notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, reqs...)
	return nil
}
func (f *fakeNotificationService) GetNotifications(_ context.Context, _ string, _, _ int, _ bool) (*notification.NotificationListResponse, error) {
	return &notification.NotificationListResponse{}, nil
}
func (f *fakeNotificationService) GetUnreadCount(_ context.Context, _ string) (int, error) {
	return 0, nil
}
func (f *fakeNotificationService) MarkAsRead(_ context.Context, _ string, _ notification.MarkAsReadRequest) error {
	return nil
}
func (f *fakeNotificationService) MarkAllAsRead(_ context.Context, _ string) error { return nil }
func (f *fakeNotificationService) Delete(_ context.Context, _, _ string) error     { return nil }
func (f *fakeNotificationService) Subscribe(_ context.Context, _ string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	return ch, func() { close(ch) }
}
func (f *fakeNotificationService) Stop() {}

func newTestService(t *testing.T, repo *fakeWaitlistRepo, notif *fakeNotificationService) waitlist.WaitlistService {
	t.Helper()
	return NewWaitlistService(nil, repo, stubAppointmentRepo{}, notif, 15*time.Minute)
}

func baseEntry(t *testing.T) waitlist.Entry {
	t.Helper()
	start, err := timepoint.Parse("09:00")
	require.NoError(t, err)
	end, err := timepoint.Parse("10:00")
	require.NoError(t, err)
	return waitlist.Entry{
		TenantID:   "tenant-1",
		ClientID:   "client-1",
		EmployeeID: "emp-1",
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartHour:  start,
		EndHour:    end,
	}
}

func notifiedEntry(t *testing.T, token string, expiresAt time.Time) waitlist.Entry {
	t.Helper()
	e := baseEntry(t)
	sentAt := expiresAt.Add(-15 * time.Minute)
	e.IsNotified = true
	e.NotificationSentAt = &sentAt
	e.ClaimToken = &token
	e.ClaimExpiresAt = &expiresAt
	return e
}

func TestJoinRejectsDuplicate(t *testing.T) {
	repo := newFakeWaitlistRepo()
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	req := waitlist.JoinWaitlistRequest{
		ClientID:   "client-1",
		EmployeeID: "emp-1",
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       "2026-09-01",
		StartHour:  "09:00",
		EndHour:    "10:00",
	}

	first, err := svc.Join(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, waitlist.StateWaiting, first.State)

	_, err = svc.Join(ctx, req)
	assert.ErrorIs(t, err, waitlist.ErrDuplicateEntry)
}

func TestRemoveRejectsNonOwner(t *testing.T) {
	repo := newFakeWaitlistRepo()
	entry := repo.add(baseEntry(t))
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	err := svc.Remove(ctx, entry.ID, "client-2")
	assert.ErrorIs(t, err, waitlist.ErrNotOwner)

	err = svc.Remove(ctx, entry.ID, "client-1")
	require.NoError(t, err)

	err = svc.Remove(ctx, entry.ID, "client-1")
	assert.ErrorIs(t, err, waitlist.ErrEntryNotFound)
}

func TestClaimUnknownToken(t *testing.T) {
	repo := newFakeWaitlistRepo()
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	_, err := svc.Claim(ctx, waitlist.ClaimRequest{ClientID: "client-1", Token: "no-such-token"})
	assert.ErrorIs(t, err, waitlist.ErrInvalidToken)
}

func TestClaimExpiredToken(t *testing.T) {
	repo := newFakeWaitlistRepo()
	repo.add(notifiedEntry(t, "token-1", time.Now().Add(-time.Minute)))
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	_, err := svc.Claim(ctx, waitlist.ClaimRequest{ClientID: "client-1", Token: "token-1"})
	assert.ErrorIs(t, err, waitlist.ErrTokenExpired)
}

func TestClaimWrongClientLooksLikeUnknownToken(t *testing.T) {
	repo := newFakeWaitlistRepo()
	repo.add(notifiedEntry(t, "token-1", time.Now().Add(10*time.Minute)))
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	_, err := svc.Claim(ctx, waitlist.ClaimRequest{ClientID: "client-2", Token: "token-1"})
	assert.ErrorIs(t, err, waitlist.ErrInvalidToken)
}

func TestClaimRevokedTokenReportsSlotTaken(t *testing.T) {
	repo := newFakeWaitlistRepo()
	e := notifiedEntry(t, "token-1", time.Now().Add(10*time.Minute))
	revokedAt := time.Now().Add(-time.Minute)
	e.TokenInvalidatedAt = &revokedAt
	repo.add(e)
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	// the token is recognized but a sibling already won the slot
	_, err := svc.Claim(ctx, waitlist.ClaimRequest{ClientID: "client-1", Token: "token-1"})
	assert.ErrorIs(t, err, waitlist.ErrSlotAlreadyTaken)
}

func TestClaimAlreadyClaimedReportsSlotTaken(t *testing.T) {
	repo := newFakeWaitlistRepo()
	e := notifiedEntry(t, "token-1", time.Now().Add(10*time.Minute))
	e.IsClaimed = true
	repo.add(e)
	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	_, err := svc.Claim(ctx, waitlist.ClaimRequest{ClientID: "client-1", Token: "token-1"})
	assert.ErrorIs(t, err, waitlist.ErrSlotAlreadyTaken)
}

func TestNotifyFreedSlotIssuesDistinctTokens(t *testing.T) {
	repo := newFakeWaitlistRepo()
	first := repo.add(baseEntry(t))
	second := baseEntry(t)
	second.ClientID = "client-2"
	repo.add(second)

	notif := &fakeNotificationService{}
	svc := newTestService(t, repo, notif)

	cancelled := appointment.Appointment{
		TenantID:   "tenant-1",
		EmployeeID: "emp-1",
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       first.Date,
		StartHour:  first.StartHour,
		EndHour:    first.EndHour,
	}
	require.NoError(t, svc.NotifyFreedSlot(context.Background(), cancelled))

	require.Len(t, notif.queued, 2)
	tokens := make(map[string]struct{})
	for _, n := range notif.queued {
		assert.Equal(t, notification.TypeWaitlistSlotFreed, n.Type)
		token, ok := n.Data["claim_token"].(string)
		require.True(t, ok)
		require.NotEmpty(t, token)
		tokens[token] = struct{}{}
	}
	assert.Len(t, tokens, 2, "each entry gets its own token")

	now := time.Now().UTC()
	for _, e := range repo.entries {
		assert.Equal(t, waitlist.StateNotified, e.StateAt(now))
	}
}

func TestNotifyFreedSlotSkipsNonMatching(t *testing.T) {
	repo := newFakeWaitlistRepo()
	other := baseEntry(t)
	other.EmployeeID = "emp-2"
	repo.add(other)

	notif := &fakeNotificationService{}
	svc := newTestService(t, repo, notif)

	cancelled := appointment.Appointment{
		TenantID:   "tenant-1",
		EmployeeID: "emp-1",
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       other.Date,
		StartHour:  other.StartHour,
		EndHour:    other.EndHour,
	}
	require.NoError(t, svc.NotifyFreedSlot(context.Background(), cancelled))
	assert.Empty(t, notif.queued)
}

func TestNotifyFreedSlotContinuesPastFailedEntry(t *testing.T) {
	repo := newFakeWaitlistRepo()
	broken := repo.add(baseEntry(t))
	repo.markNotifiedErrs[broken.ID] = fmt.Errorf("write failed")

	healthy := baseEntry(t)
	healthy.ClientID = "client-2"
	repo.add(healthy)

	notif := &fakeNotificationService{}
	svc := newTestService(t, repo, notif)

	cancelled := appointment.Appointment{
		TenantID:   "tenant-1",
		EmployeeID: "emp-1",
		FacilityID: "fac-1",
		ServiceID:  "svc-1",
		Date:       broken.Date,
		StartHour:  broken.StartHour,
		EndHour:    broken.EndHour,
	}
	require.NoError(t, svc.NotifyFreedSlot(context.Background(), cancelled))

	require.Len(t, notif.queued, 1)
	assert.Equal(t, "client-2", notif.queued[0].RecipientID)
}

func TestListExposesTokenOnlyWhileValid(t *testing.T) {
	repo := newFakeWaitlistRepo()
	repo.add(notifiedEntry(t, "live-token", time.Now().Add(10*time.Minute)))
	expired := notifiedEntry(t, "dead-token", time.Now().Add(-10*time.Minute))
	expired.ClientID = "client-2"
	repo.add(expired)

	svc := newTestService(t, repo, &fakeNotificationService{})
	ctx := tenantContext(t, "tenant-1")

	entries, total, err := svc.List(ctx, waitlist.EntryFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	byClient := make(map[string]waitlist.EntryResponse, len(entries))
	for _, e := range entries {
		byClient[e.ClientID] = e
	}

	live := byClient["client-1"]
	require.NotNil(t, live.ClaimToken)
	assert.Equal(t, "live-token", *live.ClaimToken)
	assert.Equal(t, waitlist.StateNotified, live.State)

	dead := byClient["client-2"]
	assert.Nil(t, dead.ClaimToken)
	assert.Equal(t, waitlist.StateExpired, dead.State)
}
