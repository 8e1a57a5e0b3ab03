package waitlist

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/notification"
	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/glowlabs/salon-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type waitlistServiceImpl struct {
	db                  *database.DB
	waitlistRepo        waitlist.WaitlistRepository
	appointmentRepo     appointment.AppointmentRepository
	notificationService notification.Service
	claimTTL            time.Duration
}

func NewWaitlistService(
	db *database.DB,
	waitlistRepo waitlist.WaitlistRepository,
	appointmentRepo appointment.AppointmentRepository,
	notificationService notification.Service,
	claimTTL time.Duration,
) waitlist.WaitlistService {
	return &waitlistServiceImpl{
		db:                  db,
		waitlistRepo:        waitlistRepo,
		appointmentRepo:     appointmentRepo,
		notificationService: notificationService,
		claimTTL:            claimTTL,
	}
}

func tenantIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	tenantID, ok := claims["tenant_id"].(string)
	if !ok || tenantID == "" {
		return "", fmt.Errorf("tenant_id claim is missing or invalid")
	}
	return tenantID, nil
}

// Join implements waitlist.WaitlistService.
func (s *waitlistServiceImpl) Join(ctx context.Context, req waitlist.JoinWaitlistRequest) (waitlist.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return waitlist.EntryResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return waitlist.EntryResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	start, _ := timepoint.Parse(req.StartHour)
	end, _ := timepoint.Parse(req.EndHour)

	entry, err := s.waitlistRepo.Create(ctx, waitlist.Entry{
		TenantID:   tenantID,
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		FacilityID: req.FacilityID,
		ServiceID:  req.ServiceID,
		Date:       date,
		StartHour:  start,
		EndHour:    end,
	})
	if err != nil {
		if errors.Is(err, waitlist.ErrDuplicateEntry) {
			return waitlist.EntryResponse{}, waitlist.ErrDuplicateEntry
		}
		return waitlist.EntryResponse{}, fmt.Errorf("failed to create waitlist entry: %w", err)
	}

	return mapEntryToResponse(entry, time.Now().UTC()), nil
}

// List implements waitlist.WaitlistService.
func (s *waitlistServiceImpl) List(ctx context.Context, filter waitlist.EntryFilter) ([]waitlist.EntryResponse, int64, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	entries, total, err := s.waitlistRepo.ListByFilter(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list waitlist entries: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]waitlist.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, mapEntryToResponse(e, now))
	}
	return responses, total, nil
}

// Remove implements waitlist.WaitlistService.
func (s *waitlistServiceImpl) Remove(ctx context.Context, entryID, clientID string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	entry, err := s.waitlistRepo.GetByID(ctx, entryID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return waitlist.ErrEntryNotFound
		}
		return fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	if entry.ClientID != clientID {
		return waitlist.ErrNotOwner
	}

	if err := s.waitlistRepo.Delete(ctx, entryID, tenantID); err != nil {
		return fmt.Errorf("failed to delete waitlist entry: %w", err)
	}
	return nil
}

// Claim implements waitlist.WaitlistService. The winner is decided by a
// conditional update inside a transaction that also inserts the appointment
// and revokes competing tokens, so concurrent claims for the same freed slot
// resolve to exactly one appointment.
func (s *waitlistServiceImpl) Claim(ctx context.Context, req waitlist.ClaimRequest) (appointment.AppointmentResponse, error) {
	if err := req.Validate(); err != nil {
		return appointment.AppointmentResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	now := time.Now().UTC()

	entry, err := s.waitlistRepo.GetByToken(ctx, req.Token, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.AppointmentResponse{}, waitlist.ErrInvalidToken
		}
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to look up claim token: %w", err)
	}

	// a token only works for the client it was issued to; a mismatch is
	// indistinguishable from an unknown token on purpose
	if entry.ClientID != req.ClientID {
		return appointment.AppointmentResponse{}, waitlist.ErrInvalidToken
	}

	switch entry.StateAt(now) {
	case waitlist.StateNotified:
		// claimable, proceed
	case waitlist.StateExpired:
		return appointment.AppointmentResponse{}, waitlist.ErrTokenExpired
	default:
		// claimed by this entry already, or the token was revoked because a
		// sibling won the slot
		return appointment.AppointmentResponse{}, waitlist.ErrSlotAlreadyTaken
	}

	var created appointment.Appointment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		won, txErr := s.waitlistRepo.ClaimEntry(txCtx, req.Token, tenantID, now)
		if txErr != nil {
			if errors.Is(txErr, pgx.ErrNoRows) {
				return waitlist.ErrSlotAlreadyTaken
			}
			return fmt.Errorf("failed to claim entry: %w", txErr)
		}

		created, txErr = s.appointmentRepo.Create(txCtx, appointment.Appointment{
			TenantID:   tenantID,
			EmployeeID: won.EmployeeID,
			ClientID:   won.ClientID,
			ServiceID:  won.ServiceID,
			FacilityID: won.FacilityID,
			Date:       won.Date,
			StartHour:  won.StartHour,
			EndHour:    won.EndHour,
		})
		if txErr != nil {
			return fmt.Errorf("failed to create appointment for claim: %w", txErr)
		}

		if _, txErr = s.waitlistRepo.InvalidateSiblings(txCtx, won, now); txErr != nil {
			return fmt.Errorf("failed to invalidate sibling tokens: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	go s.notifyClaimWon(ctx, entry, created)

	return mapAppointmentToResponse(created), nil
}

// NotifyFreedSlot implements waitlist.WaitlistService.
func (s *waitlistServiceImpl) NotifyFreedSlot(ctx context.Context, a appointment.Appointment) error {
	waiting, err := s.waitlistRepo.ListWaitingForSlot(
		ctx, a.TenantID, a.EmployeeID, a.FacilityID, a.ServiceID, a.Date, a.StartHour, a.EndHour,
	)
	if err != nil {
		return fmt.Errorf("failed to list waiting entries: %w", err)
	}
	if len(waiting) == 0 {
		return nil
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.claimTTL)

	notifications := make([]notification.CreateNotificationRequest, 0, len(waiting))
	for _, entry := range waiting {
		token, err := generateClaimToken()
		if err != nil {
			return fmt.Errorf("failed to generate claim token: %w", err)
		}

		notified, err := s.waitlistRepo.MarkNotified(ctx, entry.ID, token, now, expiresAt)
		if err != nil {
			slog.Error("failed to mark waitlist entry notified",
				"entry_id", entry.ID,
				"error", err,
			)
			continue
		}

		notifications = append(notifications, notification.CreateNotificationRequest{
			TenantID:    notified.TenantID,
			RecipientID: notified.ClientID,
			Type:        notification.TypeWaitlistSlotFreed,
			Title:       "A slot you were waiting for is available",
			Message: fmt.Sprintf("The %s to %s slot on %s has opened up. Claim it before %s.",
				notified.StartHour.Format(), notified.EndHour.Format(),
				notified.Date.Format("2006-01-02"), expiresAt.Format(time.RFC3339)),
			Data: map[string]interface{}{
				"claim_token":      token,
				"claim_expires_at": expiresAt.Format(time.RFC3339),
				"employee_id":      notified.EmployeeID,
				"facility_id":      notified.FacilityID,
				"service_id":       notified.ServiceID,
				"date":             notified.Date.Format("2006-01-02"),
				"start_hour":       notified.StartHour.Format(),
				"end_hour":         notified.EndHour.Format(),
			},
		})
	}

	if len(notifications) == 0 {
		return nil
	}
	if err := s.notificationService.QueueBulkNotification(ctx, notifications); err != nil {
		return fmt.Errorf("failed to queue waitlist notifications: %w", err)
	}
	return nil
}

func (s *waitlistServiceImpl) notifyClaimWon(ctx context.Context, entry waitlist.Entry, created appointment.Appointment) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	err := s.notificationService.QueueNotification(notifyCtx, notification.CreateNotificationRequest{
		TenantID:    entry.TenantID,
		RecipientID: entry.ClientID,
		Type:        notification.TypeWaitlistClaimWon,
		Title:       "Your claim succeeded",
		Message: fmt.Sprintf("You are booked for %s to %s on %s.",
			created.StartHour.Format(), created.EndHour.Format(), created.Date.Format("2006-01-02")),
		Data: map[string]interface{}{
			"appointment_id": created.ID,
		},
	})
	if err != nil {
		slog.Error("failed to queue claim confirmation",
			"entry_id", entry.ID,
			"error", err,
		)
	}
}

func generateClaimToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func mapEntryToResponse(e waitlist.Entry, now time.Time) waitlist.EntryResponse {
	resp := waitlist.EntryResponse{
		ID:         e.ID,
		TenantID:   e.TenantID,
		ClientID:   e.ClientID,
		EmployeeID: e.EmployeeID,
		FacilityID: e.FacilityID,
		ServiceID:  e.ServiceID,
		Date:       e.Date.Format("2006-01-02"),
		StartHour:  e.StartHour.Format(),
		EndHour:    e.EndHour.Format(),
		State:      e.StateAt(now),
		IsNotified: e.IsNotified,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
	if e.TokenValidAt(now) {
		resp.ClaimToken = e.ClaimToken
		if e.ClaimExpiresAt != nil {
			expires := e.ClaimExpiresAt.Format(time.RFC3339)
			resp.ClaimExpiresAt = &expires
		}
	}
	return resp
}

func mapAppointmentToResponse(a appointment.Appointment) appointment.AppointmentResponse {
	return appointment.AppointmentResponse{
		ID:         a.ID,
		TenantID:   a.TenantID,
		EmployeeID: a.EmployeeID,
		ClientID:   a.ClientID,
		ServiceID:  a.ServiceID,
		FacilityID: a.FacilityID,
		Date:       a.Date.Format("2006-01-02"),
		StartHour:  a.StartHour.Format(),
		EndHour:    a.EndHour.Format(),
		Notes:      a.Notes,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}
