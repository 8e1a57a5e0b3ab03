package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/shift"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ShiftService interface {
	Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error)
	Get(ctx context.Context, id string) (shift.ShiftResponse, error)
	ListByEmployee(ctx context.Context, employeeID, from, to string) ([]shift.ShiftResponse, error)
	ListByFacilityAndDate(ctx context.Context, facilityID, date string) ([]shift.ShiftResponse, error)
	Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}

type shiftServiceImpl struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) ShiftService {
	return &shiftServiceImpl{shiftRepo: shiftRepo}
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

func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	start, _ := timepoint.Parse(req.StartHour)
	end, _ := timepoint.Parse(req.EndHour)

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,
		FacilityID: req.FacilityID,
		Date:       date,
		StartHour:  start,
		EndHour:    end,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ShiftResponse{}, shift.ErrShiftExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return mapShiftToResponse(created), nil
}

func (s *shiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	sh, err := s.shiftRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return mapShiftToResponse(sh), nil
}

func (s *shiftServiceImpl) ListByEmployee(ctx context.Context, employeeID, from, to string) ([]shift.ShiftResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("from must be YYYY-MM-DD: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("to must be YYYY-MM-DD: %w", err)
	}

	shifts, err := s.shiftRepo.ListByEmployee(ctx, employeeID, fromDate, toDate, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return mapShiftsToResponse(shifts), nil
}

func (s *shiftServiceImpl) ListByFacilityAndDate(ctx context.Context, facilityID, dateStr string) ([]shift.ShiftResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	shifts, err := s.shiftRepo.ListByFacilityAndDate(ctx, facilityID, date, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return mapShiftsToResponse(shifts), nil
}

func (s *shiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	req.TenantID = tenantID

	current, err := s.shiftRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	start := current.StartHour
	end := current.EndHour
	if req.StartHour != nil {
		if start, err = timepoint.Parse(*req.StartHour); err != nil {
			return shift.ShiftResponse{}, err
		}
	}
	if req.EndHour != nil {
		if end, err = timepoint.Parse(*req.EndHour); err != nil {
			return shift.ShiftResponse{}, err
		}
	}
	if start.Minutes() == end.Minutes() {
		return shift.ShiftResponse{}, shift.ErrInvalidShiftSpan
	}

	updated, err := s.shiftRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return mapShiftToResponse(updated), nil
}

func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.shiftRepo.Delete(ctx, id, tenantID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func mapShiftToResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:         sh.ID,
		TenantID:   sh.TenantID,
		EmployeeID: sh.EmployeeID,
		FacilityID: sh.FacilityID,
		Date:       sh.Date.Format("2006-01-02"),
		StartHour:  sh.StartHour.Format(),
		EndHour:    sh.EndHour.Format(),
		Overnight:  sh.IsOvernight(),
		CreatedAt:  sh.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  sh.UpdatedAt.Format(time.RFC3339),
	}
}

func mapShiftsToResponse(shifts []shift.Shift) []shift.ShiftResponse {
	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, mapShiftToResponse(sh))
	}
	return responses
}
