package appointment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/catalog"
	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/glowlabs/salon-backend-go/internal/domain/facility"
	"github.com/glowlabs/salon-backend-go/internal/domain/shift"
	"github.com/glowlabs/salon-backend-go/internal/domain/waitlist"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
	"github.com/glowlabs/salon-backend-go/internal/repository/postgresql"
	"github.com/glowlabs/salon-backend-go/internal/service/directory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type appointmentServiceImpl struct {
	db              *database.DB
	appointmentRepo appointment.AppointmentRepository
	shiftRepo       shift.ShiftRepository
	employeeRepo    employee.EmployeeRepository
	serviceRepo     catalog.ServiceRepository
	facilityRepo    facility.FacilityRepository
	waitlistService waitlist.WaitlistService
	validator       *SlotValidator
}

func NewAppointmentService(
	db *database.DB,
	appointmentRepo appointment.AppointmentRepository,
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	serviceRepo catalog.ServiceRepository,
	facilityRepo facility.FacilityRepository,
	waitlistService waitlist.WaitlistService,
	policy Policy,
) appointment.AppointmentService {
	return &appointmentServiceImpl{
		db:              db,
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		employeeRepo:    employeeRepo,
		serviceRepo:     serviceRepo,
		facilityRepo:    facilityRepo,
		waitlistService: waitlistService,
		validator:       NewSlotValidator(policy),
	}
}

// newDirectorySession builds a request-scoped read-through view over the
// directory repositories. Lookups within one operation are cached; nothing
// leaks across requests.
func (s *appointmentServiceImpl) newDirectorySession(tenantID string) *directory.Session {
	return directory.NewSession(tenantID, s.employeeRepo, s.serviceRepo, s.facilityRepo)
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

// Create implements appointment.AppointmentService.
func (s *appointmentServiceImpl) Create(ctx context.Context, req appointment.CreateAppointmentRequest) (appointment.AppointmentResponse, error) {
	if err := req.Validate(); err != nil {
		return appointment.AppointmentResponse{}, err
	}

	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	start, _ := timepoint.Parse(req.StartHour)
	end, _ := timepoint.Parse(req.EndHour)

	session := s.newDirectorySession(tenantID)
	if _, err := session.Employee(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.AppointmentResponse{}, employee.ErrEmployeeNotFound
		}
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	svc, err := session.Service(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.AppointmentResponse{}, catalog.ErrServiceNotFound
		}
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to get service: %w", err)
	}
	if !svc.IsActive {
		return appointment.AppointmentResponse{}, catalog.ErrServiceInactive
	}
	if _, err := session.Facility(ctx, req.FacilityID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.AppointmentResponse{}, facility.ErrFacilityNotFound
		}
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to get facility: %w", err)
	}

	shiftWindow, err := s.shiftForDate(ctx, req.EmployeeID, date, tenantID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	existing, err := s.appointmentRepo.ListByEmployeeAndDate(ctx, req.EmployeeID, date, tenantID)
	if err != nil {
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to list existing appointments: %w", err)
	}

	draft := s.validator.Validate(appointment.Draft{
		EmployeeID: req.EmployeeID,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		StartHour:  &start,
		EndHour:    &end,
	}, shiftWindow, existing)
	if !draft.Valid() {
		return appointment.AppointmentResponse{}, draftCodeToError(draft.ErrorCode)
	}

	created, err := s.appointmentRepo.Create(ctx, appointment.Appointment{
		TenantID:   tenantID,
		EmployeeID: req.EmployeeID,
		ClientID:   req.ClientID,
		ServiceID:  req.ServiceID,
		FacilityID: req.FacilityID,
		Date:       date,
		StartHour:  start,
		EndHour:    end,
		Notes:      req.Notes,
	})
	if err != nil {
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to create appointment: %w", err)
	}

	return mapAppointmentToResponse(created), nil
}

// Get implements appointment.AppointmentService.
func (s *appointmentServiceImpl) Get(ctx context.Context, id string) (appointment.AppointmentResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	a, err := s.appointmentRepo.GetByID(ctx, id, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.AppointmentResponse{}, appointment.ErrAppointmentNotFound
		}
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	return mapAppointmentToResponse(a), nil
}

// List implements appointment.AppointmentService.
func (s *appointmentServiceImpl) List(ctx context.Context, filter appointment.AppointmentFilter) ([]appointment.AppointmentResponse, int64, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	appointments, total, err := s.appointmentRepo.ListByFilter(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list appointments: %w", err)
	}

	responses := make([]appointment.AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		responses = append(responses, mapAppointmentToResponse(a))
	}
	return responses, total, nil
}

// Reschedule implements appointment.AppointmentService.
func (s *appointmentServiceImpl) Reschedule(ctx context.Context, req appointment.RescheduleAppointmentRequest) (appointment.AppointmentResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	current, err := s.appointmentRepo.GetByID(ctx, req.ID, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.AppointmentResponse{}, appointment.ErrAppointmentNotFound
		}
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to get appointment: %w", err)
	}
	if current.CancelledAt != nil {
		return appointment.AppointmentResponse{}, appointment.ErrAppointmentCancelled
	}

	if req.EmployeeID != nil {
		current.EmployeeID = *req.EmployeeID
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return appointment.AppointmentResponse{}, appointment.ErrInvalidRequestData
		}
		current.Date = date
	}
	if req.StartHour != nil {
		start, err := timepoint.Parse(*req.StartHour)
		if err != nil {
			return appointment.AppointmentResponse{}, appointment.ErrInvalidRequestData
		}
		current.StartHour = start
	}
	if req.EndHour != nil {
		end, err := timepoint.Parse(*req.EndHour)
		if err != nil {
			return appointment.AppointmentResponse{}, appointment.ErrInvalidRequestData
		}
		current.EndHour = end
	}
	if req.Notes != nil {
		current.Notes = req.Notes
	}
	if current.EndHour.Minutes() <= current.StartHour.Minutes() {
		return appointment.AppointmentResponse{}, appointment.ErrInvalidRange
	}

	shiftWindow, err := s.shiftForDate(ctx, current.EmployeeID, current.Date, tenantID)
	if err != nil {
		return appointment.AppointmentResponse{}, err
	}

	existing, err := s.appointmentRepo.ListByEmployeeAndDate(ctx, current.EmployeeID, current.Date, tenantID)
	if err != nil {
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to list existing appointments: %w", err)
	}
	// the appointment being moved must not conflict with itself
	others := existing[:0:0]
	for _, a := range existing {
		if a.ID != current.ID {
			others = append(others, a)
		}
	}

	start := current.StartHour
	end := current.EndHour
	draft := s.validator.Validate(appointment.Draft{
		EmployeeID: current.EmployeeID,
		ClientID:   current.ClientID,
		ServiceID:  current.ServiceID,
		StartHour:  &start,
		EndHour:    &end,
	}, shiftWindow, others)
	if !draft.Valid() {
		return appointment.AppointmentResponse{}, draftCodeToError(draft.ErrorCode)
	}

	updated, err := s.appointmentRepo.Update(ctx, current)
	if err != nil {
		return appointment.AppointmentResponse{}, fmt.Errorf("failed to update appointment: %w", err)
	}

	return mapAppointmentToResponse(updated), nil
}

// Cancel implements appointment.AppointmentService. The waitlist scan runs
// behind the response; clients observing the waitlist must re-fetch after a
// delay.
func (s *appointmentServiceImpl) Cancel(ctx context.Context, id string) error {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return err
	}

	cancelled, err := s.appointmentRepo.Cancel(ctx, id, tenantID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return appointment.ErrAppointmentNotFound
		}
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	go s.notifyWaitlistOnCancel(ctx, cancelled)

	return nil
}

func (s *appointmentServiceImpl) notifyWaitlistOnCancel(ctx context.Context, cancelled appointment.Appointment) {
	// detach from the request context; the cancel response has already been sent
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := s.waitlistService.NotifyFreedSlot(notifyCtx, cancelled); err != nil {
		slog.Error("waitlist scan after cancel failed",
			"appointment_id", cancelled.ID,
			"employee_id", cancelled.EmployeeID,
			"error", err,
		)
	}
}

// BulkGenerate implements appointment.AppointmentService.
func (s *appointmentServiceImpl) BulkGenerate(ctx context.Context, req appointment.BulkGenerateRequest) (appointment.BulkGenerateResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return appointment.BulkGenerateResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return appointment.BulkGenerateResponse{}, appointment.ErrSlotConfiguration
	}
	startTime, err := timepoint.Parse(req.StartTime)
	if err != nil {
		return appointment.BulkGenerateResponse{}, appointment.ErrSlotConfiguration
	}
	endTime, err := timepoint.Parse(req.EndTime)
	if err != nil {
		return appointment.BulkGenerateResponse{}, appointment.ErrSlotConfiguration
	}

	drafts, err := GenerateDrafts(GenerateParams{
		EmployeeIDs:         req.EmployeeIDs,
		ClientID:            req.ClientID,
		ServiceID:           req.ServiceID,
		StartTime:           startTime,
		EndTime:             endTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
		GapMinutes:          req.GapMinutes,
	})
	if err != nil {
		return appointment.BulkGenerateResponse{}, err
	}

	validated, err := s.validateDrafts(ctx, drafts, date, tenantID)
	if err != nil {
		return appointment.BulkGenerateResponse{}, err
	}

	return mapDraftsToResponse(validated), nil
}

// BulkSubmit implements appointment.AppointmentService.
func (s *appointmentServiceImpl) BulkSubmit(ctx context.Context, req appointment.BulkSubmitRequest) ([]appointment.AppointmentResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appointment.ErrInvalidRequestData
	}

	drafts := make([]appointment.Draft, 0, len(req.Drafts))
	for _, p := range req.Drafts {
		drafts = append(drafts, draftFromPayload(p))
	}

	validated, err := s.validateDrafts(ctx, drafts, date, tenantID)
	if err != nil {
		return nil, err
	}

	toPersist := make([]appointment.Appointment, 0, len(validated))
	for _, d := range validated {
		if !d.Valid() {
			continue
		}
		toPersist = append(toPersist, appointment.Appointment{
			TenantID:   tenantID,
			EmployeeID: d.EmployeeID,
			ClientID:   d.ClientID,
			ServiceID:  d.ServiceID,
			FacilityID: req.FacilityID,
			Date:       date,
			StartHour:  *d.StartHour,
			EndHour:    *d.EndHour,
		})
	}

	var created []appointment.Appointment
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		var txErr error
		created, txErr = s.appointmentRepo.CreateBatch(txCtx, toPersist)
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist bulk appointments: %w", err)
	}

	responses := make([]appointment.AppointmentResponse, 0, len(created))
	for _, a := range created {
		responses = append(responses, mapAppointmentToResponse(a))
	}
	return responses, nil
}

// BuildSchedule implements appointment.AppointmentService.
func (s *appointmentServiceImpl) BuildSchedule(ctx context.Context, facilityID, dateStr string) (appointment.ScheduleResponse, error) {
	tenantID, err := tenantIDFromContext(ctx)
	if err != nil {
		return appointment.ScheduleResponse{}, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return appointment.ScheduleResponse{}, appointment.ErrInvalidRequestData
	}

	shifts, err := s.shiftRepo.ListByFacilityAndDate(ctx, facilityID, date, tenantID)
	if err != nil {
		return appointment.ScheduleResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	session := s.newDirectorySession(tenantID)
	employees := make([]employee.Employee, 0, len(shifts))
	seen := make(map[string]struct{}, len(shifts))
	for _, sh := range shifts {
		if _, ok := seen[sh.EmployeeID]; ok {
			continue
		}
		seen[sh.EmployeeID] = struct{}{}

		e, err := session.Employee(ctx, sh.EmployeeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// shift references a removed employee; the schedule keeps the
				// appointments and the caller sees them without a column
				continue
			}
			return appointment.ScheduleResponse{}, fmt.Errorf("failed to get employee: %w", err)
		}
		if e.IncludeInAppointments {
			employees = append(employees, e)
		}
	}

	appointments, err := s.appointmentRepo.ListByFacilityAndDate(ctx, facilityID, date, tenantID)
	if err != nil {
		return appointment.ScheduleResponse{}, fmt.Errorf("failed to list appointments: %w", err)
	}

	schedule := AssembleSchedule(employees, appointments)

	return mapScheduleToResponse(schedule, facilityID, dateStr), nil
}

func (s *appointmentServiceImpl) shiftForDate(ctx context.Context, employeeID string, date time.Time, tenantID string) (*shift.Shift, error) {
	sh, err := s.shiftRepo.GetByEmployeeAndDate(ctx, employeeID, date, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return &sh, nil
}

// validateDrafts runs every draft through the slot validator against the
// employee's shift and existing bookings for the date. Shift and booking
// lookups are memoized per employee so a bulk run hits the repositories once
// per employee.
func (s *appointmentServiceImpl) validateDrafts(ctx context.Context, drafts []appointment.Draft, date time.Time, tenantID string) ([]appointment.Draft, error) {
	shiftsByEmployee := make(map[string]*shift.Shift)
	bookingsByEmployee := make(map[string][]appointment.Appointment)

	validated := make([]appointment.Draft, 0, len(drafts))
	for _, d := range drafts {
		if d.EmployeeID == "" {
			validated = append(validated, s.validator.Validate(d, nil, nil))
			continue
		}

		shiftWindow, ok := shiftsByEmployee[d.EmployeeID]
		if !ok {
			var err error
			shiftWindow, err = s.shiftForDate(ctx, d.EmployeeID, date, tenantID)
			if err != nil {
				return nil, err
			}
			shiftsByEmployee[d.EmployeeID] = shiftWindow
		}

		existing, ok := bookingsByEmployee[d.EmployeeID]
		if !ok {
			var err error
			existing, err = s.appointmentRepo.ListByEmployeeAndDate(ctx, d.EmployeeID, date, tenantID)
			if err != nil {
				return nil, fmt.Errorf("failed to list existing appointments: %w", err)
			}
			bookingsByEmployee[d.EmployeeID] = existing
		}

		validated = append(validated, s.validator.Validate(d, shiftWindow, existing))
	}

	return validated, nil
}

func draftFromPayload(p appointment.DraftPayload) appointment.Draft {
	d := appointment.Draft{
		EmployeeID: p.EmployeeID,
		ClientID:   p.ClientID,
		ServiceID:  p.ServiceID,
	}
	if start, err := timepoint.Parse(p.StartHour); err == nil {
		d.StartHour = &start
	}
	if end, err := timepoint.Parse(p.EndHour); err == nil {
		d.EndHour = &end
	}
	return d
}

func draftCodeToError(code appointment.ErrorCode) error {
	switch code {
	case appointment.CodeMissingField:
		return appointment.ErrInvalidRequestData
	case appointment.CodeInvalidRange:
		return appointment.ErrInvalidRange
	case appointment.CodeNoShift:
		return appointment.ErrNoShift
	case appointment.CodeOutsideShift:
		return appointment.ErrOutsideShift
	case appointment.CodeSlotAlreadyTaken:
		return appointment.ErrSlotTaken
	default:
		return appointment.ErrInvalidRequestData
	}
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

func mapDraftsToResponse(drafts []appointment.Draft) appointment.BulkGenerateResponse {
	resp := appointment.BulkGenerateResponse{
		Drafts:     make([]appointment.DraftResponse, 0, len(drafts)),
		TotalCount: len(drafts),
	}
	for _, d := range drafts {
		dr := appointment.DraftResponse{
			EmployeeID: d.EmployeeID,
			ClientID:   d.ClientID,
			ServiceID:  d.ServiceID,
			Error:      string(d.ErrorCode),
		}
		if d.StartHour != nil {
			dr.StartHour = d.StartHour.Format()
		}
		if d.EndHour != nil {
			dr.EndHour = d.EndHour.Format()
		}
		if d.Valid() {
			resp.ValidCount++
		}
		resp.Drafts = append(resp.Drafts, dr)
	}
	return resp
}

func mapScheduleToResponse(schedule Schedule, facilityID, date string) appointment.ScheduleResponse {
	resp := appointment.ScheduleResponse{
		Date:         date,
		FacilityID:   facilityID,
		Columns:      make([]appointment.ScheduleColumn, 0, len(schedule.Columns)),
		Appointments: make([]appointment.AppointmentResponse, 0, len(schedule.Appointments)),
	}

	for _, c := range schedule.Columns {
		col := appointment.ScheduleColumn{
			Employee: appointment.EmployeeRef{
				ID:       c.Employee.ID,
				FullName: c.Employee.FullName,
				Color:    c.Employee.Color,
			},
			Appointments: make([]appointment.AppointmentResponse, 0, len(c.Appointments)),
		}
		for _, a := range c.Appointments {
			col.Appointments = append(col.Appointments, mapAppointmentToResponse(a))
		}
		resp.Columns = append(resp.Columns, col)
	}

	for _, a := range schedule.Appointments {
		resp.Appointments = append(resp.Appointments, mapAppointmentToResponse(a))
	}

	return resp
}
