package appointment

import "context"

type AppointmentService interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (AppointmentResponse, error)
	Get(ctx context.Context, id string) (AppointmentResponse, error)
	List(ctx context.Context, filter AppointmentFilter) ([]AppointmentResponse, int64, error)
	Reschedule(ctx context.Context, req RescheduleAppointmentRequest) (AppointmentResponse, error)

	// Cancel soft-deletes the appointment and triggers the waitlist scan
	// asynchronously; the waitlist effects may lag the cancel response.
	Cancel(ctx context.Context, id string) error

	// BulkGenerate expands a time range into draft appointments, validating
	// each against shifts and existing bookings. No persistence happens.
	BulkGenerate(ctx context.Context, req BulkGenerateRequest) (BulkGenerateResponse, error)

	// BulkSubmit persists the submitted drafts, re-running validation and
	// dropping drafts that fail it.
	BulkSubmit(ctx context.Context, req BulkSubmitRequest) ([]AppointmentResponse, error)

	// BuildSchedule assembles the per-employee appointment columns for one
	// facility and date.
	BuildSchedule(ctx context.Context, facilityID, date string) (ScheduleResponse, error)
}
