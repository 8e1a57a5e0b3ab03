package appointment

import (
	"context"
	"time"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	CreateBatch(ctx context.Context, appointments []Appointment) ([]Appointment, error)
	GetByID(ctx context.Context, id, tenantID string) (Appointment, error)
	ListByFilter(ctx context.Context, tenantID string, filter AppointmentFilter) ([]Appointment, int64, error)
	ListByFacilityAndDate(ctx context.Context, facilityID string, date time.Time, tenantID string) ([]Appointment, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, tenantID string) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) (Appointment, error)
	Cancel(ctx context.Context, id, tenantID string, at time.Time) (Appointment, error)
}
