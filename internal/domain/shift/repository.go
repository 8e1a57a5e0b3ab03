package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id, tenantID string) (Shift, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, tenantID string) (Shift, error)
	ListByFacilityAndDate(ctx context.Context, facilityID string, date time.Time, tenantID string) ([]Shift, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time, tenantID string) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) (Shift, error)
	Delete(ctx context.Context, id, tenantID string) error
}
