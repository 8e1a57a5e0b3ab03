package shift

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	TenantID   string `json:"-"`
	EmployeeID string `json:"employee_id"`
	FacilityID string `json:"facility_id"`
	Date       string `json:"date"`
	StartHour  string `json:"start_hour"`
	EndHour    string `json:"end_hour"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.FacilityID) {
		errs = append(errs, validator.ValidationError{
			Field:   "facility_id",
			Message: "facility_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}
	start, startOK := validator.IsValidClock(r.StartHour)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_hour",
			Message: "start_hour must be a valid clock value",
		})
	}
	end, endOK := validator.IsValidClock(r.EndHour)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_hour",
			Message: "end_hour must be a valid clock value",
		})
	}
	// equal start/end would be a zero-length window; overnight (start > end) is allowed
	if startOK && endOK && start.Minutes() == end.Minutes() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_hour",
			Message: "end_hour must differ from start_hour",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string  `json:"-"`
	TenantID  string  `json:"-"`
	StartHour *string `json:"start_hour"`
	EndHour   *string `json:"end_hour"`
}

type ShiftResponse struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenant_id"`
	EmployeeID string `json:"employee_id"`
	FacilityID string `json:"facility_id"`
	Date       string `json:"date"`
	StartHour  string `json:"start_hour"`
	EndHour    string `json:"end_hour"`
	Overnight  bool   `json:"overnight"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
