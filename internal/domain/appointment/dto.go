package appointment

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type CreateAppointmentRequest struct {
	TenantID   string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	ClientID   string  `json:"client_id"`
	ServiceID  string  `json:"service_id"`
	FacilityID string  `json:"facility_id"`
	Date       string  `json:"date"`
	StartHour  string  `json:"start_hour"`
	EndHour    string  `json:"end_hour"`
	Notes      *string `json:"notes"`
}

func (r *CreateAppointmentRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"employee_id": r.EmployeeID,
		"client_id":   r.ClientID,
		"service_id":  r.ServiceID,
		"facility_id": r.FacilityID,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
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
	if startOK && endOK && end.Minutes() <= start.Minutes() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_hour",
			Message: "end_hour must be after start_hour",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RescheduleAppointmentRequest struct {
	ID         string  `json:"-"`
	TenantID   string  `json:"-"`
	EmployeeID *string `json:"employee_id"`
	Date       *string `json:"date"`
	StartHour  *string `json:"start_hour"`
	EndHour    *string `json:"end_hour"`
	Notes      *string `json:"notes"`
}

type BulkGenerateRequest struct {
	TenantID            string   `json:"-"`
	EmployeeIDs         []string `json:"employee_ids"`
	ClientID            string   `json:"client_id"`
	ServiceID           string   `json:"service_id"`
	FacilityID          string   `json:"facility_id"`
	Date                string   `json:"date"`
	StartTime           string   `json:"start_time"`
	EndTime             string   `json:"end_time"`
	SlotDurationMinutes int      `json:"slot_duration_minutes"`
	GapMinutes          int      `json:"gap_minutes"`
}

type BulkSubmitRequest struct {
	TenantID   string         `json:"-"`
	FacilityID string         `json:"facility_id"`
	Date       string         `json:"date"`
	Drafts     []DraftPayload `json:"drafts"`
}

// DraftPayload is the wire form of a reviewed draft coming back for
// submission.
type DraftPayload struct {
	EmployeeID string `json:"employee_id"`
	ClientID   string `json:"client_id"`
	ServiceID  string `json:"service_id"`
	StartHour  string `json:"start_hour"`
	EndHour    string `json:"end_hour"`
}

type AppointmentFilter struct {
	FacilityID *string
	ClientID   *string
	EmployeeID *string
	Date       *string
	Page       int
	Limit      int
}

type AppointmentResponse struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenant_id"`
	EmployeeID string  `json:"employee_id"`
	ClientID   string  `json:"client_id"`
	ServiceID  string  `json:"service_id"`
	FacilityID string  `json:"facility_id"`
	Date       string  `json:"date"`
	StartHour  string  `json:"start_hour"`
	EndHour    string  `json:"end_hour"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type DraftResponse struct {
	EmployeeID string `json:"employee_id"`
	ClientID   string `json:"client_id"`
	ServiceID  string `json:"service_id"`
	StartHour  string `json:"start_hour"`
	EndHour    string `json:"end_hour"`
	Error      string `json:"error,omitempty"`
}

type BulkGenerateResponse struct {
	Drafts     []DraftResponse `json:"drafts"`
	ValidCount int             `json:"valid_count"`
	TotalCount int             `json:"total_count"`
}

// ScheduleColumn is one employee's ordered appointment sequence in a
// schedule view.
type ScheduleColumn struct {
	Employee     EmployeeRef           `json:"employee"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type EmployeeRef struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Color    *string `json:"color,omitempty"`
}

type ScheduleResponse struct {
	Date         string                `json:"date"`
	FacilityID   string                `json:"facility_id"`
	Columns      []ScheduleColumn      `json:"columns"`
	Appointments []AppointmentResponse `json:"appointments"`
}
