package waitlist

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type JoinWaitlistRequest struct {
	TenantID   string `json:"-"`
	ClientID   string `json:"client_id"`
	EmployeeID string `json:"employee_id"`
	FacilityID string `json:"facility_id"`
	ServiceID  string `json:"service_id"`
	Date       string `json:"date"`
	StartHour  string `json:"start_hour"`
	EndHour    string `json:"end_hour"`
}

func (r *JoinWaitlistRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"client_id":   r.ClientID,
		"employee_id": r.EmployeeID,
		"facility_id": r.FacilityID,
		"service_id":  r.ServiceID,
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

type ClaimRequest struct {
	TenantID string `json:"-"`
	ClientID string `json:"client_id"`
	Token    string `json:"token"`
}

func (r *ClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryFilter struct {
	ClientID   *string
	FacilityID *string
	Date       *string
	Page       int
	Limit      int
}

type EntryResponse struct {
	ID             string  `json:"id"`
	TenantID       string  `json:"tenant_id"`
	ClientID       string  `json:"client_id"`
	EmployeeID     string  `json:"employee_id"`
	FacilityID     string  `json:"facility_id"`
	ServiceID      string  `json:"service_id"`
	Date           string  `json:"date"`
	StartHour      string  `json:"start_hour"`
	EndHour        string  `json:"end_hour"`
	State          State   `json:"state"`
	IsNotified     bool    `json:"is_notified"`
	ClaimToken     *string `json:"claim_token,omitempty"`
	ClaimExpiresAt *string `json:"claim_expires_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
