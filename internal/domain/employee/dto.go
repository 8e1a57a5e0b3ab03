package employee

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	TenantID              string  `json:"-"`
	FacilityID            *string `json:"facility_id"`
	FullName              string  `json:"full_name"`
	Email                 *string `json:"email"`
	PhoneNumber           *string `json:"phone_number"`
	Color                 *string `json:"color"`
	IncludeInAppointments *bool   `json:"include_in_appointments"`
	HireDate              *string `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number format is invalid",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                    string  `json:"-"`
	TenantID              string  `json:"-"`
	FacilityID            *string `json:"facility_id"`
	FullName              *string `json:"full_name"`
	Email                 *string `json:"email"`
	PhoneNumber           *string `json:"phone_number"`
	Color                 *string `json:"color"`
	IncludeInAppointments *bool   `json:"include_in_appointments"`
}

type EmployeeFilter struct {
	FacilityID        *string
	BookableOnly      bool // only employees flagged IncludeInAppointments
	Page              int
	Limit             int
	IncludeSoftDelete bool
}

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	TenantID              string  `json:"tenant_id"`
	FacilityID            *string `json:"facility_id,omitempty"`
	FullName              string  `json:"full_name"`
	Email                 *string `json:"email,omitempty"`
	PhoneNumber           *string `json:"phone_number,omitempty"`
	Color                 *string `json:"color,omitempty"`
	IncludeInAppointments bool    `json:"include_in_appointments"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             string  `json:"updated_at"`
}
