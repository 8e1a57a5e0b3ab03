package client

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	TenantID    string  `json:"-"`
	FullName    string  `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Notes       *string `json:"notes"`
}

func (r *CreateClientRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClientRequest struct {
	ID          string  `json:"-"`
	TenantID    string  `json:"-"`
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	Notes       *string `json:"notes"`
}

type ClientFilter struct {
	Search string
	Page   int
	Limit  int
}

type ClientResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	FullName    string  `json:"full_name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
