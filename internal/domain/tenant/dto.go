package tenant

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type CreateTenantRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Timezone string `json:"timezone"`
}

func (r *CreateTenantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTenantRequest struct {
	ID       string  `json:"-"`
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
	LogoURL  *string `json:"logo_url"`
}

type TenantResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Username  string  `json:"username"`
	Timezone  string  `json:"timezone"`
	LogoURL   *string `json:"logo_url,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
