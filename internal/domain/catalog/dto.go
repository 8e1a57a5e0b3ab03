package catalog

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateServiceRequest struct {
	TenantID        string           `json:"-"`
	Name            string           `json:"name"`
	Description     *string          `json:"description"`
	DurationMinutes *int             `json:"duration_minutes"`
	Price           *decimal.Decimal `json:"price"`
	Currency        string           `json:"currency"`
}

func (r *CreateServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.DurationMinutes == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes is required",
		})
	}
	if r.DurationMinutes != nil && *r.DurationMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "duration_minutes",
			Message: "duration_minutes must be a positive number",
		})
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateServiceRequest struct {
	ID              string           `json:"-"`
	TenantID        string           `json:"-"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	DurationMinutes *int             `json:"duration_minutes"`
	Price           *decimal.Decimal `json:"price"`
	Currency        *string          `json:"currency"`
	IsActive        *bool            `json:"is_active"`
}

type ServiceFilter struct {
	ActiveOnly bool
	Page       int
	Limit      int
}

type ServiceResponse struct {
	ID              string          `json:"id"`
	TenantID        string          `json:"tenant_id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}
