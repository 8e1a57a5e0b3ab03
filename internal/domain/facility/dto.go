package facility

import (
	"github.com/glowlabs/salon-backend-go/internal/pkg/validator"
)

type CreateFacilityRequest struct {
	TenantID    string  `json:"-"`
	Name        string  `json:"name"`
	Address     *string `json:"address"`
	OpeningHour string  `json:"opening_hour"`
	ClosingHour string  `json:"closing_hour"`
}

func (r *CreateFacilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if _, ok := validator.IsValidClock(r.OpeningHour); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "opening_hour",
			Message: "opening_hour must be a valid clock value",
		})
	}
	if _, ok := validator.IsValidClock(r.ClosingHour); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "closing_hour",
			Message: "closing_hour must be a valid clock value",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateFacilityRequest struct {
	ID          string  `json:"-"`
	TenantID    string  `json:"-"`
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	OpeningHour *string `json:"opening_hour"`
	ClosingHour *string `json:"closing_hour"`
}

type FacilityResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	OpeningHour string  `json:"opening_hour"`
	ClosingHour string  `json:"closing_hour"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
