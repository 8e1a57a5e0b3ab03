package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering: a haircut, a consultation, a treatment.
// DurationMinutes drives slot generation.
type Service struct {
	ID              string
	TenantID        string
	Name            string
	Description     *string
	DurationMinutes int
	Price           decimal.Decimal
	Currency        string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}
