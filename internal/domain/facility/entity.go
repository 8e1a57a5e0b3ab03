package facility

import (
	"time"

	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

type Facility struct {
	ID          string
	TenantID    string
	Name        string
	Address     *string
	OpeningHour timepoint.TimePoint
	ClosingHour timepoint.TimePoint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}
