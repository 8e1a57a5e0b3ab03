package appointment

import (
	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/pkg/timepoint"
)

// GenerateParams describes one bulk expansion: the same client and service
// across a set of employees over a shared time range.
type GenerateParams struct {
	EmployeeIDs         []string
	ClientID            string
	ServiceID           string
	StartTime           timepoint.TimePoint
	EndTime             timepoint.TimePoint
	SlotDurationMinutes int
	GapMinutes          int
}

// GenerateDrafts expands the params into candidate drafts, employees in
// request order, slot index ascending. The expansion is pure and
// deterministic: identical params always yield the identical sequence.
// Degenerate configuration short-circuits with ErrSlotConfiguration instead
// of silently emitting nothing.
func GenerateDrafts(p GenerateParams) ([]appointment.Draft, error) {
	if len(p.EmployeeIDs) == 0 ||
		p.ServiceID == "" ||
		p.EndTime.Minutes() <= p.StartTime.Minutes() ||
		p.SlotDurationMinutes <= 0 ||
		p.GapMinutes < 0 {
		return nil, appointment.ErrSlotConfiguration
	}

	totalMinutes := timepoint.MinutesBetween(p.StartTime, p.EndTime)
	step := p.SlotDurationMinutes + p.GapMinutes
	slotsPerEmployee := totalMinutes / step

	drafts := make([]appointment.Draft, 0, slotsPerEmployee*len(p.EmployeeIDs))
	for _, employeeID := range p.EmployeeIDs {
		for i := 0; i < slotsPerEmployee; i++ {
			start := p.StartTime.AddMinutes(i * step)
			end := start.AddMinutes(p.SlotDurationMinutes)
			drafts = append(drafts, appointment.Draft{
				EmployeeID: employeeID,
				ClientID:   p.ClientID,
				ServiceID:  p.ServiceID,
				StartHour:  &start,
				EndHour:    &end,
			})
		}
	}

	return drafts, nil
}
