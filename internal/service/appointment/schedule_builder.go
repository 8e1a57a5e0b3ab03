package appointment

import (
	"sort"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
)

// Schedule is the assembled day view for one facility: every bookable
// employee on shift as a column, plus the raw appointment sequence.
//
// Appointments referencing an employee missing from the column set are never
// dropped: they stay in Appointments, and ColumnFor answers
// ErrUnknownEmployee for them instead of panicking on a nil lookup.
type Schedule struct {
	Columns      []Column
	Appointments []appointment.Appointment
}

// Column is one employee's ordered appointment sequence.
type Column struct {
	Employee     employee.Employee
	Appointments []appointment.Appointment
}

// AssembleSchedule cross-references employees and appointments. Appointments
// are ordered by start hour ascending with ties broken by id, so repeated
// assembly of the same inputs is byte-for-byte identical. Employee column
// order follows the input employee order.
func AssembleSchedule(employees []employee.Employee, appointments []appointment.Appointment) Schedule {
	sorted := make([]appointment.Appointment, len(appointments))
	copy(sorted, appointments)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartHour.Minutes() != sorted[j].StartHour.Minutes() {
			return sorted[i].StartHour.Minutes() < sorted[j].StartHour.Minutes()
		}
		return sorted[i].ID < sorted[j].ID
	})

	byEmployee := make(map[string][]appointment.Appointment, len(employees))
	for _, a := range sorted {
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	columns := make([]Column, 0, len(employees))
	for _, e := range employees {
		columns = append(columns, Column{
			Employee:     e,
			Appointments: byEmployee[e.ID],
		})
	}

	return Schedule{
		Columns:      columns,
		Appointments: sorted,
	}
}

// ColumnFor resolves the column for an appointment's employee.
// ErrUnknownEmployee when the appointment references an employee absent from
// the schedule's column set.
func (s Schedule) ColumnFor(employeeID string) (Column, error) {
	for _, c := range s.Columns {
		if c.Employee.ID == employeeID {
			return c, nil
		}
	}
	return Column{}, appointment.ErrUnknownEmployee
}
