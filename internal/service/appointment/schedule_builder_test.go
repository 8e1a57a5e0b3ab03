package appointment

import (
	"testing"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/glowlabs/salon-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleScheduleGroupsAndOrders(t *testing.T) {
	employees := []employee.Employee{
		{ID: "emp-1", FullName: "Ana"},
		{ID: "emp-2", FullName: "Ben"},
	}
	appointments := []appointment.Appointment{
		{ID: "apt-3", EmployeeID: "emp-2", StartHour: tp(t, "11:00"), EndHour: tp(t, "12:00")},
		{ID: "apt-1", EmployeeID: "emp-1", StartHour: tp(t, "09:00"), EndHour: tp(t, "10:00")},
		{ID: "apt-2", EmployeeID: "emp-1", StartHour: tp(t, "10:00"), EndHour: tp(t, "11:00")},
	}

	schedule := AssembleSchedule(employees, appointments)

	require.Len(t, schedule.Columns, 2)
	assert.Equal(t, "emp-1", schedule.Columns[0].Employee.ID)
	assert.Equal(t, "emp-2", schedule.Columns[1].Employee.ID)

	require.Len(t, schedule.Columns[0].Appointments, 2)
	assert.Equal(t, "apt-1", schedule.Columns[0].Appointments[0].ID)
	assert.Equal(t, "apt-2", schedule.Columns[0].Appointments[1].ID)

	require.Len(t, schedule.Appointments, 3)
	assert.Equal(t, "apt-1", schedule.Appointments[0].ID)
	assert.Equal(t, "apt-2", schedule.Appointments[1].ID)
	assert.Equal(t, "apt-3", schedule.Appointments[2].ID)
}

func TestAssembleScheduleTiesBreakOnID(t *testing.T) {
	appointments := []appointment.Appointment{
		{ID: "apt-b", EmployeeID: "emp-1", StartHour: tp(t, "09:00"), EndHour: tp(t, "10:00")},
		{ID: "apt-a", EmployeeID: "emp-1", StartHour: tp(t, "09:00"), EndHour: tp(t, "09:30")},
	}

	schedule := AssembleSchedule([]employee.Employee{{ID: "emp-1"}}, appointments)

	assert.Equal(t, "apt-a", schedule.Appointments[0].ID)
	assert.Equal(t, "apt-b", schedule.Appointments[1].ID)
}

func TestAssembleScheduleKeepsOrphanAppointments(t *testing.T) {
	appointments := []appointment.Appointment{
		{ID: "apt-1", EmployeeID: "emp-gone", StartHour: tp(t, "09:00"), EndHour: tp(t, "10:00")},
	}

	schedule := AssembleSchedule([]employee.Employee{{ID: "emp-1"}}, appointments)

	// the appointment survives in the flat list without a column
	require.Len(t, schedule.Appointments, 1)

	_, err := schedule.ColumnFor("emp-gone")
	assert.ErrorIs(t, err, appointment.ErrUnknownEmployee)

	col, err := schedule.ColumnFor("emp-1")
	require.NoError(t, err)
	assert.Empty(t, col.Appointments)
}
