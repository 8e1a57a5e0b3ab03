package appointment

import (
	"testing"

	"github.com/glowlabs/salon-backend-go/internal/domain/appointment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDraftsFullDay(t *testing.T) {
	drafts, err := GenerateDrafts(GenerateParams{
		EmployeeIDs:         []string{"emp-1"},
		ClientID:            "client-1",
		ServiceID:           "svc-1",
		StartTime:           tp(t, "09:00"),
		EndTime:             tp(t, "17:00"),
		SlotDurationMinutes: 60,
		GapMinutes:          0,
	})
	require.NoError(t, err)
	require.Len(t, drafts, 8)

	assert.Equal(t, "09:00", drafts[0].StartHour.Format())
	assert.Equal(t, "10:00", drafts[0].EndHour.Format())
	assert.Equal(t, "16:00", drafts[7].StartHour.Format())
	assert.Equal(t, "17:00", drafts[7].EndHour.Format())
}

func TestGenerateDraftsGapFloorsSlotCount(t *testing.T) {
	// 60 minutes of range, 45-minute stride: only one slot fits per employee.
	drafts, err := GenerateDrafts(GenerateParams{
		EmployeeIDs:         []string{"emp-1", "emp-2"},
		ClientID:            "client-1",
		ServiceID:           "svc-1",
		StartTime:           tp(t, "09:00"),
		EndTime:             tp(t, "10:00"),
		SlotDurationMinutes: 30,
		GapMinutes:          15,
	})
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	for i, d := range drafts {
		assert.Equal(t, "09:00", d.StartHour.Format(), "draft %d", i)
		assert.Equal(t, "09:30", d.EndHour.Format(), "draft %d", i)
	}
	assert.Equal(t, "emp-1", drafts[0].EmployeeID)
	assert.Equal(t, "emp-2", drafts[1].EmployeeID)
}

func TestGenerateDraftsOrderIsDeterministic(t *testing.T) {
	params := GenerateParams{
		EmployeeIDs:         []string{"emp-2", "emp-1"},
		ClientID:            "client-1",
		ServiceID:           "svc-1",
		StartTime:           tp(t, "09:00"),
		EndTime:             tp(t, "11:00"),
		SlotDurationMinutes: 30,
		GapMinutes:          0,
	}

	first, err := GenerateDrafts(params)
	require.NoError(t, err)
	second, err := GenerateDrafts(params)
	require.NoError(t, err)

	// employees in request order, slot index ascending
	require.Len(t, first, 8)
	assert.Equal(t, "emp-2", first[0].EmployeeID)
	assert.Equal(t, "emp-2", first[3].EmployeeID)
	assert.Equal(t, "emp-1", first[4].EmployeeID)
	assert.Equal(t, first, second)
}

func TestGenerateDraftsConfigurationErrors(t *testing.T) {
	base := GenerateParams{
		EmployeeIDs:         []string{"emp-1"},
		ClientID:            "client-1",
		ServiceID:           "svc-1",
		StartTime:           tp(t, "09:00"),
		EndTime:             tp(t, "17:00"),
		SlotDurationMinutes: 60,
	}

	cases := map[string]func(p GenerateParams) GenerateParams{
		"no employees": func(p GenerateParams) GenerateParams {
			p.EmployeeIDs = nil
			return p
		},
		"missing service": func(p GenerateParams) GenerateParams {
			p.ServiceID = ""
			return p
		},
		"inverted range": func(p GenerateParams) GenerateParams {
			p.StartTime, p.EndTime = p.EndTime, p.StartTime
			return p
		},
		"zero duration": func(p GenerateParams) GenerateParams {
			p.SlotDurationMinutes = 0
			return p
		},
		"negative gap": func(p GenerateParams) GenerateParams {
			p.GapMinutes = -1
			return p
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := GenerateDrafts(mutate(base))
			assert.ErrorIs(t, err, appointment.ErrSlotConfiguration)
		})
	}
}
