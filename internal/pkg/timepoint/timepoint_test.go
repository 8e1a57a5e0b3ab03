package timepoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected TimePoint
	}{
		{"14", 14},
		{"14:30", 14.5},
		{"14h30", 14.5},
		{"14.30", 14.5},
		{"09:15", 9.25},
		{"0", 0},
		{"00:00", 0},
		{"23:59", TimePoint(float64(23*60+59) / 60.0)},
		{"24:00", 24},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Minutes(), got.Minutes())
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "25", "-1", "12:60", "12:-5", "ab", "12:xx", "12h75", "24:30", "24:01", "24h15"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrInvalidTime)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "14:30", TimePoint(14.5).Format())
	assert.Equal(t, "09:00", TimePoint(9).Format())
	assert.Equal(t, "00:00", TimePoint(0).Format())
	assert.Equal(t, "09:45", TimePoint(9.75).Format())
	// rounding of a value that is not exactly representable in binary
	assert.Equal(t, "10:20", FromMinutes(620).Format())
}

func TestAddMinutes(t *testing.T) {
	t.Parallel()

	start, err := Parse("09:00")
	require.NoError(t, err)

	assert.Equal(t, "09:45", start.AddMinutes(45).Format())
	assert.Equal(t, "10:30", start.AddMinutes(90).Format())

	// many small additions must not accumulate float drift
	tp := start
	for i := 0; i < 600; i++ {
		tp = tp.AddMinutes(1)
	}
	assert.Equal(t, start.Minutes()+600, tp.Minutes())
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	assert.True(t, Overlaps(9, 10, 9.5, 10.5))
	assert.True(t, Overlaps(9, 10, 9, 10))
	// half-open ranges: touching ends do not overlap
	assert.False(t, Overlaps(9, 10, 10, 11))
	assert.False(t, Overlaps(9, 10, 8, 9))
	assert.False(t, Overlaps(9, 10, 11, 12))
}
