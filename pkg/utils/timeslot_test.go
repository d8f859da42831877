package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSlot_Points(t *testing.T) {
	slot, err := ParseTimeSlot("10:00")
	require.NoError(t, err)
	assert.Equal(t, SlotPoint, slot.Kind)
	assert.Equal(t, 600, slot.Start)
	assert.Equal(t, "10:00", slot.String())

	slot, err = ParseTimeSlot("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, slot.Start)

	slot, err = ParseTimeSlot("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, slot.Start)
}

func TestParseTimeSlot_Ranges(t *testing.T) {
	slot, err := ParseTimeSlot("09:30-10:15")
	require.NoError(t, err)
	assert.Equal(t, SlotRange, slot.Kind)
	assert.Equal(t, 9*60+30, slot.Start)
	assert.Equal(t, 10*60+15, slot.End)
	assert.Equal(t, "09:30-10:15", slot.String())

	// Surrounding whitespace is tolerated, the canonical form is not.
	slot, err = ParseTimeSlot(" 14:00-16:30 ")
	require.NoError(t, err)
	assert.Equal(t, "14:00-16:30", slot.String())
}

func TestParseTimeSlot_Rejections(t *testing.T) {
	tests := []struct {
		input   string
		wantSub string
	}{
		{"25:00", "hour 25 out of range"},
		{"9:60", "expected HH:MM"},
		{"09:60", "minute 60 out of range"},
		{"10:00-09:00", "start must be before end"},
		{"10:00-10:00", "start must be before end"},
		{"10:00-25:00", "range end"},
		{"24:00-25:00", "range start"},
		{"", "empty"},
		{"mediodia", "expected HH:MM"},
		{"10.30", "expected HH:MM"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseTimeSlot(tt.input)
			require.ErrorIs(t, err, ErrInvalidTimeFormat)
			assert.Contains(t, err.Error(), tt.wantSub)
		})
	}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	parse := func(s string) TimeSlot {
		slot, err := ParseTimeSlot(s)
		require.NoError(t, err)
		return slot
	}

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"points under 30min apart", "10:00", "10:20", true},
		{"points exactly 30min apart", "10:00", "10:30", false},
		{"identical points", "10:00", "10:00", true},
		{"point inside range", "09:30-10:15", "10:00", true},
		{"point past range end", "09:30-10:15", "10:20", false},
		{"point width reaches into range", "10:20-11:00", "10:00", true},
		{"ranges overlapping", "09:00-11:00", "10:30-12:00", true},
		{"ranges touching endpoints", "09:00-10:00", "10:00-11:00", false},
		{"disjoint ranges", "08:00-09:00", "12:00-13:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := parse(tt.a), parse(tt.b)
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}
