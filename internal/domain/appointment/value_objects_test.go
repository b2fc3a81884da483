//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"vetclinic-scheduling/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	t.Run("valid duration", func(t *testing.T) {
		slot, err := appointment.NewTimeSlot(start, 30)
		require.NoError(t, err)

		assert.Equal(t, start, slot.Start())
		assert.Equal(t, start.Add(30*time.Minute), slot.End())
		assert.Equal(t, 30, slot.DurationMinutes())
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := appointment.NewTimeSlot(start, 0)
		require.ErrorIs(t, err, appointment.ErrInvalidDuration)
	})

	t.Run("negative duration", func(t *testing.T) {
		_, err := appointment.NewTimeSlot(start, -15)
		require.ErrorIs(t, err, appointment.ErrInvalidDuration)
	})

	t.Run("start normalized to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		slot, err := appointment.NewTimeSlot(time.Date(2026, 2, 1, 18, 0, 0, 0, tokyo), 30)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, slot.Start().Location())
		assert.True(t, slot.Start().Equal(start))
	})
}

func TestTimeSlotOverlapsWith(t *testing.T) {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	slot := func(offsetMin, durationMin int) appointment.TimeSlot {
		s, err := appointment.NewTimeSlot(base.Add(time.Duration(offsetMin)*time.Minute), durationMin)
		require.NoError(t, err)
		return s
	}

	cases := []struct {
		name     string
		a, b     appointment.TimeSlot
		overlaps bool
	}{
		{"identical slots", slot(0, 30), slot(0, 30), true},
		{"partial overlap", slot(0, 30), slot(15, 30), true},
		{"b inside a", slot(0, 60), slot(15, 15), true},
		{"a inside b", slot(15, 15), slot(0, 60), true},
		{"touching a before b", slot(0, 30), slot(30, 30), false},
		{"touching b before a", slot(30, 30), slot(0, 30), false},
		{"disjoint", slot(0, 30), slot(60, 30), false},
		{"different durations disjoint", slot(0, 10), slot(45, 90), false},
		{"one minute overlap", slot(0, 31), slot(30, 30), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.OverlapsWith(c.b))
			// overlap is symmetric
			assert.Equal(t, c.overlaps, c.b.OverlapsWith(c.a))
		})
	}
}

func TestTimeSlotEquals(t *testing.T) {
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	a, err := appointment.NewTimeSlot(start, 30)
	require.NoError(t, err)
	b, err := appointment.NewTimeSlot(start, 30)
	require.NoError(t, err)
	c, err := appointment.NewTimeSlot(start, 45)
	require.NoError(t, err)
	d, err := appointment.NewTimeSlot(start.Add(time.Minute), 30)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(d))
}

func TestTimeSlotToTstzrange(t *testing.T) {
	slot, err := appointment.NewTimeSlot(time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), 30)
	require.NoError(t, err)

	assert.Equal(t, "[2026-02-01T09:00:00Z,2026-02-01T09:30:00Z)", slot.ToTstzrange())
}
