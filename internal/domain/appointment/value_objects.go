package appointment

import (
	"fmt"
	"time"

	"vetclinic-scheduling/internal/pkg/errs"
)

var ErrInvalidDuration = errs.New("duration must be positive")

// TimeSlot is an immutable start instant plus duration. Intervals are
// half-open: [start, end), so a slot ending exactly when another
// starts does not overlap it.
type TimeSlot struct {
	start           time.Time
	durationMinutes int
}

func NewTimeSlot(start time.Time, durationMinutes int) (TimeSlot, error) {
	if durationMinutes <= 0 {
		return TimeSlot{}, ErrInvalidDuration
	}
	return TimeSlot{
		start:           start.UTC(),
		durationMinutes: durationMinutes,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.start.Add(time.Duration(ts.durationMinutes) * time.Minute)
}

func (ts TimeSlot) DurationMinutes() int {
	return ts.durationMinutes
}

func (ts TimeSlot) OverlapsWith(other TimeSlot) bool {
	return !(ts.End().Before(other.start) || ts.End().Equal(other.start) ||
		other.End().Before(ts.start) || other.End().Equal(ts.start))
}

func (ts TimeSlot) Equals(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.durationMinutes == other.durationMinutes
}

// ToTstzrange renders the slot as a half-open Postgres range literal,
// matching the exclusion constraint on the appointments table.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.End().Format(time.RFC3339))
}
