package appointment

type Status string

const (
	StatusPlanned   Status = "planned"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPlanned, StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave s.
// Planned is the sole non-terminal state; every exit is one-way.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusNoShow || s == StatusCompleted
}

func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPlanned {
		return false
	}
	switch next {
	case StatusCancelled, StatusNoShow, StatusCompleted:
		return true
	default:
		return false
	}
}
