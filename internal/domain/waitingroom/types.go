package waitingroom

import "vetclinic-scheduling/internal/pkg/errs"

var ErrInvalidArrivalMode = errs.New("invalid arrival mode")

type Origin string

const (
	OriginScheduled Origin = "scheduled"
	OriginWalkIn    Origin = "walk_in"
)

func (o Origin) String() string {
	return string(o)
}

func (o Origin) IsValid() bool {
	switch o {
	case OriginScheduled, OriginWalkIn:
		return true
	default:
		return false
	}
}

type ArrivalMode string

const (
	ArrivalStandard  ArrivalMode = "standard"
	ArrivalEmergency ArrivalMode = "emergency"
)

func (m ArrivalMode) String() string {
	return string(m)
}

func NewArrivalMode(s string) (ArrivalMode, error) {
	mode := ArrivalMode(s)
	if !mode.IsValid() {
		return "", ErrInvalidArrivalMode
	}
	return mode, nil
}

func (m ArrivalMode) IsValid() bool {
	switch m {
	case ArrivalStandard, ArrivalEmergency:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCalled    Status = "called"
	StatusInService Status = "in_service"
	StatusClosed    Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusCalled, StatusInService, StatusClosed:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusWaiting || s == StatusCalled || s == StatusInService
}

// CanTransitionTo encodes the forward-only lifecycle. CALLED and
// IN_SERVICE may each be skipped straight to CLOSED (abandonment).
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusWaiting:
		return next == StatusCalled || next == StatusInService || next == StatusClosed
	case StatusCalled:
		return next == StatusInService || next == StatusClosed
	case StatusInService:
		return next == StatusClosed
	default:
		return false
	}
}
