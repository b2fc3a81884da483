package waitingroom

import (
	"time"

	"vetclinic-scheduling/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errs.New("invalid waiting room status transition")
	ErrEntryClosed       = errs.New("waiting room entry is closed")
)

// Entry is one row on the clinic's triage board. Entries created from
// an appointment keep the link by id; the aggregates never reference
// each other directly.
type Entry struct {
	id                     uuid.UUID
	clinicID               uuid.UUID
	origin                 Origin
	arrivalMode            ArrivalMode
	appointmentID          *uuid.UUID
	ownerID                *uuid.UUID
	animalID               *uuid.UUID
	foundAnimalDescription *string
	priority               int
	triageNotes            *string
	status                 Status
	arrivedAt              time.Time
	calledAt               *time.Time
	serviceStartedAt       *time.Time
	closedAt               *time.Time
	calledBy               *uuid.UUID
	serviceStartedBy       *uuid.UUID
	closedBy               *uuid.UUID
}

func NewFromAppointment(
	id, clinicID, appointmentID uuid.UUID,
	ownerID, animalID *uuid.UUID,
	arrivalMode ArrivalMode,
	priority int,
	arrivedAt time.Time,
) *Entry {
	if id == uuid.Nil {
		id = uuid.New()
	}
	apptID := appointmentID
	return &Entry{
		id:            id,
		clinicID:      clinicID,
		origin:        OriginScheduled,
		arrivalMode:   arrivalMode,
		appointmentID: &apptID,
		ownerID:       ownerID,
		animalID:      animalID,
		priority:      priority,
		status:        StatusWaiting,
		arrivedAt:     arrivedAt,
	}
}

func NewWalkIn(
	id, clinicID uuid.UUID,
	ownerID, animalID *uuid.UUID,
	foundAnimalDescription *string,
	arrivalMode ArrivalMode,
	priority int,
	triageNotes *string,
	arrivedAt time.Time,
) *Entry {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Entry{
		id:                     id,
		clinicID:               clinicID,
		origin:                 OriginWalkIn,
		arrivalMode:            arrivalMode,
		ownerID:                ownerID,
		animalID:               animalID,
		foundAnimalDescription: foundAnimalDescription,
		priority:               priority,
		triageNotes:            triageNotes,
		status:                 StatusWaiting,
		arrivedAt:              arrivedAt,
	}
}

func Reconstruct(
	id, clinicID uuid.UUID,
	origin Origin,
	arrivalMode ArrivalMode,
	appointmentID, ownerID, animalID *uuid.UUID,
	foundAnimalDescription *string,
	priority int,
	triageNotes *string,
	status Status,
	arrivedAt time.Time,
	calledAt, serviceStartedAt, closedAt *time.Time,
	calledBy, serviceStartedBy, closedBy *uuid.UUID,
) *Entry {
	return &Entry{
		id:                     id,
		clinicID:               clinicID,
		origin:                 origin,
		arrivalMode:            arrivalMode,
		appointmentID:          appointmentID,
		ownerID:                ownerID,
		animalID:               animalID,
		foundAnimalDescription: foundAnimalDescription,
		priority:               priority,
		triageNotes:            triageNotes,
		status:                 status,
		arrivedAt:              arrivedAt,
		calledAt:               calledAt,
		serviceStartedAt:       serviceStartedAt,
		closedAt:               closedAt,
		calledBy:               calledBy,
		serviceStartedBy:       serviceStartedBy,
		closedBy:               closedBy,
	}
}

func (e *Entry) Call(at time.Time, byUserID uuid.UUID) error {
	if !e.status.CanTransitionTo(StatusCalled) {
		return ErrInvalidTransition
	}
	e.status = StatusCalled
	t := at
	e.calledAt = &t
	by := byUserID
	e.calledBy = &by
	return nil
}

func (e *Entry) StartService(at time.Time, byUserID uuid.UUID) error {
	if !e.status.CanTransitionTo(StatusInService) {
		return ErrInvalidTransition
	}
	e.status = StatusInService
	t := at
	e.serviceStartedAt = &t
	by := byUserID
	e.serviceStartedBy = &by
	return nil
}

// Close takes an optional actor: the cancel-appointment policy closes
// entries with no acting user.
func (e *Entry) Close(at time.Time, byUserID *uuid.UUID) error {
	if !e.status.CanTransitionTo(StatusClosed) {
		return ErrInvalidTransition
	}
	e.status = StatusClosed
	t := at
	e.closedAt = &t
	e.closedBy = byUserID
	return nil
}

// Reassess updates the manual triage priority and notes. Only active
// entries may be reassessed; the board order is re-derived on read.
func (e *Entry) Reassess(priority int, triageNotes *string) error {
	if !e.status.IsActive() {
		return ErrEntryClosed
	}
	e.priority = priority
	if triageNotes != nil {
		e.triageNotes = triageNotes
	}
	return nil
}

func (e *Entry) TriageRank() Rank {
	return Rank{
		ArrivalMode: e.arrivalMode,
		Priority:    e.priority,
		ArrivedAt:   e.arrivedAt,
	}
}

func (e *Entry) ID() uuid.UUID                    { return e.id }
func (e *Entry) ClinicID() uuid.UUID              { return e.clinicID }
func (e *Entry) Origin() Origin                   { return e.origin }
func (e *Entry) ArrivalMode() ArrivalMode         { return e.arrivalMode }
func (e *Entry) AppointmentID() *uuid.UUID        { return e.appointmentID }
func (e *Entry) OwnerID() *uuid.UUID              { return e.ownerID }
func (e *Entry) AnimalID() *uuid.UUID             { return e.animalID }
func (e *Entry) FoundAnimalDescription() *string  { return e.foundAnimalDescription }
func (e *Entry) Priority() int                    { return e.priority }
func (e *Entry) TriageNotes() *string             { return e.triageNotes }
func (e *Entry) Status() Status                   { return e.status }
func (e *Entry) ArrivedAt() time.Time             { return e.arrivedAt }
func (e *Entry) CalledAt() *time.Time             { return e.calledAt }
func (e *Entry) ServiceStartedAt() *time.Time     { return e.serviceStartedAt }
func (e *Entry) ClosedAt() *time.Time             { return e.closedAt }
func (e *Entry) CalledBy() *uuid.UUID             { return e.calledBy }
func (e *Entry) ServiceStartedBy() *uuid.UUID     { return e.serviceStartedBy }
func (e *Entry) ClosedBy() *uuid.UUID             { return e.closedBy }
