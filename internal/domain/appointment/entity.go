package appointment

import (
	"time"

	"vetclinic-scheduling/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errs.New("invalid appointment status transition")

// Appointment is the booking aggregate. Uniqueness and practitioner
// eligibility are preconditions of the scheduling use case, not
// invariants of the aggregate itself.
type Appointment struct {
	id               uuid.UUID
	clinicID         uuid.UUID
	ownerID          *uuid.UUID
	animalID         *uuid.UUID
	practitionerID   *uuid.UUID
	slot             TimeSlot
	status           Status
	reason           *string
	notes            *string
	serviceStartedAt *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func Schedule(
	id uuid.UUID,
	clinicID uuid.UUID,
	ownerID, animalID, practitionerID *uuid.UUID,
	slot TimeSlot,
	reason, notes *string,
	createdAt time.Time,
) *Appointment {
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Appointment{
		id:             id,
		clinicID:       clinicID,
		ownerID:        ownerID,
		animalID:       animalID,
		practitionerID: practitionerID,
		slot:           slot,
		status:         StatusPlanned,
		reason:         reason,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      createdAt,
	}
}

func Reconstruct(
	id, clinicID uuid.UUID,
	ownerID, animalID, practitionerID *uuid.UUID,
	slot TimeSlot,
	status Status,
	reason, notes *string,
	serviceStartedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:               id,
		clinicID:         clinicID,
		ownerID:          ownerID,
		animalID:         animalID,
		practitionerID:   practitionerID,
		slot:             slot,
		status:           status,
		reason:           reason,
		notes:            notes,
		serviceStartedAt: serviceStartedAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (a *Appointment) Cancel(at time.Time) error {
	return a.transitionTo(StatusCancelled, at)
}

func (a *Appointment) Complete(at time.Time) error {
	return a.transitionTo(StatusCompleted, at)
}

func (a *Appointment) MarkNoShow(at time.Time) error {
	return a.transitionTo(StatusNoShow, at)
}

// StartService records when the consultation actually began. It is a
// no-op if already recorded, but fails on a terminal appointment.
func (a *Appointment) StartService(at time.Time) error {
	if a.status.IsTerminal() {
		return ErrInvalidTransition
	}
	if a.serviceStartedAt != nil {
		return nil
	}
	t := at
	a.serviceStartedAt = &t
	a.updatedAt = at
	return nil
}

func (a *Appointment) transitionTo(next Status, at time.Time) error {
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	a.updatedAt = at
	return nil
}

func (a *Appointment) IsTerminal() bool {
	return a.status.IsTerminal()
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) ClinicID() uuid.UUID         { return a.clinicID }
func (a *Appointment) OwnerID() *uuid.UUID         { return a.ownerID }
func (a *Appointment) AnimalID() *uuid.UUID        { return a.animalID }
func (a *Appointment) PractitionerID() *uuid.UUID  { return a.practitionerID }
func (a *Appointment) Slot() TimeSlot              { return a.slot }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) Reason() *string             { return a.reason }
func (a *Appointment) Notes() *string              { return a.notes }
func (a *Appointment) ServiceStartedAt() *time.Time { return a.serviceStartedAt }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }
