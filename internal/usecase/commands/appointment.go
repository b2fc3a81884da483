package commands

import (
	"context"
	"encoding/json"
	"time"

	domappt "vetclinic-scheduling/internal/domain/appointment"
	"vetclinic-scheduling/internal/domain/staff"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/pkg/clock"
	"vetclinic-scheduling/internal/pkg/errs"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound      = errs.New("appointment not found")
	ErrUnknownOwner             = errs.New("unknown owner")
	ErrUnknownAnimal            = errs.New("unknown animal")
	ErrPractitionerNotEligible  = errs.New("practitioner not eligible for clinic")
	ErrPractitionerDoubleBooked = errs.New("practitioner already booked for the slot")
	ErrPractitionerAgendaBusy   = errs.New("practitioner agenda is being modified")
	ErrDatabaseOperationFailed  = errs.New("database operation failed")
)

type ScheduleAppointmentInput struct {
	ClinicID        uuid.UUID
	OwnerID         *uuid.UUID
	AnimalID        *uuid.UUID
	PractitionerID  *uuid.UUID
	Start           time.Time
	DurationMinutes int
	Reason          *string
	Notes           *string
}

type AppointmentCommands interface {
	Schedule(ctx context.Context, input ScheduleAppointmentInput) (uuid.UUID, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
	MarkNoShow(ctx context.Context, id uuid.UUID) error
	StartService(ctx context.Context, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow         shared.UnitOfWork
	owners      OwnerExistenceChecker
	animals     AnimalExistenceChecker
	memberships MembershipEligibilityChecker
	locker      PractitionerLocker
	clock       clock.Clock
}

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	owners OwnerExistenceChecker,
	animals AnimalExistenceChecker,
	memberships MembershipEligibilityChecker,
	locker PractitionerLocker,
	clk clock.Clock,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:         uow,
		owners:      owners,
		animals:     animals,
		memberships: memberships,
		locker:      locker,
		clock:       clk,
	}
}

// Schedule verifies each precondition in order and fails fast: owner,
// animal, practitioner eligibility, then slot conflict. Appointments
// without a practitioner never conflict.
func (c *appointmentCommandsImpl) Schedule(ctx context.Context, input ScheduleAppointmentInput) (uuid.UUID, error) {
	slot, err := domappt.NewTimeSlot(input.Start, input.DurationMinutes)
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.checkOwnerAndAnimal(ctx, input.OwnerID, input.AnimalID); err != nil {
		return uuid.Nil, err
	}

	if input.PractitionerID == nil {
		return c.persistNew(ctx, input, slot)
	}

	eligible, err := c.memberships.IsUserEligibleForClinicAt(
		ctx, *input.PractitionerID, input.ClinicID, c.clock.Now(), staff.PractitionerRoles())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "eligibility check failed")
	}
	if !eligible {
		return uuid.Nil, ErrPractitionerNotEligible
	}

	var id uuid.UUID
	err = c.locker.WithPractitionerLock(ctx, input.ClinicID, *input.PractitionerID, func(ctx context.Context) error {
		var lockErr error
		id, lockErr = c.persistNew(ctx, input, slot)
		return lockErr
	})
	return id, err
}

func (c *appointmentCommandsImpl) persistNew(ctx context.Context, input ScheduleAppointmentInput, slot domappt.TimeSlot) (uuid.UUID, error) {
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if input.PractitionerID != nil {
			overlap, err := tx.Reads().HasOverlap(ctx, input.ClinicID, *input.PractitionerID, slot, nil)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if overlap {
				return ErrPractitionerDoubleBooked
			}
		}

		appt := domappt.Schedule(
			uuid.Nil, input.ClinicID,
			input.OwnerID, input.AnimalID, input.PractitionerID,
			slot, input.Reason, input.Notes, c.clock.Now(),
		)

		createdID, err := tx.Appointments().Create(ctx, tx.DB(), appt)
		if err != nil {
			// Exclusion constraint closes the check-then-insert race
			if infra.IsKind(err, infra.KindConflict) {
				return ErrPractitionerDoubleBooked
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = createdID

		return c.publishAppointmentEvent(ctx, tx, shared.TopicAppointmentScheduled, createdID, input.ClinicID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *appointmentCommandsImpl) checkOwnerAndAnimal(ctx context.Context, ownerID, animalID *uuid.UUID) error {
	if ownerID != nil {
		exists, err := c.owners.Exists(ctx, *ownerID)
		if err != nil {
			return errs.Wrap(err, "owner lookup failed")
		}
		if !exists {
			return ErrUnknownOwner
		}
	}
	if animalID != nil {
		exists, err := c.animals.Exists(ctx, *animalID)
		if err != nil {
			return errs.Wrap(err, "animal lookup failed")
		}
		if !exists {
			return ErrUnknownAnimal
		}
	}
	return nil
}

// Cancel transitions the appointment and, as an application-level
// policy, closes any active waiting-room entry linked to it. The two
// aggregates only meet here, never by direct reference.
func (c *appointmentCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := c.loadAppointment(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := appt.Cancel(now); err != nil {
			return err
		}
		if err := tx.Appointments().Update(ctx, tx.DB(), appt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := c.publishAppointmentEvent(ctx, tx, shared.TopicAppointmentCancelled, id, appt.ClinicID()); err != nil {
			return err
		}
		return c.closeActiveEntryFor(ctx, tx, appt.ClinicID(), id, now)
	})
}

func (c *appointmentCommandsImpl) closeActiveEntryFor(ctx context.Context, tx shared.Tx, clinicID, appointmentID uuid.UUID, now time.Time) error {
	snap, err := tx.Reads().ActiveEntryByAppointment(ctx, clinicID, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entry := snap.ToDomain()
	if err := entry.Close(now, nil); err != nil {
		return err
	}
	if err := tx.WaitingRoom().Update(ctx, tx.DB(), entry); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c.publishEntryEvent(ctx, tx, shared.TopicWaitingRoomEntryClosed, entry.ID(), clinicID)
}

func (c *appointmentCommandsImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, shared.TopicAppointmentCompleted, func(appt *domappt.Appointment, now time.Time) error {
		return appt.Complete(now)
	})
}

func (c *appointmentCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, shared.TopicAppointmentNoShow, func(appt *domappt.Appointment, now time.Time) error {
		return appt.MarkNoShow(now)
	})
}

func (c *appointmentCommandsImpl) StartService(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, shared.TopicAppointmentServiceStart, func(appt *domappt.Appointment, now time.Time) error {
		return appt.StartService(now)
	})
}

func (c *appointmentCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	topic string,
	apply func(appt *domappt.Appointment, now time.Time) error,
) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		appt, err := c.loadAppointment(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := apply(appt, now); err != nil {
			return err
		}
		if err := tx.Appointments().Update(ctx, tx.DB(), appt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return c.publishAppointmentEvent(ctx, tx, topic, id, appt.ClinicID())
	})
}

func (c *appointmentCommandsImpl) loadAppointment(ctx context.Context, tx shared.Tx, id uuid.UUID) (*domappt.Appointment, error) {
	snap, err := tx.Reads().AppointmentByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap.ToDomain()
}

func (c *appointmentCommandsImpl) publishAppointmentEvent(ctx context.Context, tx shared.Tx, topic string, appointmentID, clinicID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appointmentID,
		"clinic_id":      clinicID,
	})
	if err != nil {
		return err
	}
	if err := tx.Events().Enqueue(ctx, tx.DB(), topic, payload, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *appointmentCommandsImpl) publishEntryEvent(ctx context.Context, tx shared.Tx, topic string, entryID, clinicID uuid.UUID) error {
	payload, err := json.Marshal(map[string]any{
		"entry_id":  entryID,
		"clinic_id": clinicID,
	})
	if err != nil {
		return err
	}
	if err := tx.Events().Enqueue(ctx, tx.DB(), topic, payload, c.clock.Now()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
