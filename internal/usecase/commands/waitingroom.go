package commands

import (
	"context"
	"encoding/json"
	"time"

	domwr "vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/pkg/clock"
	"vetclinic-scheduling/internal/pkg/errs"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEntryNotFound        = errs.New("waiting room entry not found")
	ErrDuplicateActiveEntry = errs.New("appointment already has an active waiting room entry")
)

type CheckInInput struct {
	AppointmentID uuid.UUID
	ArrivalMode   domwr.ArrivalMode
	Priority      int
}

type WalkInInput struct {
	ClinicID               uuid.UUID
	OwnerID                *uuid.UUID
	AnimalID               *uuid.UUID
	FoundAnimalDescription *string
	ArrivalMode            domwr.ArrivalMode
	Priority               int
	TriageNotes            *string
}

type WaitingRoomCommands interface {
	CreateFromAppointment(ctx context.Context, input CheckInInput) (uuid.UUID, error)
	CreateWalkIn(ctx context.Context, input WalkInInput) (uuid.UUID, error)
	Call(ctx context.Context, entryID, byUserID uuid.UUID) error
	StartService(ctx context.Context, entryID, byUserID uuid.UUID) error
	Close(ctx context.Context, entryID uuid.UUID, byUserID *uuid.UUID) error
	Reassess(ctx context.Context, entryID uuid.UUID, priority int, triageNotes *string) error
	EnsureInService(ctx context.Context, appointmentID, byUserID uuid.UUID) error
}

type waitingRoomCommandsImpl struct {
	uow     shared.UnitOfWork
	owners  OwnerExistenceChecker
	animals AnimalExistenceChecker
	clock   clock.Clock
}

func NewWaitingRoomCommands(
	uow shared.UnitOfWork,
	owners OwnerExistenceChecker,
	animals AnimalExistenceChecker,
	clk clock.Clock,
) WaitingRoomCommands {
	return &waitingRoomCommandsImpl{
		uow:     uow,
		owners:  owners,
		animals: animals,
		clock:   clk,
	}
}

// CreateFromAppointment checks in a booked visit. Clinic, owner and
// animal are inherited from the appointment; a partial unique index on
// linked_appointment_id among non-closed rows backs the duplicate check.
func (c *waitingRoomCommandsImpl) CreateFromAppointment(ctx context.Context, input CheckInInput) (uuid.UUID, error) {
	now := c.clock.Now()

	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apptSnap, err := tx.Reads().AppointmentByID(ctx, input.AppointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		hasActive, err := tx.Reads().HasActiveEntryForAppointment(ctx, apptSnap.ClinicID, input.AppointmentID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if hasActive {
			return ErrDuplicateActiveEntry
		}

		entry := domwr.NewFromAppointment(
			uuid.Nil, apptSnap.ClinicID, input.AppointmentID,
			apptSnap.OwnerID, apptSnap.AnimalID,
			input.ArrivalMode, input.Priority, now,
		)

		createdID, err := tx.WaitingRoom().Create(ctx, tx.DB(), entry)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateActiveEntry
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = createdID

		return c.publishEvent(ctx, tx, shared.TopicWaitingRoomEntryCreated, createdID, apptSnap.ClinicID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CreateWalkIn admits an unscheduled visit. There is no linking key,
// so no duplicate check applies.
func (c *waitingRoomCommandsImpl) CreateWalkIn(ctx context.Context, input WalkInInput) (uuid.UUID, error) {
	if err := c.checkOwnerAndAnimal(ctx, input.OwnerID, input.AnimalID); err != nil {
		return uuid.Nil, err
	}

	now := c.clock.Now()
	var id uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry := domwr.NewWalkIn(
			uuid.Nil, input.ClinicID,
			input.OwnerID, input.AnimalID, input.FoundAnimalDescription,
			input.ArrivalMode, input.Priority, input.TriageNotes, now,
		)

		createdID, err := tx.WaitingRoom().Create(ctx, tx.DB(), entry)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = createdID

		return c.publishEvent(ctx, tx, shared.TopicWaitingRoomEntryCreated, createdID, input.ClinicID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *waitingRoomCommandsImpl) checkOwnerAndAnimal(ctx context.Context, ownerID, animalID *uuid.UUID) error {
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

func (c *waitingRoomCommandsImpl) Call(ctx context.Context, entryID, byUserID uuid.UUID) error {
	return c.transition(ctx, entryID, shared.TopicWaitingRoomEntryCalled, func(entry *domwr.Entry, now time.Time) error {
		return entry.Call(now, byUserID)
	})
}

func (c *waitingRoomCommandsImpl) StartService(ctx context.Context, entryID, byUserID uuid.UUID) error {
	return c.transition(ctx, entryID, shared.TopicWaitingRoomServiceStart, func(entry *domwr.Entry, now time.Time) error {
		return entry.StartService(now, byUserID)
	})
}

func (c *waitingRoomCommandsImpl) Close(ctx context.Context, entryID uuid.UUID, byUserID *uuid.UUID) error {
	return c.transition(ctx, entryID, shared.TopicWaitingRoomEntryClosed, func(entry *domwr.Entry, now time.Time) error {
		return entry.Close(now, byUserID)
	})
}

func (c *waitingRoomCommandsImpl) Reassess(ctx context.Context, entryID uuid.UUID, priority int, triageNotes *string) error {
	return c.transition(ctx, entryID, shared.TopicWaitingRoomEntryReassess, func(entry *domwr.Entry, _ time.Time) error {
		return entry.Reassess(priority, triageNotes)
	})
}

// EnsureInService is the inbound command the clinical-care context
// re-issues when a consultation is opened. An entry already in
// service is the one case treated as an idempotent no-op; closed or
// missing entries and real transition failures propagate.
func (c *waitingRoomCommandsImpl) EnsureInService(ctx context.Context, appointmentID, byUserID uuid.UUID) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		apptSnap, err := tx.Reads().AppointmentByID(ctx, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		snap, err := tx.Reads().ActiveEntryByAppointment(ctx, apptSnap.ClinicID, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.Status == domwr.StatusInService {
			return nil
		}

		entry := snap.ToDomain()
		if err := entry.StartService(now, byUserID); err != nil {
			return err
		}
		if err := tx.WaitingRoom().Update(ctx, tx.DB(), entry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		appt, err := apptSnap.ToDomain()
		if err != nil {
			return err
		}
		if err := appt.StartService(now); err != nil {
			return err
		}
		if err := tx.Appointments().Update(ctx, tx.DB(), appt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return c.publishEvent(ctx, tx, shared.TopicWaitingRoomServiceStart, entry.ID(), entry.ClinicID())
	})
}

func (c *waitingRoomCommandsImpl) transition(
	ctx context.Context,
	entryID uuid.UUID,
	topic string,
	apply func(entry *domwr.Entry, now time.Time) error,
) error {
	now := c.clock.Now()
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().WaitingRoomEntryByID(ctx, entryID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEntryNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entry := snap.ToDomain()
		if err := apply(entry, now); err != nil {
			return err
		}
		if err := tx.WaitingRoom().Update(ctx, tx.DB(), entry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return c.publishEvent(ctx, tx, topic, entryID, entry.ClinicID())
	})
}

func (c *waitingRoomCommandsImpl) publishEvent(ctx context.Context, tx shared.Tx, topic string, entryID, clinicID uuid.UUID) error {
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
