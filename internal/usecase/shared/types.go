package shared

import (
	"time"

	"vetclinic-scheduling/internal/domain/appointment"
	"vetclinic-scheduling/internal/domain/waitingroom"

	"github.com/google/uuid"
)

// Event topics relayed to the clinic event bus.
const (
	TopicAppointmentScheduled     = "appointment.scheduled"
	TopicAppointmentCancelled     = "appointment.cancelled"
	TopicAppointmentCompleted     = "appointment.completed"
	TopicAppointmentNoShow        = "appointment.no_show"
	TopicAppointmentServiceStart  = "appointment.service_started"
	TopicWaitingRoomEntryCreated  = "waiting_room.entry_created"
	TopicWaitingRoomEntryCalled   = "waiting_room.entry_called"
	TopicWaitingRoomServiceStart  = "waiting_room.service_started"
	TopicWaitingRoomEntryClosed   = "waiting_room.entry_closed"
	TopicWaitingRoomEntryReassess = "waiting_room.entry_reassessed"
)

// Minimal snapshots for command read operations
type AppointmentSnapshot struct {
	ID               uuid.UUID
	ClinicID         uuid.UUID
	OwnerID          *uuid.UUID
	AnimalID         *uuid.UUID
	PractitionerID   *uuid.UUID
	Start            time.Time
	DurationMin      int
	Status           appointment.Status
	Reason           *string
	Notes            *string
	ServiceStartedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s AppointmentSnapshot) ToDomain() (*appointment.Appointment, error) {
	slot, err := appointment.NewTimeSlot(s.Start, s.DurationMin)
	if err != nil {
		return nil, err
	}
	return appointment.Reconstruct(
		s.ID, s.ClinicID,
		s.OwnerID, s.AnimalID, s.PractitionerID,
		slot, s.Status, s.Reason, s.Notes,
		s.ServiceStartedAt, s.CreatedAt, s.UpdatedAt,
	), nil
}

type WaitingRoomEntrySnapshot struct {
	ID                     uuid.UUID
	ClinicID               uuid.UUID
	Origin                 waitingroom.Origin
	ArrivalMode            waitingroom.ArrivalMode
	AppointmentID          *uuid.UUID
	OwnerID                *uuid.UUID
	AnimalID               *uuid.UUID
	FoundAnimalDescription *string
	Priority               int
	TriageNotes            *string
	Status                 waitingroom.Status
	ArrivedAt              time.Time
	CalledAt               *time.Time
	ServiceStartedAt       *time.Time
	ClosedAt               *time.Time
	CalledBy               *uuid.UUID
	ServiceStartedBy       *uuid.UUID
	ClosedBy               *uuid.UUID
}

func (s WaitingRoomEntrySnapshot) ToDomain() *waitingroom.Entry {
	return waitingroom.Reconstruct(
		s.ID, s.ClinicID, s.Origin, s.ArrivalMode,
		s.AppointmentID, s.OwnerID, s.AnimalID,
		s.FoundAnimalDescription, s.Priority, s.TriageNotes,
		s.Status, s.ArrivedAt,
		s.CalledAt, s.ServiceStartedAt, s.ClosedAt,
		s.CalledBy, s.ServiceStartedBy, s.ClosedBy,
	)
}
