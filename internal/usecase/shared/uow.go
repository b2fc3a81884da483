package shared

import (
	"context"
	"time"

	"vetclinic-scheduling/internal/domain/appointment"
	"vetclinic-scheduling/internal/domain/waitingroom"
	"vetclinic-scheduling/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Appointments() AppointmentRepository
	WaitingRoom() WaitingRoomRepository
	Events() EventOutbox
	Reads() CommandReads
	DB() db.DBTX
}

// ConflictChecker scans non-terminal appointments for the
// clinic+practitioner pair and applies half-open overlap. The
// appointment's own id is excluded when rescheduling.
type ConflictChecker interface {
	HasOverlap(ctx context.Context, clinicID, practitionerID uuid.UUID, slot appointment.TimeSlot, excludeAppointmentID *uuid.UUID) (bool, error)
}

type WaitingRoomReads interface {
	WaitingRoomEntryByID(ctx context.Context, id uuid.UUID) (*WaitingRoomEntrySnapshot, error)
	ActiveEntryByAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID) (*WaitingRoomEntrySnapshot, error)
	HasActiveEntryForAppointment(ctx context.Context, clinicID, appointmentID uuid.UUID) (bool, error)
}

type CommandReads interface {
	ConflictChecker
	WaitingRoomReads
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error
}

type WaitingRoomRepository interface {
	Create(ctx context.Context, tx db.DBTX, entry *waitingroom.Entry) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, entry *waitingroom.Entry) error
}

// EventOutbox records a domain event in the same transaction as the
// state change. A relay ships rows to the bus at-least-once; the
// transport itself is outside this service.
type EventOutbox interface {
	Enqueue(ctx context.Context, tx db.DBTX, topic string, payload []byte, occurredAt time.Time) error
}
