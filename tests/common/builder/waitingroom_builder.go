//go:build unit || e2e

package builder

import (
	"time"

	domwr "vetclinic-scheduling/internal/domain/waitingroom"
	reqdto "vetclinic-scheduling/internal/handler/dto/request"
	"vetclinic-scheduling/internal/pkg/ptr"
	"vetclinic-scheduling/internal/usecase/queries"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

type WaitingRoomEntryBuilder struct {
	ID                     uuid.UUID
	ClinicID               uuid.UUID
	Origin                 domwr.Origin
	ArrivalMode            domwr.ArrivalMode
	AppointmentID          *uuid.UUID
	OwnerID                *uuid.UUID
	AnimalID               *uuid.UUID
	FoundAnimalDescription *string
	Priority               int
	TriageNotes            *string
	Status                 domwr.Status
	ArrivedAt              time.Time
}

func NewWaitingRoomEntryBuilder() *WaitingRoomEntryBuilder {
	return &WaitingRoomEntryBuilder{
		ID:            uuid.New(),
		ClinicID:      uuid.New(),
		Origin:        domwr.OriginScheduled,
		ArrivalMode:   domwr.ArrivalStandard,
		AppointmentID: ptr.To(uuid.New()),
		OwnerID:       ptr.To(uuid.New()),
		AnimalID:      ptr.To(uuid.New()),
		Priority:      0,
		Status:        domwr.StatusWaiting,
		ArrivedAt:     time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *WaitingRoomEntryBuilder) With(mutate func(*WaitingRoomEntryBuilder)) *WaitingRoomEntryBuilder {
	mutate(b)
	return b
}

func (b *WaitingRoomEntryBuilder) BuildDomain() *domwr.Entry {
	if b.Origin == domwr.OriginWalkIn {
		return domwr.NewWalkIn(b.ID, b.ClinicID, b.OwnerID, b.AnimalID, b.FoundAnimalDescription, b.ArrivalMode, b.Priority, b.TriageNotes, b.ArrivedAt)
	}
	return domwr.NewFromAppointment(b.ID, b.ClinicID, *b.AppointmentID, b.OwnerID, b.AnimalID, b.ArrivalMode, b.Priority, b.ArrivedAt)
}

// BuildDomainWithStatus reconstructs an entry already advanced to the
// given status, with transition timestamps consistent with it.
func (b *WaitingRoomEntryBuilder) BuildDomainWithStatus(status domwr.Status) *domwr.Entry {
	var calledAt, serviceStartedAt, closedAt *time.Time
	var calledBy, serviceStartedBy, closedBy *uuid.UUID
	actor := uuid.New()

	switch status {
	case domwr.StatusCalled:
		t := b.ArrivedAt.Add(5 * time.Minute)
		calledAt, calledBy = &t, &actor
	case domwr.StatusInService:
		t1 := b.ArrivedAt.Add(5 * time.Minute)
		t2 := b.ArrivedAt.Add(10 * time.Minute)
		calledAt, calledBy = &t1, &actor
		serviceStartedAt, serviceStartedBy = &t2, &actor
	case domwr.StatusClosed:
		t := b.ArrivedAt.Add(30 * time.Minute)
		closedAt, closedBy = &t, &actor
	}

	return domwr.Reconstruct(
		b.ID, b.ClinicID, b.Origin, b.ArrivalMode,
		b.AppointmentID, b.OwnerID, b.AnimalID,
		b.FoundAnimalDescription, b.Priority, b.TriageNotes,
		status, b.ArrivedAt,
		calledAt, serviceStartedAt, closedAt,
		calledBy, serviceStartedBy, closedBy,
	)
}

func (b *WaitingRoomEntryBuilder) BuildCheckInRequestDTO() reqdto.CheckInRequest {
	return reqdto.CheckInRequest{
		ArrivalMode: b.ArrivalMode.String(),
		Priority:    b.Priority,
	}
}

func (b *WaitingRoomEntryBuilder) BuildWalkInRequestDTO() reqdto.WalkInRequest {
	return reqdto.WalkInRequest{
		ClinicID:               b.ClinicID,
		OwnerID:                b.OwnerID,
		AnimalID:               b.AnimalID,
		FoundAnimalDescription: b.FoundAnimalDescription,
		ArrivalMode:            b.ArrivalMode.String(),
		Priority:               b.Priority,
		TriageNotes:            b.TriageNotes,
	}
}

func (b *WaitingRoomEntryBuilder) BuildView() *queries.WaitingRoomEntryView {
	return &queries.WaitingRoomEntryView{
		ID:                     b.ID,
		ClinicID:               b.ClinicID,
		Origin:                 b.Origin.String(),
		ArrivalMode:            b.ArrivalMode.String(),
		AppointmentID:          b.AppointmentID,
		OwnerID:                b.OwnerID,
		AnimalID:               b.AnimalID,
		FoundAnimalDescription: b.FoundAnimalDescription,
		Priority:               b.Priority,
		TriageNotes:            b.TriageNotes,
		Status:                 b.Status.String(),
		ArrivedAt:              b.ArrivedAt,
	}
}

func (b *WaitingRoomEntryBuilder) BuildSnapshot() shared.WaitingRoomEntrySnapshot {
	return shared.WaitingRoomEntrySnapshot{
		ID:                     b.ID,
		ClinicID:               b.ClinicID,
		Origin:                 b.Origin,
		ArrivalMode:            b.ArrivalMode,
		AppointmentID:          b.AppointmentID,
		OwnerID:                b.OwnerID,
		AnimalID:               b.AnimalID,
		FoundAnimalDescription: b.FoundAnimalDescription,
		Priority:               b.Priority,
		TriageNotes:            b.TriageNotes,
		Status:                 b.Status,
		ArrivedAt:              b.ArrivedAt,
	}
}
