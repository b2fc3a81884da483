//go:build unit || e2e

package builder

import (
	"time"

	domappt "vetclinic-scheduling/internal/domain/appointment"
	reqdto "vetclinic-scheduling/internal/handler/dto/request"
	"vetclinic-scheduling/internal/pkg/ptr"
	"vetclinic-scheduling/internal/usecase/queries"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID             uuid.UUID
	ClinicID       uuid.UUID
	OwnerID        *uuid.UUID
	AnimalID       *uuid.UUID
	PractitionerID *uuid.UUID
	Start          time.Time
	DurationMin    int
	Status         domappt.Status
	Reason         *string
	Notes          *string
	CreatedAt      time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		ID:             uuid.New(),
		ClinicID:       uuid.New(),
		OwnerID:        ptr.To(uuid.New()),
		AnimalID:       ptr.To(uuid.New()),
		PractitionerID: ptr.To(uuid.New()),
		Start:          now,
		DurationMin:    30,
		Status:         domappt.StatusPlanned,
		Reason:         ptr.To("annual vaccination"),
		CreatedAt:      now.Add(-24 * time.Hour),
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildSlot() (domappt.TimeSlot, error) {
	return domappt.NewTimeSlot(b.Start, b.DurationMin)
}

func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	slot, err := b.BuildSlot()
	if err != nil {
		return nil, err
	}
	appt := domappt.Schedule(b.ID, b.ClinicID, b.OwnerID, b.AnimalID, b.PractitionerID, slot, b.Reason, b.Notes, b.CreatedAt)
	return appt, nil
}

func (b *AppointmentBuilder) BuildScheduleRequestDTO() reqdto.ScheduleAppointmentRequest {
	return reqdto.ScheduleAppointmentRequest{
		ClinicID:        b.ClinicID,
		OwnerID:         b.OwnerID,
		AnimalID:        b.AnimalID,
		PractitionerID:  b.PractitionerID,
		Start:           b.Start,
		DurationMinutes: b.DurationMin,
		Reason:          b.Reason,
		Notes:           b.Notes,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              b.ID,
		ClinicID:        b.ClinicID,
		OwnerID:         b.OwnerID,
		AnimalID:        b.AnimalID,
		PractitionerID:  b.PractitionerID,
		Start:           b.Start,
		End:             b.Start.Add(time.Duration(b.DurationMin) * time.Minute),
		DurationMinutes: b.DurationMin,
		Status:          b.Status.String(),
		Reason:          b.Reason,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

func (b *AppointmentBuilder) BuildSnapshot() shared.AppointmentSnapshot {
	return shared.AppointmentSnapshot{
		ID:             b.ID,
		ClinicID:       b.ClinicID,
		OwnerID:        b.OwnerID,
		AnimalID:       b.AnimalID,
		PractitionerID: b.PractitionerID,
		Start:          b.Start,
		DurationMin:    b.DurationMin,
		Status:         b.Status,
		Reason:         b.Reason,
		Notes:          b.Notes,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
