package repository

import (
	"context"

	"vetclinic-scheduling/internal/domain/appointment"
	"vetclinic-scheduling/internal/infra"
	"vetclinic-scheduling/internal/infra/db"
	"vetclinic-scheduling/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

const insertAppointmentSQL = `
INSERT INTO appointments (
	id, clinic_id, owner_id, animal_id, practitioner_id,
	start_at, duration_min, status, reason, notes,
	service_started_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertAppointmentSQL,
		appt.ID(),
		appt.ClinicID(),
		pgconv.UUIDPtrToPgtype(appt.OwnerID()),
		pgconv.UUIDPtrToPgtype(appt.AnimalID()),
		pgconv.UUIDPtrToPgtype(appt.PractitionerID()),
		pgconv.TimeToPgtype(appt.Slot().Start()),
		appt.Slot().DurationMinutes(),
		appt.Status().String(),
		pgconv.StringPtrToPgtype(appt.Reason()),
		pgconv.StringPtrToPgtype(appt.Notes()),
		pgconv.TimePtrToPgtype(appt.ServiceStartedAt()),
		pgconv.TimeToPgtype(appt.CreatedAt()),
		pgconv.TimeToPgtype(appt.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err, infra.KindFromPgError(err))
	}
	return id, nil
}

const updateAppointmentSQL = `
UPDATE appointments
SET status = $2,
    reason = $3,
    notes = $4,
    service_started_at = $5,
    updated_at = $6
WHERE id = $1`

func (r *AppointmentRepository) Update(ctx context.Context, tx db.DBTX, appt *appointment.Appointment) error {
	tag, err := tx.Exec(ctx, updateAppointmentSQL,
		appt.ID(),
		appt.Status().String(),
		pgconv.StringPtrToPgtype(appt.Reason()),
		pgconv.StringPtrToPgtype(appt.Notes()),
		pgconv.TimePtrToPgtype(appt.ServiceStartedAt()),
		pgconv.TimeToPgtype(appt.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err, infra.KindFromPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found for update", nil, infra.KindNotFound)
	}
	return nil
}
